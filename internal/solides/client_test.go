package solides

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arqpeople/fopag-flow/internal/common"
	"github.com/arqpeople/fopag-flow/internal/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func fastRetry() service.RetryOptions {
	return service.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient("test-token", testLogger(),
		WithBaseURL(srv.URL),
		WithRetryOptions(fastRetry()))
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresToken(t *testing.T) {
	_, err := NewClient("", testLogger())
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestFetchEmployeesPaginatesAndFetchesDetails(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Token token=test-token", r.Header.Get("Authorization"))

		switch r.URL.Path {
		case "/colaboradores":
			assert.Equal(t, "todos", r.URL.Query().Get("status"))
			assert.Equal(t, "100", r.URL.Query().Get("page_size"))
			switch r.URL.Query().Get("page") {
			case "1":
				fmt.Fprint(w, `[{"id": 42, "name": "listing a"}, {"id": "77", "name": "listing b"}]`)
			case "2":
				fmt.Fprint(w, `[{"id": 9, "name": "listing c"}]`)
			default:
				fmt.Fprint(w, `[]`)
			}
		case "/colaboradores/42":
			fmt.Fprint(w, `{"id": 42, "name": "detail a", "benefits": []}`)
		case "/colaboradores/77":
			fmt.Fprint(w, `{"id": 77, "name": "detail b"}`)
		case "/colaboradores/9":
			fmt.Fprint(w, `{"id": 9, "name": "detail c"}`)
		default:
			http.NotFound(w, r)
		}
	})

	client := newTestClient(t, handler)
	records, err := client.FetchEmployees(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "detail a", records[0]["name"])
	assert.Equal(t, "detail b", records[1]["name"])
	assert.Equal(t, "detail c", records[2]["name"])
}

func TestFetchEmployeesDetailFallsBackToListing(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/colaboradores":
			if r.URL.Query().Get("page") == "1" {
				fmt.Fprint(w, `[{"id": 5, "name": "from listing"}]`)
				return
			}
			fmt.Fprint(w, `[]`)
		default:
			http.NotFound(w, r)
		}
	})

	client := newTestClient(t, handler)
	records, err := client.FetchEmployees(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "from listing", records[0]["name"])
}

func TestFetchEmployeesRetriesServerErrors(t *testing.T) {
	var listingCalls atomic.Int64
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/colaboradores":
			if r.URL.Query().Get("page") == "1" && listingCalls.Add(1) == 1 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			if r.URL.Query().Get("page") == "1" {
				fmt.Fprint(w, `[{"id": 3, "name": "after retry"}]`)
				return
			}
			fmt.Fprint(w, `[]`)
		case "/colaboradores/3":
			fmt.Fprint(w, `{"id": 3, "name": "after retry"}`)
		default:
			http.NotFound(w, r)
		}
	})

	client := newTestClient(t, handler)
	records, err := client.FetchEmployees(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(2), listingCalls.Load())
}

func TestFetchEmployeesClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int64
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})

	client := newTestClient(t, handler)
	_, err := client.FetchEmployees(context.Background())

	require.Error(t, err)
	assert.Equal(t, int64(1), calls.Load())
}

func TestFetchEmployeesEmptyListing(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[]`)
	})

	client := newTestClient(t, handler)
	records, err := client.FetchEmployees(context.Background())

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCollaboratorID(t *testing.T) {
	id, ok := collaboratorID(map[string]any{"id": float64(12)})
	require.True(t, ok)
	assert.Equal(t, int64(12), id)

	id, ok = collaboratorID(map[string]any{"id": "34"})
	require.True(t, ok)
	assert.Equal(t, int64(34), id)

	_, ok = collaboratorID(map[string]any{"id": "abc"})
	assert.False(t, ok)

	_, ok = collaboratorID(map[string]any{})
	assert.False(t, ok)
}

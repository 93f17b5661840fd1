// Package rubrica maps numeric earnings/deduction codes to canonical names
// and categories.
package rubrica

import (
	"regexp"
	"strings"

	"github.com/arqpeople/fopag-flow/internal/model"
)

// fallbackPrefix marks synthesized names for codes missing from the table.
const fallbackPrefix = "NAO_MAPEADO_"

var (
	trailingNoiseRe = regexp.MustCompile(`[\d\s/]+$`)
	whitespaceRunRe = regexp.MustCompile(`\s+`)
)

// Taxonomy is an immutable code lookup. It is safe for concurrent use: the
// table is copied at construction and never mutated afterwards.
type Taxonomy struct {
	codes map[string]string
}

// New builds a taxonomy from a code table. The table is copied so later
// mutation of the argument cannot affect lookups.
func New(codes map[string]string) *Taxonomy {
	copied := make(map[string]string, len(codes))
	for k, v := range codes {
		copied[k] = v
	}
	return &Taxonomy{codes: copied}
}

// Default returns a taxonomy over the built-in production code table.
func Default() *Taxonomy {
	return New(defaultCodes)
}

// Resolution is the result of resolving a (code, raw label) pair.
type Resolution struct {
	Code     string
	Name     string
	Category *model.RubricaCategory
}

// Resolve looks up a rubrica code. Mapped codes yield the canonical name
// (the mapped string minus its category prefix and code segment) and the
// category encoded in the prefix. Unknown codes yield a synthesized
// NAO_MAPEADO_ name derived from the printed label, with a nil category.
func (t *Taxonomy) Resolve(code, rawLabel string) Resolution {
	clean := strings.TrimSpace(code)

	if mapped, ok := t.codes[clean]; ok {
		parts := strings.SplitN(mapped, "_", 3)
		category := model.CategoryDeduction
		if parts[0] == "P" {
			category = model.CategoryEarning
		}
		name := mapped
		if len(parts) == 3 {
			name = parts[2]
		}
		return Resolution{Code: clean, Name: name, Category: &category}
	}

	label := trailingNoiseRe.ReplaceAllString(rawLabel, "")
	label = strings.TrimSpace(label)
	label = strings.ToUpper(whitespaceRunRe.ReplaceAllString(label, "_"))
	return Resolution{Code: clean, Name: fallbackPrefix + label}
}

// Len reports the number of mapped codes.
func (t *Taxonomy) Len() int {
	return len(t.codes)
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arqpeople/fopag-flow/internal/common"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "fopag",
		Short: "Payroll data pipeline",
		Long: `fopag-flow: extracts payroll data from payslip PDFs, consolidates it
with HR master data from the Sólides API, and loads everything into the
people-analytics warehouse.`,
		PersistentPreRunE: initConfig,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/fopag/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")

	// Bind flags to viper
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	// Add commands
	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(syncHRCmd())
	rootCmd.AddCommand(renameCmd())
	rootCmd.AddCommand(calendarCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	// A local .env is the conventional place for the API token and the
	// database credentials. Absence is fine.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		viper.AddConfigPath(fmt.Sprintf("%s/.config/fopag", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("FOPAG")
	viper.AutomaticEnv()

	// The unprefixed names are the ones the .env files in the field
	// already use; keep accepting them.
	_ = viper.BindEnv("solides.token", "FOPAG_SOLIDES_TOKEN", "SOLIDES_API_TOKEN")
	_ = viper.BindEnv("db.user", "FOPAG_DB_USER", "DB_USER")
	_ = viper.BindEnv("db.password", "FOPAG_DB_PASS", "DB_PASS")
	_ = viper.BindEnv("db.host", "FOPAG_DB_HOST", "DB_HOST")
	_ = viper.BindEnv("db.port", "FOPAG_DB_PORT", "DB_PORT")
	_ = viper.BindEnv("db.name", "FOPAG_DB_NAME", "DB_NAME")
	_ = viper.BindEnv("db.schema", "FOPAG_DB_SCHEMA", "DB_SCHEMA")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	if err := setupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func setupLogging() error {
	level := viper.GetString("logging.level")
	format := viper.GetString("logging.format")

	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		return fmt.Errorf("%w: log level %q", common.ErrInvalidConfig, level)
	}

	return common.SetupLogger(slogLevel, format)
}

// warehouseConfig assembles the Postgres DSN and target schema from config.
func warehouseConfig() (dsn, schema string, err error) {
	user := viper.GetString("db.user")
	password := viper.GetString("db.password")
	host := viper.GetString("db.host")
	port := viper.GetString("db.port")
	name := viper.GetString("db.name")
	schema = viper.GetString("db.schema")

	if user == "" || password == "" || host == "" || port == "" || name == "" || schema == "" {
		return "", "", fmt.Errorf("%w: database credentials (DB_USER, DB_PASS, DB_HOST, DB_PORT, DB_NAME, DB_SCHEMA)", common.ErrMissingConfig)
	}

	dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		url.QueryEscape(user), url.QueryEscape(password), host, port, name)
	return dsn, schema, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			slog.Info("fopag version", "version", version)
		},
	}
}

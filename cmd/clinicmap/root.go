package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gyeh/clinicmap/internal/config"
	"github.com/gyeh/clinicmap/internal/logging"
)

var (
	cfg        = config.Defaults()
	configPath string
)

var rootCmd = &cobra.Command{
	Use:               "clinicmap",
	Short:             "Nearest mental-health clinic lookup for Taiwan",
	Long:              "Reads the public clinic dataset, corrects and classifies its coordinates, and ranks clinics by distance from a position.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", os.Getenv("CLINICMAP_CONFIG"), "YAML config file (or set CLINICMAP_CONFIG)")
	pf.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format: text or json")
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	pf.StringVar(&cfg.Env, "env", envOr("CLINICMAP_ENV", cfg.Env), "Deployment name reported by the views API (or set CLINICMAP_ENV)")
	pf.StringVar(&cfg.Counter.Backend, "counter", envOr("CLINICMAP_COUNTER", cfg.Counter.Backend), "View counter backend: memory, postgres or redis")
	pf.StringVar(&cfg.Counter.DSN, "dsn", os.Getenv("CLINICMAP_DSN"), "Postgres connection string (or set CLINICMAP_DSN)")
	pf.StringVar(&cfg.Counter.RedisAddr, "redis-addr", os.Getenv("CLINICMAP_REDIS_ADDR"), "Redis address host:port (or set CLINICMAP_REDIS_ADDR)")
	pf.StringVar(&cfg.Counter.RedisPassword, "redis-password", os.Getenv("CLINICMAP_REDIS_PASSWORD"), "Redis password (or set CLINICMAP_REDIS_PASSWORD)")
	pf.IntVar(&cfg.Counter.RedisDB, "redis-db", cfg.Counter.RedisDB, "Redis database number")
	pf.StringVar(&cfg.Counter.Key, "counter-key", cfg.Counter.Key, "Key of the view counter")
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func setup(cmd *cobra.Command, args []string) error {
	if err := loadConfigFile(cmd); err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logging.Level = level
	return nil
}

// loadConfigFile merges --config into cfg. Flags given on the command line
// win over the file.
func loadConfigFile(cmd *cobra.Command) error {
	if configPath == "" {
		return nil
	}
	explicit := make(map[string]string)
	cmd.Flags().Visit(func(f *pflag.Flag) {
		explicit[f.Name] = f.Value.String()
	})
	if err := cfg.LoadFromFile(configPath); err != nil {
		return err
	}
	for name, v := range explicit {
		if err := cmd.Flags().Set(name, v); err != nil {
			return err
		}
	}
	return nil
}

// addDatasetFlags registers the flags shared by commands that read the dataset.
func addDatasetFlags(c *cobra.Command) {
	f := c.Flags()
	f.StringVar(&cfg.DatasetPath, "file", "", "Path to the clinic dataset, JSON or Parquet (required)")
	f.BoolVar(&cfg.Strict, "strict", cfg.Strict, "Fail on rows without coordinates instead of skipping them")
	_ = c.MarkFlagRequired("file")
}

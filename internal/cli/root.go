// Package cli implements the selflab commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rpggio/selflab/internal/config"
)

// Version is reported by the MCP server and --version.
var Version = "dev"

var (
	configPath   string
	storeBackend string
	storePath    string
	formatFlag   string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:           "selflab",
	Short:         "Self-experimentation tracker",
	Long:          "Track experiments and daily logs, browse templates and wiki notes, and serve them over MCP.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (default: $SELFLAB_CONFIG_PATH)")
	RootCmd.PersistentFlags().StringVar(&storeBackend, "store", "", "Store backend: memory, file, sqlite or redis")
	RootCmd.PersistentFlags().StringVar(&storePath, "store-path", "", "Store directory (file) or database file (sqlite)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json or text")
}

// Execute runs the root command and reports failures on stderr.
func Execute() int {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig layers command-line flags over the file and environment config.
func loadConfig() (config.Config, error) {
	if configPath != "" {
		if err := os.Setenv("SELFLAB_CONFIG_PATH", configPath); err != nil {
			return config.Config{}, err
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if storeBackend != "" {
		cfg.Store.Backend = storeBackend
	}
	if storePath != "" {
		cfg.Store.Path = storePath
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func printJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

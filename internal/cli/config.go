package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ppiankov/pocheck/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the pocheck configuration file",
	Long: `Manage the pocheck JSON configuration file.

Configuration hierarchy (highest to lowest priority):
1. Environment variables (POCHECK_*, e.g. POCHECK_CHECKER_URL)
2. Config file (--config, default poLanguageChecker.json)
3. Defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Load the config file, apply defaults and environment overrides, and print the result as YAML.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		if cfg.Checker.APIKey != "" {
			cfg.Checker.APIKey = "********"
		}

		yamlData, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# Configuration file: %s\n", cfgFile)
		_, err = out.Write(yamlData)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long:  `Create the file named by --config with every available option set to its default.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(cfgFile); err == nil {
			return fmt.Errorf("config file already exists: %s\nUse 'pocheck config show' to view it, or delete it first to recreate", cfgFile)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat config file: %w", err)
		}

		data, err := json.MarshalIndent(config.Template(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		data = append(data, '\n')

		if err := os.WriteFile(cfgFile, data, 0644); err != nil {
			return fmt.Errorf("write config file: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "✓ Created default configuration: %s\n", cfgFile)
		fmt.Fprintf(out, "\nAdd project words to \"customDictionary\" and run:\n")
		fmt.Fprintf(out, "  pocheck --path <file.po> --config %s\n", cfgFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}

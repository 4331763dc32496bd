package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chrisedwards/slack-purge/internal/config"
)

var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the configuration slack-purge will use after applying defaults,
the config file and SLACK_PURGE_* environment variables.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		source := cfg.ConfigFile()
		if source == "" {
			source = "(defaults)"
		}
		fmt.Fprintf(out, "Config file:   %s\n", source)
		fmt.Fprintf(out, "Token path:    %s\n", cfg.TokenPath)
		fmt.Fprintf(out, "API URL:       %s\n", cfg.APIURL)
		fmt.Fprintf(out, "Timeout:       %s\n", cfg.Timeout)
		fmt.Fprintf(out, "Timezone:      %s\n", cfg.Timezone)
		fmt.Fprintf(out, "Channel types: %s\n", formatList(cfg.ChannelTypes))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultConfigPath()
		}
		if _, err := os.Stat(path); err == nil && !forceInit {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		cfg, err := config.Load("")
		if err != nil {
			return err
		}
		if err := cfg.Save(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func formatList(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return "[" + strings.Join(items, ", ") + "]"
}

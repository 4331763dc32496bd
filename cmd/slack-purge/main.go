package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// Version information, injected at build time via ldflags.
var (
	Version   = "dev"
	Build     = "unknown"
	BuildTime = "unknown"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "slack-purge",
	Short: "Preview and delete the most recent messages in a Slack channel",
	Long: `slack-purge previews the most recent messages in a Slack channel and,
after confirmation, deletes them one at a time.

The token is read from a file (--token, default from config). With --debug the
deletions are only logged, never sent.`,
	Version:      fmt.Sprintf("%s (build %s, %s)", Version, Build, BuildTime),
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPurge,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ~/.config/slack-purge/slack-purge.yaml)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/chrisedwards/slack-purge/internal/config"
	"github.com/chrisedwards/slack-purge/internal/log"
	"github.com/chrisedwards/slack-purge/internal/purge"
	"github.com/chrisedwards/slack-purge/internal/slack"
)

var (
	tokenPath   string
	channelName string
	count       int
	debugMode   bool
	verbose     bool
)

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&tokenPath, "token", "", "path to a file holding the Slack token (~ expands to home)")
	flags.StringVar(&channelName, "channel", "", "channel name to purge")
	flags.IntVar(&count, "count", 0, "number of most recent messages to consider")
	flags.BoolVar(&debugMode, "debug", false, "log intended deletions instead of sending them")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	_ = rootCmd.MarkFlagRequired("channel")
	_ = rootCmd.MarkFlagRequired("count")
}

func newClientFactory(cfg *config.Config) func(*slack.Credentials) purge.API {
	return func(creds *slack.Credentials) purge.API {
		return slack.NewClient(creds).
			WithBaseURL(cfg.APIURL).
			WithHTTPClient(&http.Client{Timeout: cfg.Timeout}).
			WithChannelTypes(cfg.ChannelTypes)
	}
}

func runPurge(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("token") {
		cfg.TokenPath = tokenPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	log.SetOutput(out)
	if verbose {
		log.SetLevel(slog.LevelDebug)
	}
	if path := cfg.ConfigFile(); path != "" {
		log.Debug("loaded config", "path", path)
	}

	p := purge.NewPurger(newClientFactory(cfg), cmd.InOrStdin(), out, log.Logger())
	res, outcome, err := p.Run(cmd.Context(), purge.Options{
		TokenPath: cfg.TokenPath,
		Channel:   channelName,
		Count:     count,
		Debug:     debugMode,
		Location:  cfg.Location(),
	})

	switch {
	case errors.Is(err, slack.ErrInvalidToken):
		fmt.Fprintln(out, "invalid token.")
		log.Debug("token rejected", "error", err)
		return nil
	case errors.Is(err, purge.ErrInvalidChannel):
		fmt.Fprintf(out, "could not fetch messages from %q; check the channel name.\n", channelName)
		log.Debug("history fetch failed", "error", err)
		return nil
	case err != nil:
		return err
	}

	if res != nil {
		log.Debug("purge finished", "outcome", outcome, "attempted", res.Attempted,
			"deleted", res.Deleted, "failed", len(res.Failed))
	}
	return nil
}

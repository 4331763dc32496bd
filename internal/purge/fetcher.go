// Package purge runs the preview-and-delete workflow against a Slack channel.
package purge

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/chrisedwards/slack-purge/internal/channels"
	"github.com/chrisedwards/slack-purge/internal/slack"
)

// ErrInvalidChannel is returned when a channel name cannot be resolved or
// its history cannot be read.
var ErrInvalidChannel = errors.New("invalid channel")

// API is the subset of the Slack Web API the workflow calls.
type API interface {
	channels.Lister
	AuthTest(ctx context.Context) error
	History(ctx context.Context, channelID string, count int) ([]slack.Message, error)
	DeleteMessage(ctx context.Context, channelID, ts string) error
}

// resolveChannel lists channels and resolves name with a fresh Resolver.
func resolveChannel(ctx context.Context, api API, name string) (string, error) {
	resolver, err := channels.Load(ctx, api)
	if err != nil {
		return "", fmt.Errorf("listing channels: %w", err)
	}
	id, err := resolver.Resolve(name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidChannel, err)
	}
	return id, nil
}

// FetchCandidates returns the count most recent messages of a channel,
// oldest first.
func FetchCandidates(ctx context.Context, api API, channel string, count int) ([]slack.Message, error) {
	id, err := resolveChannel(ctx, api, channel)
	if err != nil {
		return nil, err
	}

	msgs, err := api.History(ctx, id, count)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidChannel, err)
	}

	slices.Reverse(msgs)
	return msgs, nil
}

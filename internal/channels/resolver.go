// Package channels maps human-readable Slack channel names to channel IDs.
package channels

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chrisedwards/slack-purge/internal/slack"
)

// ErrChannelNotFound is returned when a name is absent from the listing.
var ErrChannelNotFound = errors.New("channel not found")

// Lister lists the channels visible to a token.
type Lister interface {
	ListChannels(ctx context.Context) ([]slack.Channel, error)
}

// Resolver is a name to ID lookup built from one channel listing.
type Resolver struct {
	ids map[string]string
}

// NewResolver builds a Resolver from a channel list. When two channels share
// a name the later one wins.
func NewResolver(channels []slack.Channel) *Resolver {
	ids := make(map[string]string, len(channels))
	for _, ch := range channels {
		ids[ch.Name] = ch.ID
	}
	return &Resolver{ids: ids}
}

// Load fetches a fresh channel listing and builds a Resolver from it.
func Load(ctx context.Context, lister Lister) (*Resolver, error) {
	list, err := lister.ListChannels(ctx)
	if err != nil {
		return nil, err
	}
	return NewResolver(list), nil
}

// Resolve returns the ID for name. A leading # is ignored.
func (r *Resolver) Resolve(name string) (string, error) {
	id, ok := r.ids[strings.TrimPrefix(name, "#")]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrChannelNotFound, name)
	}
	return id, nil
}

// Len returns the number of names known to the resolver.
func (r *Resolver) Len() int {
	return len(r.ids)
}

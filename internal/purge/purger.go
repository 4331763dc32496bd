package purge

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/chrisedwards/slack-purge/internal/slack"
)

// ErrInvalidCount is returned for a non-positive message count.
var ErrInvalidCount = errors.New("count must be a positive integer")

// Outcome is the terminal state of a run.
type Outcome int

const (
	// Declined means the user answered no at the prompt.
	Declined Outcome = iota
	// Completed means the delete pass ran (possibly with failures).
	Completed
	// Empty means the channel had no messages to preview.
	Empty
)

func (o Outcome) String() string {
	switch o {
	case Declined:
		return "declined"
	case Completed:
		return "completed"
	case Empty:
		return "empty"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Options describe one purge run.
type Options struct {
	TokenPath string
	Channel   string
	Count     int
	Debug     bool
	Location  *time.Location
}

// Purger runs token check, history fetch, preview, confirmation and delete
// in that order.
type Purger struct {
	newAPI   func(*slack.Credentials) API
	prompter *Prompter
	out      io.Writer
	logger   *slog.Logger
}

// NewPurger creates a Purger. newAPI builds the Slack client for the loaded
// token; in and out are the console.
func NewPurger(newAPI func(*slack.Credentials) API, in io.Reader, out io.Writer, logger *slog.Logger) *Purger {
	return &Purger{
		newAPI:   newAPI,
		prompter: NewPrompter(in, out),
		out:      out,
		logger:   logger,
	}
}

// Run executes one purge. Invalid tokens and channels are returned as
// errors wrapping slack.ErrInvalidToken and ErrInvalidChannel.
func (p *Purger) Run(ctx context.Context, opts Options) (*Result, Outcome, error) {
	if opts.Count <= 0 {
		return nil, Declined, fmt.Errorf("%w: %d", ErrInvalidCount, opts.Count)
	}

	creds, err := slack.LoadCredentials(opts.TokenPath)
	if err != nil {
		return nil, Declined, err
	}

	api := p.newAPI(creds)
	if err := api.AuthTest(ctx); err != nil {
		return nil, Declined, err
	}
	p.logger.Debug("token validated", "user", creds.User, "team", creds.Team)

	candidates, err := FetchCandidates(ctx, api, opts.Channel, opts.Count)
	if err != nil {
		return nil, Declined, err
	}
	p.logger.Debug("fetched candidates", "channel", opts.Channel, "count", len(candidates))

	if len(candidates) == 0 {
		_, _ = fmt.Fprintf(p.out, "No messages found in #%s.\n", opts.Channel)
		return nil, Empty, nil
	}

	Preview(p.out, candidates)

	ok, err := p.prompter.Confirm("Delete these?")
	if err != nil {
		return nil, Declined, err
	}
	if !ok {
		_, _ = fmt.Fprintln(p.out, "stop deletion.")
		return nil, Declined, nil
	}

	res, err := NewDeleter(api, p.out, p.logger, opts.Debug).
		WithLocation(opts.Location).
		Delete(ctx, opts.Channel, candidates)
	if err != nil {
		return nil, Declined, err
	}
	return res, Completed, nil
}

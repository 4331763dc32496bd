package purge

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fatih/color"

	"github.com/chrisedwards/slack-purge/internal/slack"
)

// DeleteError records a message whose chat.delete call failed.
type DeleteError struct {
	Message slack.Message
	Err     error
}

func (e *DeleteError) Error() string {
	return fmt.Sprintf("delete %s: %v", e.Message.Timestamp, e.Err)
}

func (e *DeleteError) Unwrap() error {
	return e.Err
}

// Result summarizes a delete pass.
type Result struct {
	Attempted int
	Deleted   int
	Failed    []*DeleteError
}

// Deleter removes confirmed candidates one at a time.
type Deleter struct {
	api    API
	out    io.Writer
	logger *slog.Logger
	debug  bool
	loc    *time.Location
}

// NewDeleter creates a Deleter. In debug mode no delete call is sent and
// each intended deletion is logged instead.
func NewDeleter(api API, out io.Writer, logger *slog.Logger, debug bool) *Deleter {
	return &Deleter{
		api:    api,
		out:    out,
		logger: logger,
		debug:  debug,
		loc:    time.Local,
	}
}

// WithLocation sets the timezone used when logging message times.
func (d *Deleter) WithLocation(loc *time.Location) *Deleter {
	if loc != nil {
		d.loc = loc
	}
	return d
}

// Delete resolves channel and deletes msgs in order. A failed delete is
// reported and the next message is still attempted. The completion line is
// always printed once the channel resolves.
func (d *Deleter) Delete(ctx context.Context, channel string, msgs []slack.Message) (*Result, error) {
	id, err := resolveChannel(ctx, d.api, channel)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for _, m := range msgs {
		res.Attempted++

		if d.debug {
			d.logger.Info("would delete message", "channel", channel, "ts", m.Timestamp,
				"posted", d.postedAt(m), "text", m.Text)
			continue
		}

		if err := d.api.DeleteMessage(ctx, id, m.Timestamp); err != nil {
			res.Failed = append(res.Failed, &DeleteError{Message: m, Err: err})
			_, _ = color.New(color.FgRed).Fprintf(d.out, "failed to delete message: %q (%v)\n", m.Text, err)
			continue
		}
		res.Deleted++
	}

	d.printSummary(res)
	return res, nil
}

func (d *Deleter) postedAt(m slack.Message) string {
	t, err := slack.ParseTimestamp(m.Timestamp)
	if err != nil {
		return m.Timestamp
	}
	return t.In(d.loc).Format(time.DateTime)
}

func (d *Deleter) printSummary(res *Result) {
	if d.debug {
		_, _ = fmt.Fprintf(d.out, "debug mode: %d messages would be deleted.\n", res.Attempted)
		return
	}
	_, _ = color.New(color.FgGreen).Fprintf(d.out, "delete messages: %d of %d deleted.\n", res.Deleted, res.Attempted)
}

package purge

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/chrisedwards/slack-purge/internal/slack"
)

// Separator frames the preview batch.
var Separator = strings.Repeat("-", 80)

// Preview writes each message's text between two separator lines.
func Preview(w io.Writer, msgs []slack.Message) {
	rule := color.New(color.Faint)
	_, _ = rule.Fprintln(w, Separator)
	for _, m := range msgs {
		_, _ = fmt.Fprintln(w, m.Text)
	}
	_, _ = rule.Fprintln(w, Separator)
}

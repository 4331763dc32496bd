package purge

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/chrisedwards/slack-purge/internal/slack"
)

var errCantDelete = errors.New("cant_delete_message")

type fakeAPI struct {
	authErr    error
	channels   []slack.Channel
	history    []slack.Message
	historyErr error
	failTS     map[string]bool

	authCalls    int
	listCalls    int
	historyCalls int
	deleteCalls  int
	deleted      []string
	historyID    string
	historyCount int
}

func (f *fakeAPI) AuthTest(ctx context.Context) error {
	f.authCalls++
	return f.authErr
}

func (f *fakeAPI) ListChannels(ctx context.Context) ([]slack.Channel, error) {
	f.listCalls++
	return f.channels, nil
}

func (f *fakeAPI) History(ctx context.Context, channelID string, count int) ([]slack.Message, error) {
	f.historyCalls++
	f.historyID = channelID
	f.historyCount = count
	if f.historyErr != nil {
		return nil, f.historyErr
	}
	out := make([]slack.Message, len(f.history))
	copy(out, f.history)
	return out, nil
}

func (f *fakeAPI) DeleteMessage(ctx context.Context, channelID, ts string) error {
	f.deleteCalls++
	if f.failTS[ts] {
		return errCantDelete
	}
	f.deleted = append(f.deleted, ts)
	return nil
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		channels: []slack.Channel{
			{ID: "C001", Name: "general"},
			{ID: "C002", Name: "random"},
		},
		history: []slack.Message{
			{Timestamp: "1700000003.000000", Text: "m3"},
			{Timestamp: "1700000002.000000", Text: "m2"},
			{Timestamp: "1700000001.000000", Text: "m1"},
		},
	}
}

func fiveMessages() []slack.Message {
	return []slack.Message{
		{Timestamp: "1700000001.000000", Text: "one"},
		{Timestamp: "1700000002.000000", Text: "two"},
		{Timestamp: "1700000003.000000", Text: "three"},
		{Timestamp: "1700000004.000000", Text: "four"},
		{Timestamp: "1700000005.000000", Text: "five"},
	}
}

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

func writeToken(t *testing.T, token string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(path, []byte(token+"\n"), 0o600); err != nil {
		t.Fatalf("failed to write token: %v", err)
	}
	return path
}

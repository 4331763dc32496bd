package slack

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	slackapi "github.com/slack-go/slack"
)

const (
	// DefaultAPIURL is the base URL for Slack's Web API.
	DefaultAPIURL = "https://slack.com/api/"

	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// channelListLimit is the page size for the single conversations.list call.
	channelListLimit = 1000
)

// DefaultChannelTypes are the conversation types listed when resolving names.
var DefaultChannelTypes = []string{"public_channel", "private_channel"}

// Client is a Slack Web API client for one token.
type Client struct {
	creds        *Credentials
	httpClient   *http.Client
	baseURL      string
	channelTypes []string
	api          *slackapi.Client
}

// NewClient creates a new Web API client with the given credentials.
func NewClient(creds *Credentials) *Client {
	return (&Client{
		creds:        creds,
		httpClient:   &http.Client{Timeout: DefaultHTTPTimeout},
		baseURL:      DefaultAPIURL,
		channelTypes: DefaultChannelTypes,
	}).build()
}

func (c *Client) build() *Client {
	c.api = slackapi.New(c.creds.Token,
		slackapi.OptionAPIURL(c.baseURL),
		slackapi.OptionHTTPClient(c.httpClient),
	)
	return c
}

func (c *Client) clone() *Client {
	return &Client{
		creds:        c.creds,
		httpClient:   c.httpClient,
		baseURL:      c.baseURL,
		channelTypes: c.channelTypes,
	}
}

// WithBaseURL returns a new Client with the specified base URL.
// Useful for testing with mock servers.
func (c *Client) WithBaseURL(baseURL string) *Client {
	n := c.clone()
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	n.baseURL = baseURL
	return n.build()
}

// WithHTTPClient returns a new Client with the specified HTTP client.
func (c *Client) WithHTTPClient(client *http.Client) *Client {
	n := c.clone()
	n.httpClient = client
	return n.build()
}

// WithChannelTypes returns a new Client that lists the given conversation types.
func (c *Client) WithChannelTypes(types []string) *Client {
	n := c.clone()
	if len(types) > 0 {
		n.channelTypes = types
	}
	return n.build()
}

// Credentials returns the credentials the client authenticates with.
func (c *Client) Credentials() *Credentials {
	return c.creds
}

func isAPIError(err error) bool {
	var apiErr slackapi.SlackErrorResponse
	return errors.As(err, &apiErr)
}

// AuthTest checks the token with auth.test. A token Slack rejects yields
// ErrInvalidToken; on success the identity fields of the credentials are set.
func (c *Client) AuthTest(ctx context.Context) error {
	resp, err := c.api.AuthTestContext(ctx)
	if err != nil {
		if isAPIError(err) {
			return fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
		return fmt.Errorf("auth.test: %w", err)
	}

	c.creds.UserID = resp.UserID
	c.creds.User = resp.User
	c.creds.TeamID = resp.TeamID
	c.creds.Team = resp.Team
	return nil
}

// ListChannels returns the channels visible to the token from a single
// conversations.list call.
func (c *Client) ListChannels(ctx context.Context) ([]Channel, error) {
	convs, _, err := c.api.GetConversationsContext(ctx, &slackapi.GetConversationsParameters{
		Types: c.channelTypes,
		Limit: channelListLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("conversations.list: %w", err)
	}

	channels := make([]Channel, 0, len(convs))
	for _, conv := range convs {
		channels = append(channels, Channel{
			ID:         conv.ID,
			Name:       conv.Name,
			IsPrivate:  conv.IsPrivate,
			IsArchived: conv.IsArchived,
		})
	}
	return channels, nil
}

// History returns up to count of the most recent messages in a channel,
// newest first as Slack orders them.
func (c *Client) History(ctx context.Context, channelID string, count int) ([]Message, error) {
	resp, err := c.api.GetConversationHistoryContext(ctx, &slackapi.GetConversationHistoryParameters{
		ChannelID: channelID,
		Limit:     count,
	})
	if err != nil {
		return nil, fmt.Errorf("conversations.history: %w", err)
	}

	messages := make([]Message, 0, len(resp.Messages))
	for _, m := range resp.Messages {
		messages = append(messages, Message{Timestamp: m.Timestamp, Text: m.Text})
	}
	return messages, nil
}

// DeleteMessage removes the message with timestamp ts from a channel.
func (c *Client) DeleteMessage(ctx context.Context, channelID, ts string) error {
	if _, _, err := c.api.DeleteMessageContext(ctx, channelID, ts); err != nil {
		return fmt.Errorf("chat.delete %s: %w", ts, err)
	}
	return nil
}

package slack

// Channel is a conversation visible to the token.
type Channel struct {
	ID         string // Channel ID (C..., G...)
	Name       string // Human-readable name
	IsPrivate  bool   // Private flag
	IsArchived bool   // Archived flag
}

// Message is a single channel message. Timestamp is Slack's "ts" value and
// is the key used for deletion.
type Message struct {
	Timestamp string
	Text      string
}

// Credentials holds authentication data for Slack API access.
type Credentials struct {
	Token  string // xoxp-... or xoxb-... token
	UserID string // Filled in by auth.test
	User   string
	TeamID string
	Team   string
}

package inbox

import "time"

// AdminName is the visitor name attributed to operator replies.
const AdminName = "Admin"

// Message is a single contact-form message. Immutable once created except
// for IsRead, which only ever transitions false→true.
type Message struct {
	ID             string
	VisitorName    string
	VisitorEmail   string
	Subject        string
	Body           string
	Timestamp      time.Time
	IsRead         bool
	ConversationID string
}

// Conversation is a thread of messages sharing one id, between one visitor
// and the operator. Messages is never empty once the conversation exists,
// and LastMessageAt always matches the timestamp of its last element.
type Conversation struct {
	ID            string
	VisitorName   string
	VisitorEmail  string
	Subject       string
	Messages      []Message
	LastMessageAt time.Time
	IsActive      bool
	CreatedAt     time.Time
}

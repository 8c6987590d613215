// Package inbox implements the in-memory conversation store behind the
// portfolio contact form: visitor messages grouped into threads by a
// caller-supplied conversation id, operator replies, and read tracking.
// Nothing here is persisted; the inbox empties on restart.
package inbox

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store owns all conversations and messages exclusively. Every operation
// completes its update before returning, so callers never observe a
// half-updated conversation. The store performs no input validation; that
// belongs to the presentation layer feeding it.
type Store struct {
	mu            sync.RWMutex
	conversations map[string]*Conversation
	order         []string  // conversation ids in creation order
	messages      []Message // flat log of every message, in submission order

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		conversations: make(map[string]*Conversation),
		now:           time.Now,
	}
}

// Submit records an inbound visitor message. An existing conversation with
// the same id is continued; otherwise a new one is created and seeded with
// this message. Identical ids deliberately land in the same thread, which is
// how a visitor keeps a conversation going.
func (s *Store) Submit(visitorName, visitorEmail, subject, body, conversationID string) Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := Message{
		ID:             uuid.NewString(),
		VisitorName:    visitorName,
		VisitorEmail:   visitorEmail,
		Subject:        subject,
		Body:           body,
		Timestamp:      s.now(),
		IsRead:         false,
		ConversationID: conversationID,
	}

	s.messages = append(s.messages, msg)

	if conv, ok := s.conversations[conversationID]; ok {
		conv.Messages = append(conv.Messages, msg)
		conv.LastMessageAt = msg.Timestamp
		conv.IsActive = true
		return msg
	}

	s.conversations[conversationID] = &Conversation{
		ID:            conversationID,
		VisitorName:   visitorName,
		VisitorEmail:  visitorEmail,
		Subject:       subject,
		Messages:      []Message{msg},
		LastMessageAt: msg.Timestamp,
		IsActive:      true,
		CreatedAt:     msg.Timestamp,
	}
	s.order = append(s.order, conversationID)
	return msg
}

// Reply appends a message to an existing conversation. With fromAdmin the
// message is attributed to the operator ("Admin", no email); otherwise it
// carries the original visitor's identity. Replies originate on the operator
// side and therefore start read.
//
// A missing conversation leaves the store untouched; the false return is the
// only signal, no error is raised.
func (s *Store) Reply(conversationID, body string, fromAdmin bool) (Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.conversations[conversationID]
	if !ok {
		return Message{}, false
	}

	msg := Message{
		ID:             uuid.NewString(),
		VisitorName:    conv.VisitorName,
		VisitorEmail:   conv.VisitorEmail,
		Subject:        conv.Subject,
		Body:           body,
		Timestamp:      s.now(),
		IsRead:         true,
		ConversationID: conversationID,
	}
	if fromAdmin {
		msg.VisitorName = AdminName
		msg.VisitorEmail = ""
	}

	s.messages = append(s.messages, msg)
	conv.Messages = append(conv.Messages, msg)
	conv.LastMessageAt = msg.Timestamp
	return msg, true
}

// MarkRead flips the message to read in the flat log and in its owning
// conversation. Unknown ids are ignored; repeating the call changes nothing.
func (s *Store) MarkRead(messageID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == messageID {
			s.messages[i].IsRead = true
			break
		}
	}

	for _, conv := range s.conversations {
		for i := range conv.Messages {
			if conv.Messages[i].ID == messageID {
				conv.Messages[i].IsRead = true
				return
			}
		}
	}
}

// Messages returns the messages of one conversation in submission order.
func (s *Store) Messages(conversationID string) []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Message
	for _, msg := range s.messages {
		if msg.ConversationID == conversationID {
			out = append(out, msg)
		}
	}
	return out
}

// AllMessages returns the flat message log in submission order.
func (s *Store) AllMessages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Conversations returns all conversations in creation order. The returned
// values are copies; the store keeps exclusive ownership of its state.
func (s *Store) Conversations() []Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Conversation, 0, len(s.order))
	for _, id := range s.order {
		conv := s.conversations[id]
		c := *conv
		c.Messages = make([]Message, len(conv.Messages))
		copy(c.Messages, conv.Messages)
		out = append(out, c)
	}
	return out
}

// Conversation returns a copy of one conversation by id.
func (s *Store) Conversation(conversationID string) (Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.conversations[conversationID]
	if !ok {
		return Conversation{}, false
	}
	c := *conv
	c.Messages = make([]Message, len(conv.Messages))
	copy(c.Messages, conv.Messages)
	return c, true
}

// UnreadCount recomputes the number of unread messages across all
// conversations. Never cached.
func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, conv := range s.conversations {
		for _, msg := range conv.Messages {
			if !msg.IsRead {
				n++
			}
		}
	}
	return n
}

// ActiveCount recomputes the number of active conversations.
func (s *Store) ActiveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, conv := range s.conversations {
		if conv.IsActive {
			n++
		}
	}
	return n
}

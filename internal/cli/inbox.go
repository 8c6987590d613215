package cli

import (
	"context"
	"fmt"
	"time"
)

func formatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

// Inbox lists every conversation with its unread badge.
func (a *App) Inbox(ctx context.Context) error {
	convs := a.inbox.Conversations()
	if len(convs) == 0 {
		fmt.Fprintln(a.out, "Inbox is empty.")
		return nil
	}

	for _, conv := range convs {
		unread := 0
		for _, msg := range conv.Messages {
			if !msg.IsRead {
				unread++
			}
		}
		badge := ""
		if unread > 0 {
			badge = fmt.Sprintf(" [%d unread]", unread)
		}
		subject := conv.Subject
		if subject == "" {
			subject = "(no subject)"
		}
		fmt.Fprintf(a.out, "%s  %s — %s%s (last: %s)\n",
			conv.ID, conv.VisitorName, subject, badge, formatTimestamp(conv.LastMessageAt))
	}
	return nil
}

// Show prints every message of one conversation.
func (a *App) Show(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter conversation id", a.out)
	if err != nil {
		return err
	}

	msgs := a.inbox.Messages(id)
	if len(msgs) == 0 {
		fmt.Fprintln(a.out, "No such conversation.")
		return nil
	}

	for _, msg := range msgs {
		marker := " "
		if !msg.IsRead {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s [%s] %s (%s): %s\n",
			marker, msg.ID, msg.VisitorName, formatTimestamp(msg.Timestamp), msg.Body)
	}
	return nil
}

// Reply appends an operator reply to a conversation.
func (a *App) Reply(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter conversation id", a.out)
	if err != nil {
		return err
	}

	body, err := GetMultiline(a.reader, "Enter reply", a.out)
	if err != nil {
		return err
	}

	if _, ok := a.inbox.Reply(id, body, true); !ok {
		fmt.Fprintln(a.out, "No such conversation.")
		return nil
	}
	fmt.Fprintln(a.out, "Reply sent.")
	return nil
}

// MarkRead flips one message to read.
func (a *App) MarkRead(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter message id", a.out)
	if err != nil {
		return err
	}

	a.inbox.MarkRead(id)
	fmt.Fprintln(a.out, "Done.")
	return nil
}

// Counts prints the derived dashboard numbers.
func (a *App) Counts(ctx context.Context) error {
	fmt.Fprintf(a.out, "Unread messages: %d\n", a.inbox.UnreadCount())
	fmt.Fprintf(a.out, "Active conversations: %d\n", a.inbox.ActiveCount())
	return nil
}

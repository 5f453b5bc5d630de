package entity

import "time"

// LastMessage is the denormalized snapshot of the newest message in a
// conversation, kept for list views so they never touch the messages
// subcollection.
type LastMessage struct {
	Content   string    `json:"content" firestore:"content"`
	SenderID  string    `json:"sender_id" firestore:"senderId"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

// Conversation is a thread between two or more users, optionally
// anchored to a product listing. UnreadCount tracks unread messages per
// participant and is maintained exclusively by the messaging usecase's
// append and mark-read paths; values never go below zero.
type Conversation struct {
	ID           string         `json:"id" firestore:"id"`
	Participants []string       `json:"participants" firestore:"participants"`
	ProductID    string         `json:"product_id,omitempty" firestore:"productId,omitempty"`
	LastMessage  *LastMessage   `json:"last_message,omitempty" firestore:"lastMessage,omitempty"`
	UnreadCount  map[string]int `json:"unread_count" firestore:"unreadCount"`
	Active       bool           `json:"active" firestore:"active"`
	CreatedAt    time.Time      `json:"created_at" firestore:"createdAt"`
	UpdatedAt    time.Time      `json:"updated_at" firestore:"updatedAt"`
}

func (c *Conversation) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageMarkRead(t *testing.T) {
	m := &Message{SenderID: "alice", ReadBy: []string{"alice"}}

	assert.True(t, m.ReadByUser("alice"))
	assert.False(t, m.ReadByUser("bob"))

	assert.True(t, m.MarkRead("bob"))
	assert.True(t, m.ReadByUser("bob"))

	// Marking again is a no-op; ReadBy never gains duplicates.
	assert.False(t, m.MarkRead("bob"))
	assert.Equal(t, []string{"alice", "bob"}, m.ReadBy)
}

func TestConversationHasParticipant(t *testing.T) {
	c := &Conversation{Participants: []string{"alice", "bob"}}

	assert.True(t, c.HasParticipant("alice"))
	assert.True(t, c.HasParticipant("bob"))
	assert.False(t, c.HasParticipant("mallory"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "organic-basmati-rice", Slugify("Organic Basmati Rice"))
	assert.Equal(t, "alphonso-mangoes-grade-a", Slugify("  Alphonso Mangoes (Grade A)  "))
	assert.Equal(t, "", Slugify("!!!"))
}

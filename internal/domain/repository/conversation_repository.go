package repository

import (
	"context"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/domain/entity"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *entity.Conversation) error
	GetByID(ctx context.Context, id string) (*entity.Conversation, error)
	// FindByParticipants returns the direct conversation whose
	// participant set is exactly {userA, userB}, or NotFound.
	FindByParticipants(ctx context.Context, userA, userB string) (*entity.Conversation, error)
	ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.Conversation, int64, error)
	Update(ctx context.Context, conversation *entity.Conversation) error

	CreateMessage(ctx context.Context, message *entity.Message) error
	ListMessages(ctx context.Context, conversationID string, limit, offset int) ([]*entity.Message, int64, error)
	// ListUnreadMessages returns messages in the conversation that
	// userID has not read yet.
	ListUnreadMessages(ctx context.Context, conversationID, userID string) ([]*entity.Message, error)
	UpdateMessage(ctx context.Context, message *entity.Message) error
}

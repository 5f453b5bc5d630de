package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/domain/entity"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/domain/repository"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/infrastructure/ratelimit"
	ws "github.com/chaitanyasonaje/Agrikul-sub001/internal/infrastructure/websocket"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/errors"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/logger"
)

// MessagingUseCase owns every write to conversations and their
// projections (lastMessage, unreadCount, updatedAt). Handlers and other
// usecases never mutate those fields directly, which is what keeps the
// denormalized counters consistent with the message records.
type MessagingUseCase struct {
	conversationRepo repository.ConversationRepository
	userRepo         repository.UserRepository
	productRepo      repository.ProductRepository
	hub              *ws.Manager
	rateLimiter      *ratelimit.RateLimiter
}

func NewMessagingUseCase(
	conversationRepo repository.ConversationRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	hub *ws.Manager,
) *MessagingUseCase {
	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	return &MessagingUseCase{
		conversationRepo: conversationRepo,
		userRepo:         userRepo,
		productRepo:      productRepo,
		hub:              hub,
		rateLimiter:      rateLimiter,
	}
}

type StartConversationInput struct {
	RecipientID    string
	ProductID      string
	InitialMessage string
}

type ConversationResponse struct {
	*entity.Conversation
	Product   *entity.Product `json:"product,omitempty"`
	OtherUser *entity.User    `json:"other_user,omitempty"`
}

type MessageResponse struct {
	*entity.Message
	Sender *entity.User `json:"sender,omitempty"`
}

// StartConversation opens (or reuses) the direct thread between the
// caller and the recipient and optionally posts the first message.
func (uc *MessagingUseCase) StartConversation(ctx context.Context, userID string, input StartConversationInput) (*ConversationResponse, error) {
	allowed, waitTime := uc.rateLimiter.Allow(userID, "create_conversation")
	if !allowed {
		logger.Warn("StartConversation rate limited: user %s must wait %v", userID, waitTime)
		return nil, errors.TooManyRequests("Rate limit exceeded. Please wait before starting another conversation", nil)
	}

	if userID == input.RecipientID {
		return nil, errors.BadRequest("You cannot start a conversation with yourself", nil)
	}

	recipient, err := uc.userRepo.GetByID(ctx, input.RecipientID)
	if err != nil {
		return nil, err
	}

	var product *entity.Product
	if input.ProductID != "" {
		product, err = uc.productRepo.GetByID(ctx, input.ProductID)
		if err != nil {
			return nil, err
		}
	}

	conversation, err := uc.conversationRepo.FindByParticipants(ctx, userID, input.RecipientID)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		conversation = &entity.Conversation{
			Participants: []string{userID, input.RecipientID},
			ProductID:    input.ProductID,
			UnreadCount:  map[string]int{},
			Active:       true,
		}
		if err := uc.conversationRepo.Create(ctx, conversation); err != nil {
			return nil, err
		}
	} else if conversation.ProductID != input.ProductID {
		// A reused thread keeps its original product anchor; the
		// response reflects the stored one, not the requested one.
		product = nil
		if conversation.ProductID != "" {
			product, err = uc.productRepo.GetByID(ctx, conversation.ProductID)
			if err != nil {
				if !errors.Is(err, "NOT_FOUND") {
					return nil, err
				}
				product = nil
			}
		}
	}

	if strings.TrimSpace(input.InitialMessage) != "" {
		if _, err := uc.appendMessage(ctx, conversation, userID, input.InitialMessage); err != nil {
			return nil, err
		}
	}

	return &ConversationResponse{
		Conversation: conversation,
		Product:      product,
		OtherUser:    recipient,
	}, nil
}

// SendMessage posts into an existing conversation. Only participants
// may post.
func (uc *MessagingUseCase) SendMessage(ctx context.Context, userID, conversationID, content string) (*MessageResponse, error) {
	allowed, waitTime := uc.rateLimiter.Allow(userID, "send_message")
	if !allowed {
		logger.Warn("SendMessage rate limited: user %s must wait %v", userID, waitTime)
		return nil, errors.TooManyRequests("Rate limit exceeded. Please wait before sending another message", nil)
	}

	if strings.TrimSpace(content) == "" {
		return nil, errors.BadRequest("Message content cannot be empty", nil)
	}

	conversation, err := uc.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(userID) {
		return nil, errors.Forbidden("User is not a participant in this conversation", nil)
	}

	sender, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	message, err := uc.appendMessage(ctx, conversation, userID, content)
	if err != nil {
		return nil, err
	}

	uc.publishNewMessage(conversation, message, sender)

	return &MessageResponse{Message: message, Sender: sender}, nil
}

// appendMessage is the single authoritative write path: it stores the
// message and updates the conversation projection in the same step.
func (uc *MessagingUseCase) appendMessage(ctx context.Context, conversation *entity.Conversation, senderID, content string) (*entity.Message, error) {
	message := &entity.Message{
		ConversationID: conversation.ID,
		SenderID:       senderID,
		Content:        content,
		ReadBy:         []string{senderID},
		CreatedAt:      time.Now(),
	}

	if err := uc.conversationRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	conversation.LastMessage = &entity.LastMessage{
		Content:   message.Content,
		SenderID:  senderID,
		CreatedAt: message.CreatedAt,
	}
	if conversation.UnreadCount == nil {
		conversation.UnreadCount = map[string]int{}
	}
	for _, participantID := range conversation.Participants {
		if participantID != senderID {
			conversation.UnreadCount[participantID]++
		}
	}

	if err := uc.conversationRepo.Update(ctx, conversation); err != nil {
		return nil, err
	}

	return message, nil
}

func (uc *MessagingUseCase) ListConversations(ctx context.Context, userID string, limit, offset int) ([]*ConversationResponse, int64, error) {
	conversations, total, err := uc.conversationRepo.ListByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var responses []*ConversationResponse
	for _, conversation := range conversations {
		resp := &ConversationResponse{Conversation: conversation}

		for _, participantID := range conversation.Participants {
			if participantID == userID {
				continue
			}
			other, err := uc.userRepo.GetByID(ctx, participantID)
			if err == nil {
				resp.OtherUser = other
			} else {
				logger.Warn("Participant %s missing for conversation %s: %v", participantID, conversation.ID, err)
			}
			break
		}

		responses = append(responses, resp)
	}

	return responses, total, nil
}

func (uc *MessagingUseCase) GetConversation(ctx context.Context, userID, conversationID string) (*ConversationResponse, error) {
	conversation, err := uc.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(userID) {
		return nil, errors.Forbidden("User is not a participant in this conversation", nil)
	}

	resp := &ConversationResponse{Conversation: conversation}

	if conversation.ProductID != "" {
		product, err := uc.productRepo.GetByID(ctx, conversation.ProductID)
		if err == nil {
			resp.Product = product
		}
	}

	for _, participantID := range conversation.Participants {
		if participantID == userID {
			continue
		}
		other, err := uc.userRepo.GetByID(ctx, participantID)
		if err == nil {
			resp.OtherUser = other
		}
		break
	}

	return resp, nil
}

func (uc *MessagingUseCase) ListMessages(ctx context.Context, userID, conversationID string, limit, offset int) ([]*MessageResponse, int64, error) {
	conversation, err := uc.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, 0, err
	}
	if !conversation.HasParticipant(userID) {
		return nil, 0, errors.Forbidden("User is not a participant in this conversation", nil)
	}

	messages, total, err := uc.conversationRepo.ListMessages(ctx, conversationID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	senders := map[string]*entity.User{}
	var responses []*MessageResponse
	for _, message := range messages {
		resp := &MessageResponse{Message: message}

		sender, ok := senders[message.SenderID]
		if !ok {
			sender, err = uc.userRepo.GetByID(ctx, message.SenderID)
			if err != nil {
				logger.Warn("Sender %s missing for message %s: %v", message.SenderID, message.ID, err)
			}
			senders[message.SenderID] = sender
		}
		if sender != nil {
			resp.Sender = sender
		}

		responses = append(responses, resp)
	}

	return responses, total, nil
}

// MarkConversationRead adds the caller to the ReadBy set of every
// unread message and zeroes the caller's unread counter. ReadBy only
// ever grows, and the counter reset keeps the projection at zero rather
// than decrementing, so it cannot go negative.
func (uc *MessagingUseCase) MarkConversationRead(ctx context.Context, userID, conversationID string) error {
	conversation, err := uc.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return err
	}
	if !conversation.HasParticipant(userID) {
		return errors.Forbidden("User is not a participant in this conversation", nil)
	}

	unread, err := uc.conversationRepo.ListUnreadMessages(ctx, conversationID, userID)
	if err != nil {
		return err
	}

	for _, message := range unread {
		if message.MarkRead(userID) {
			if err := uc.conversationRepo.UpdateMessage(ctx, message); err != nil {
				return err
			}
		}
	}

	if conversation.UnreadCount == nil {
		conversation.UnreadCount = map[string]int{}
	}
	conversation.UnreadCount[userID] = 0

	if err := uc.conversationRepo.Update(ctx, conversation); err != nil {
		return err
	}

	uc.publishRead(conversation, userID)
	return nil
}

func (uc *MessagingUseCase) publishNewMessage(conversation *entity.Conversation, message *entity.Message, sender *entity.User) {
	if uc.hub == nil {
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"type":            "new_message",
		"conversation_id": conversation.ID,
		"message":         message,
		"sender_name":     sender.Name,
	})
	if err != nil {
		return
	}

	uc.hub.SendToUsers(conversation.Participants, message.SenderID, payload)
}

func (uc *MessagingUseCase) publishRead(conversation *entity.Conversation, readerID string) {
	if uc.hub == nil {
		return
	}

	payload, err := json.Marshal(map[string]interface{}{
		"type":            "conversation_read",
		"conversation_id": conversation.ID,
		"reader_id":       readerID,
	})
	if err != nil {
		return
	}

	uc.hub.SendToUsers(conversation.Participants, readerID, payload)
}

package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chaitanyasonaje/Agrikul-sub001/internal/domain/entity"
	"github.com/chaitanyasonaje/Agrikul-sub001/internal/domain/repository"
	"github.com/chaitanyasonaje/Agrikul-sub001/pkg/errors"
)

// In-memory repositories for usecase tests. They mirror the Firestore
// adapters' contract: NotFound AppErrors for missing documents and IDs
// assigned on create.

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", len(r.users)+1)
	}
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *memUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[string]*entity.Product{}}
}

func (r *memProductRepo) Create(_ context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = fmt.Sprintf("product-%d", len(r.products)+1)
	}
	r.products[product.ID] = product
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	product, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	return product, nil
}

func (r *memProductRepo) List(_ context.Context, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, int64, error) {
	var matched []*entity.Product
	for _, product := range r.products {
		if filter.Status != "" && product.Status != filter.Status {
			continue
		}
		if filter.FarmerID != "" && product.FarmerID != filter.FarmerID {
			continue
		}
		if filter.Category != "" && product.Category != filter.Category {
			continue
		}
		matched = append(matched, product)
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *memProductRepo) Update(_ context.Context, product *entity.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return errors.NotFound("Product", nil)
	}
	r.products[product.ID] = product
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

type memConversationRepo struct {
	conversations map[string]*entity.Conversation
	messages      []*entity.Message
}

func newMemConversationRepo() *memConversationRepo {
	return &memConversationRepo{conversations: map[string]*entity.Conversation{}}
}

func (r *memConversationRepo) Create(_ context.Context, conversation *entity.Conversation) error {
	if conversation.ID == "" {
		conversation.ID = fmt.Sprintf("conv-%d", len(r.conversations)+1)
	}
	now := time.Now()
	conversation.CreatedAt = now
	conversation.UpdatedAt = now
	r.conversations[conversation.ID] = conversation
	return nil
}

func (r *memConversationRepo) GetByID(_ context.Context, id string) (*entity.Conversation, error) {
	conversation, ok := r.conversations[id]
	if !ok {
		return nil, errors.NotFound("Conversation", nil)
	}
	return conversation, nil
}

func (r *memConversationRepo) FindByParticipants(_ context.Context, userA, userB string) (*entity.Conversation, error) {
	for _, conversation := range r.conversations {
		if len(conversation.Participants) == 2 &&
			conversation.HasParticipant(userA) && conversation.HasParticipant(userB) {
			return conversation, nil
		}
	}
	return nil, errors.NotFound("Conversation", nil)
}

func (r *memConversationRepo) ListByUserID(_ context.Context, userID string, limit, offset int) ([]*entity.Conversation, int64, error) {
	var matched []*entity.Conversation
	for _, conversation := range r.conversations {
		if conversation.HasParticipant(userID) {
			matched = append(matched, conversation)
		}
	}
	return matched, int64(len(matched)), nil
}

func (r *memConversationRepo) Update(_ context.Context, conversation *entity.Conversation) error {
	if _, ok := r.conversations[conversation.ID]; !ok {
		return errors.NotFound("Conversation", nil)
	}
	conversation.UpdatedAt = time.Now()
	r.conversations[conversation.ID] = conversation
	return nil
}

func (r *memConversationRepo) CreateMessage(_ context.Context, message *entity.Message) error {
	if message.ID == "" {
		message.ID = fmt.Sprintf("msg-%d", len(r.messages)+1)
	}
	r.messages = append(r.messages, message)
	return nil
}

func (r *memConversationRepo) ListMessages(_ context.Context, conversationID string, limit, offset int) ([]*entity.Message, int64, error) {
	var matched []*entity.Message
	for i := len(r.messages) - 1; i >= 0; i-- {
		if r.messages[i].ConversationID == conversationID {
			matched = append(matched, r.messages[i])
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (r *memConversationRepo) ListUnreadMessages(_ context.Context, conversationID, userID string) ([]*entity.Message, error) {
	var unread []*entity.Message
	for _, message := range r.messages {
		if message.ConversationID == conversationID && !message.ReadByUser(userID) {
			unread = append(unread, message)
		}
	}
	return unread, nil
}

func (r *memConversationRepo) UpdateMessage(_ context.Context, message *entity.Message) error {
	for i, existing := range r.messages {
		if existing.ID == message.ID {
			r.messages[i] = message
			return nil
		}
	}
	return errors.NotFound("Message", nil)
}

type memTransactionRepo struct {
	transactions map[string]*entity.Transaction
}

func newMemTransactionRepo() *memTransactionRepo {
	return &memTransactionRepo{transactions: map[string]*entity.Transaction{}}
}

func (r *memTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	if transaction.ID == "" {
		transaction.ID = fmt.Sprintf("txn-%d", len(r.transactions)+1)
	}
	transaction.CreatedAt = time.Now()
	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *memTransactionRepo) GetByID(_ context.Context, id string) (*entity.Transaction, error) {
	transaction, ok := r.transactions[id]
	if !ok {
		return nil, errors.NotFound("Transaction", nil)
	}
	return transaction, nil
}

func (r *memTransactionRepo) GetByReference(_ context.Context, reference string) (*entity.Transaction, error) {
	for _, transaction := range r.transactions {
		if transaction.Reference == reference {
			return transaction, nil
		}
	}
	return nil, errors.NotFound("Transaction", nil)
}

func (r *memTransactionRepo) ListByUserID(_ context.Context, userID string, limit, offset int) ([]*entity.Transaction, int64, error) {
	var matched []*entity.Transaction
	for _, transaction := range r.transactions {
		if transaction.SenderID == userID || transaction.RecipientID == userID {
			matched = append(matched, transaction)
		}
	}
	return matched, int64(len(matched)), nil
}

func (r *memTransactionRepo) Update(_ context.Context, transaction *entity.Transaction) error {
	if _, ok := r.transactions[transaction.ID]; !ok {
		return errors.NotFound("Transaction", nil)
	}
	transaction.UpdatedAt = time.Now()
	r.transactions[transaction.ID] = transaction
	return nil
}

type memOrderRepo struct {
	orders  map[string]*entity.Order
	created []string
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: map[string]*entity.Order{}}
}

func (r *memOrderRepo) Create(_ context.Context, order *entity.Order) error {
	if order.ID == "" {
		order.ID = fmt.Sprintf("order-%d", len(r.orders)+1)
	}
	order.CreatedAt = time.Now()
	r.orders[order.ID] = order
	r.created = append(r.created, order.ID)
	return nil
}

func (r *memOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, errors.NotFound("Order", nil)
	}
	return order, nil
}

func (r *memOrderRepo) ListByBuyer(_ context.Context, buyerID string, limit, offset int) ([]*entity.Order, int64, error) {
	var matched []*entity.Order
	for _, order := range r.orders {
		if order.BuyerID == buyerID {
			matched = append(matched, order)
		}
	}
	return matched, int64(len(matched)), nil
}

func (r *memOrderRepo) ListByFarmer(_ context.Context, farmerID string, limit, offset int) ([]*entity.Order, int64, error) {
	var matched []*entity.Order
	for _, order := range r.orders {
		if order.FarmerID == farmerID {
			matched = append(matched, order)
		}
	}
	return matched, int64(len(matched)), nil
}

func (r *memOrderRepo) Update(_ context.Context, order *entity.Order) error {
	if _, ok := r.orders[order.ID]; !ok {
		return errors.NotFound("Order", nil)
	}
	order.UpdatedAt = time.Now()
	r.orders[order.ID] = order
	return nil
}

func (r *memOrderRepo) LastOrderNumber(_ context.Context) (string, error) {
	if len(r.created) == 0 {
		return "", nil
	}
	return r.orders[r.created[len(r.created)-1]].OrderNumber, nil
}

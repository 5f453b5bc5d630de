package entity

import (
	"fmt"
	"time"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCanceled   = "canceled"

	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
	PaymentStatusFailed   = "failed"
)

type OrderItem struct {
	ProductID string  `json:"product_id" firestore:"productId"`
	Name      string  `json:"name" firestore:"name"`
	Price     Price   `json:"price" firestore:"price"`
	Quantity  float64 `json:"quantity" firestore:"quantity"`
	Subtotal  float64 `json:"subtotal" firestore:"subtotal"`
}

type ShippingInfo struct {
	Address      string    `json:"address" firestore:"address"`
	Coordinates  []float64 `json:"coordinates,omitempty" firestore:"coordinates,omitempty"`
	ContactName  string    `json:"contact_name" firestore:"contactName"`
	ContactPhone string    `json:"contact_phone" firestore:"contactPhone"`
	Instructions string    `json:"instructions,omitempty" firestore:"instructions,omitempty"`
}

type Order struct {
	ID                string       `json:"id" firestore:"id"`
	OrderNumber       string       `json:"order_number" firestore:"orderNumber"`
	BuyerID           string       `json:"buyer_id" firestore:"buyerId"`
	FarmerID          string       `json:"farmer_id" firestore:"farmerId"`
	Items             []OrderItem  `json:"items" firestore:"items"`
	TotalAmount       float64      `json:"total_amount" firestore:"totalAmount"`
	Currency          string       `json:"currency" firestore:"currency"`
	Status            string       `json:"status" firestore:"status"`
	PaymentStatus     string       `json:"payment_status" firestore:"paymentStatus"`
	PaymentMethod     string       `json:"payment_method" firestore:"paymentMethod"`
	PaymentReference  string       `json:"payment_reference,omitempty" firestore:"paymentReference,omitempty"`
	Shipping          ShippingInfo `json:"shipping" firestore:"shipping"`
	EstimatedDelivery *time.Time   `json:"estimated_delivery,omitempty" firestore:"estimatedDelivery,omitempty"`
	DeliveredAt       *time.Time   `json:"delivered_at,omitempty" firestore:"deliveredAt,omitempty"`
	Notes             string       `json:"notes,omitempty" firestore:"notes,omitempty"`
	CreatedAt         time.Time    `json:"created_at" firestore:"createdAt"`
	UpdatedAt         time.Time    `json:"updated_at" firestore:"updatedAt"`
}

// orderTransitions mirrors the fulfilment flow; delivered and canceled
// are terminal.
var orderTransitions = map[string][]string{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCanceled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCanceled},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusCanceled},
	OrderStatusDelivered:  {},
	OrderStatusCanceled:   {},
}

func ValidOrderTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ValidOrderStatus(s string) bool {
	_, ok := orderTransitions[s]
	return ok
}

// FormatOrderNumber renders YY-MM-DD-NNNN, where counter is a
// monotonically increasing sequence number.
func FormatOrderNumber(date time.Time, counter int) string {
	return fmt.Sprintf("%s-%04d", date.Format("06-01-02"), counter)
}

package services

import (
	"fmt"
	"log"
	"time"

	"fashionworld/internal/models"
	"fashionworld/internal/repositories"
	"fashionworld/pkg/localstore"
)

// EventPublisher publishes order lifecycle events to the message
// broker. *rabbitmq.Client satisfies it; tests substitute a mock.
type EventPublisher interface {
	PublishOrderEvent(eventType string, payload any) error
}

// CheckoutRequest carries the customer details submitted with an order.
type CheckoutRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Phone   string `json:"phone" validate:"required,min=7,max=20"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address" validate:"required,min=10,max=500"`
}

// OrderService handles checkout and order status management.
type OrderService struct {
	orderRepo repositories.OrderRepository
	publisher EventPublisher
	local     *localstore.Store
}

// NewOrderService creates a new OrderService. publisher and local may
// be nil; both are best-effort side channels.
func NewOrderService(orderRepo repositories.OrderRepository, publisher EventPublisher, local *localstore.Store) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		publisher: publisher,
		local:     local,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// Checkout turns the cart into a pending order. Each cart line is
// snapshotted into an OrderItem with the price frozen at this moment;
// later catalog edits never change a placed order. The total is the
// sum over the frozen snapshots.
func (s *OrderService) Checkout(cart []models.CartItem, req CheckoutRequest) (*models.Order, error) {
	if len(cart) == 0 {
		return nil, fmt.Errorf("cannot check out an empty cart")
	}

	items := make([]models.OrderItem, 0, len(cart))
	total := 0
	for _, line := range cart {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("invalid quantity %d for product %s", line.Quantity, line.Product.ID)
		}
		image := ""
		if len(line.Product.Images) > 0 {
			image = line.Product.Images[0]
		}
		items = append(items, models.OrderItem{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			Image:       image,
			Size:        line.Size,
			Quantity:    line.Quantity,
			Price:       line.Product.Price,
		})
		total += line.Product.Price * line.Quantity
	}

	now := time.Now()
	order := &models.Order{
		ID:            fmt.Sprintf("ORD%d", now.UnixMilli()),
		Items:         items,
		Total:         total,
		Status:        models.OrderStatusPending,
		CustomerName:  req.Name,
		CustomerPhone: req.Phone,
		CustomerEmail: req.Email,
		Address:       req.Address,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.appendLocalOrder(order)
	s.publish("order.created", order)

	return order, nil
}

// UpdateOrderStatus moves an order along the status graph. Only
// pending->confirmed->shipped->delivered and pending->cancelled are
// allowed; anything else is rejected.
func (s *OrderService) UpdateOrderStatus(id string, status string) error {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to load order %s for status update: %w", id, err)
	}

	if !models.CanTransition(order.Status, status) {
		return fmt.Errorf("invalid status transition from %s to %s for order %s", order.Status, status, id)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}

	s.publish("order.status_updated", map[string]string{
		"order_id": id,
		"from":     order.Status,
		"to":       status,
	})

	return nil
}

// appendLocalOrder mirrors the order into the legacy local storage
// slot. The repository is the system of record; this slot only keeps
// the old local-only fallback readable.
func (s *OrderService) appendLocalOrder(order *models.Order) {
	if s.local == nil {
		return
	}
	var orders []models.Order
	if _, err := s.local.Get(localstore.KeyOrders, &orders); err != nil {
		log.Printf("Failed to read local orders slot: %v", err)
		return
	}
	orders = append(orders, *order)
	if err := s.local.Put(localstore.KeyOrders, orders); err != nil {
		log.Printf("Failed to write local orders slot: %v", err)
	}
}

// publish sends an order event, logging instead of failing the caller
// when the broker is unavailable.
func (s *OrderService) publish(eventType string, payload any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(eventType, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}

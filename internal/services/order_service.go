package services

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"afiyazone/internal/logger"
	"afiyazone/internal/models"
	"afiyazone/internal/repositories"

	"go.uber.org/zap"
)

const (
	// totalsTolerance absorbs float rounding in client-computed totals.
	totalsTolerance     = 0.01
	orderNumberAttempts = 5
)

// OrderItemInput is one line of a checkout request.
type OrderItemInput struct {
	ProductID string  `json:"productId" validate:"required"`
	Name      string  `json:"name" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
	Quantity  int     `json:"quantity" validate:"gte=1"`
	Image     string  `json:"image"`
}

// ShippingAddressInput is the delivery address of a checkout request.
type ShippingAddressInput struct {
	FullName string `json:"fullName" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Address  string `json:"address" validate:"required"`
	City     string `json:"city" validate:"required"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
	Country  string `json:"country" validate:"required"`
}

// CreateOrderInput is the body of a checkout request.
type CreateOrderInput struct {
	Items           []OrderItemInput     `json:"items" validate:"required,min=1,dive"`
	ShippingAddress ShippingAddressInput `json:"shippingAddress"`
	PaymentMethod   string               `json:"paymentMethod" validate:"required,oneof=credit_card cash_on_delivery bank_transfer"`
	Subtotal        float64              `json:"subtotal" validate:"gte=0"`
	Shipping        float64              `json:"shipping" validate:"gte=0"`
	Tax             float64              `json:"tax" validate:"gte=0"`
	Total           float64              `json:"total" validate:"gte=0"`
	Notes           string               `json:"notes"`
}

// OrderServiceConfig tunes order creation.
type OrderServiceConfig struct {
	NumberPrefix string
	VerifyTotals bool
}

// OrderService implements the order write path and order queries.
type OrderService struct {
	store     repositories.Store
	orderRepo repositories.OrderRepository
	publisher EventPublisher
	cfg       OrderServiceConfig
}

// NewOrderService creates a new OrderService. publisher may be nil.
func NewOrderService(store repositories.Store, orderRepo repositories.OrderRepository, publisher EventPublisher, cfg OrderServiceConfig) *OrderService {
	if cfg.NumberPrefix == "" {
		cfg.NumberPrefix = "AFZ"
	}
	return &OrderService{
		store:     store,
		orderRepo: orderRepo,
		publisher: publisher,
		cfg:       cfg,
	}
}

// generateOrderNumber renders PREFIX-<epoch millis>-<0..999>.
func (s *OrderService) generateOrderNumber() string {
	return fmt.Sprintf("%s-%d-%d", s.cfg.NumberPrefix, time.Now().UnixMilli(), rand.Intn(1000))
}

// checkTotals rejects figures that do not add up.
func checkTotals(in CreateOrderInput) error {
	var sum float64
	for _, item := range in.Items {
		sum += item.Price * float64(item.Quantity)
	}
	if math.Abs(sum-in.Subtotal) > totalsTolerance {
		return fmt.Errorf("%w: subtotal %.2f, items sum to %.2f", ErrTotalsMismatch, in.Subtotal, sum)
	}
	expected := in.Subtotal + in.Shipping + in.Tax
	if math.Abs(expected-in.Total) > totalsTolerance {
		return fmt.Errorf("%w: total %.2f, expected %.2f", ErrTotalsMismatch, in.Total, expected)
	}
	return nil
}

// Create places an order for userID. The order, the customer's notification
// and one notification per admin are written in a single transaction.
func (s *OrderService) Create(ctx context.Context, userID string, in CreateOrderInput) (*models.Order, error) {
	if s.cfg.VerifyTotals {
		if err := checkTotals(in); err != nil {
			return nil, err
		}
	}

	items := make([]models.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
		})
	}
	createdBy := userID
	order := &models.Order{
		UserID: userID,
		Items:  items,
		ShippingAddress: models.ShippingAddress{
			FullName: in.ShippingAddress.FullName,
			Phone:    in.ShippingAddress.Phone,
			Address:  in.ShippingAddress.Address,
			City:     in.ShippingAddress.City,
			State:    in.ShippingAddress.State,
			ZipCode:  in.ShippingAddress.ZipCode,
			Country:  in.ShippingAddress.Country,
		},
		PaymentMethod: in.PaymentMethod,
		Subtotal:      in.Subtotal,
		Shipping:      in.Shipping,
		Tax:           in.Tax,
		Total:         in.Total,
		Status:        models.OrderStatusPending,
		CreatedBy:     &createdBy,
		Notes:         in.Notes,
	}

	err := s.store.Transaction(ctx, func(repos repositories.Repositories) error {
		number, err := s.uniqueOrderNumber(ctx, repos.Orders)
		if err != nil {
			return err
		}
		order.OrderNumber = number

		if err := repos.Orders.Create(ctx, order); err != nil {
			return err
		}

		adminIDs, err := repos.Users.ListAdminIDs(ctx)
		if err != nil {
			return err
		}
		return repos.Notifications.CreateMany(ctx, OrderCreatedNotifications(order, adminIDs))
	})
	if err != nil {
		return nil, err
	}

	logger.FromCtx(ctx).Info("order created",
		zap.String("order_id", order.ID),
		zap.String("order_number", order.OrderNumber),
		zap.String("user_id", userID),
		zap.Float64("total", order.Total))
	publishOrderEvent(ctx, s.publisher, EventOrderCreated, order, "")
	return order, nil
}

func (s *OrderService) uniqueOrderNumber(ctx context.Context, orders repositories.OrderRepository) (string, error) {
	for i := 0; i < orderNumberAttempts; i++ {
		number := s.generateOrderNumber()
		exists, err := orders.ExistsByNumber(ctx, number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
	}
	return "", ErrOrderNumberExhaust
}

// UpdateStatus moves an order to status on behalf of adminID. The customer
// is notified only when the status actually changes. It returns the updated
// order and whether the status changed.
func (s *OrderService) UpdateStatus(ctx context.Context, adminID, orderID, status string) (*models.Order, bool, error) {
	if !models.IsValidOrderStatus(status) {
		return nil, false, ErrInvalidStatus
	}

	var (
		updated  *models.Order
		previous string
	)
	err := s.store.Transaction(ctx, func(repos repositories.Repositories) error {
		current, err := repos.Orders.LockByID(ctx, orderID)
		if err != nil {
			return err
		}
		previous = current.Status

		if err := repos.Orders.UpdateStatus(ctx, orderID, status, adminID); err != nil {
			return err
		}
		if previous != status {
			note := StatusChangedNotification(current, status)
			if err := repos.Notifications.CreateMany(ctx, []models.Notification{note}); err != nil {
				return err
			}
		}

		updated, err = repos.Orders.GetByID(ctx, orderID)
		return err
	})
	if err != nil {
		return nil, false, err
	}

	changed := previous != status
	if changed {
		logger.FromCtx(ctx).Info("order status changed",
			zap.String("order_id", orderID),
			zap.String("from", previous),
			zap.String("to", status),
			zap.String("admin_id", adminID))
		publishOrderEvent(ctx, s.publisher, EventOrderStatusChanged, updated, previous)
	}
	return updated, changed, nil
}

// ListForUser returns the user's orders, newest first.
func (s *OrderService) ListForUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

// GetForUser returns one of the user's orders.
func (s *OrderService) GetForUser(ctx context.Context, orderID, userID string) (*models.Order, error) {
	return s.orderRepo.GetForUser(ctx, orderID, userID)
}

// ListAll returns every order with the people attached to it.
func (s *OrderService) ListAll(ctx context.Context) ([]models.AdminOrder, error) {
	orders, err := s.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toAdminOrders(orders), nil
}

// Search finds orders whose number contains term, ignoring case.
func (s *OrderService) Search(ctx context.Context, term string) ([]models.AdminOrder, error) {
	orders, err := s.orderRepo.SearchByNumber(ctx, term)
	if err != nil {
		return nil, err
	}
	return toAdminOrders(orders), nil
}

// Delete removes an order and its items.
func (s *OrderService) Delete(ctx context.Context, orderID string) error {
	return s.orderRepo.Delete(ctx, orderID)
}

func toAdminOrders(orders []models.Order) []models.AdminOrder {
	out := make([]models.AdminOrder, 0, len(orders))
	for i := range orders {
		out = append(out, orders[i].ToAdmin())
	}
	return out
}

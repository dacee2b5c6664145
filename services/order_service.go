package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/shivarajwaddar/E-commerce-app/models"
	"github.com/shivarajwaddar/E-commerce-app/repository"
	"github.com/shivarajwaddar/E-commerce-app/stock"
)

// amountTolerance absorbs float rounding between the client-computed
// and server-computed totals. Anything beyond it is a mismatch.
const amountTolerance = 0.005

const productCacheTTL = time.Minute

// OrderService converts cart lines into immutable order snapshots and
// owns the status lifecycle. The stock checks it performs here are
// advisory; the repository repeats them under row locks, which is the
// authoritative word.
type OrderService struct {
	orders      repository.OrderRepository
	users       repository.UserRepository
	products    repository.ProductRepository
	redisClient *redis.Client
}

func NewOrderService(orders repository.OrderRepository, users repository.UserRepository, products repository.ProductRepository) *OrderService {
	return &OrderService{orders: orders, users: users, products: products}
}

// SetRedisClient enables the read-through product cache on the
// placement path. A nil client leaves caching off.
func (s *OrderService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// PlaceOrder validates preconditions and stock, checks the caller's
// total against the server-computed one, then hands the snapshot to
// the repository for the transactional commit (stock decrement + cart
// clear included).
func (s *OrderService) PlaceOrder(ctx context.Context, userID string, lines []models.CartItem, totalAmount float64, method models.PaymentMethod) (*models.Order, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.HasAddress() {
		return nil, models.ErrMissingAddress
	}
	if len(lines) == 0 {
		return nil, models.ErrEmptyOrder
	}

	var (
		soldOut    []string
		total      float64
		orderItems []models.OrderItem
	)
	for _, line := range lines {
		product, err := s.getProductWithCache(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if !stock.IsAvailable(product.Quantity, line.Quantity) {
			soldOut = append(soldOut, product.Name)
			continue
		}

		price := line.PriceAtAddition
		if price == 0 {
			// ad-hoc single-item orders carry no cart line, charge the live price
			price = product.Price
		}
		total += float64(line.Quantity) * price
		orderItems = append(orderItems, models.OrderItem{
			ProductID:       product.ID,
			ProductName:     product.Name,
			ProductPhoto:    product.Photo,
			Quantity:        line.Quantity,
			PriceAtAddition: price,
		})
	}
	if len(soldOut) > 0 {
		return nil, fmt.Errorf("%w: %s", models.ErrOutOfStock, strings.Join(soldOut, ", "))
	}

	if math.Abs(total-totalAmount) > amountTolerance {
		return nil, fmt.Errorf("%w: client sent %.2f, server computed %.2f", models.ErrAmountMismatch, totalAmount, total)
	}

	order := &models.Order{
		OrderRef:      generateOrderRef(),
		UserID:        userID,
		Items:         orderItems,
		TotalAmount:   total,
		OrderStatus:   models.OrderStatusNotProcessed,
		PaymentMethod: method,
		PaymentStatus: models.PaymentStatusPending,
		CreatedAt:     time.Now(),
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.invalidateProductCache(ctx, orderItems)
	return order, nil
}

// UpdateOrderStatus transitions an order along the lifecycle. No-op
// and backward transitions are rejected. Delivered cash-on-delivery
// orders settle payment; Refunded flips payment to refunded.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID uint, newStatus models.OrderStatus) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !models.CanTransition(order.OrderStatus, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", models.ErrBadTransition, order.OrderStatus, newStatus)
	}

	payment := order.PaymentStatus
	switch newStatus {
	case models.OrderStatusDelivered:
		if order.PaymentMethod == models.PaymentMethodCOD {
			payment = models.PaymentStatusPaid
		}
	case models.OrderStatusRefunded:
		payment = models.PaymentStatusRefunded
	case models.OrderStatusCancelled:
		if order.PaymentStatus == models.PaymentStatusPaid {
			payment = models.PaymentStatusRefunded
		}
	}

	if err := s.orders.UpdateStatus(ctx, orderID, newStatus, payment); err != nil {
		return nil, err
	}

	order.OrderStatus = newStatus
	order.PaymentStatus = payment
	return order, nil
}

// ListOrdersForUser returns the buyer's own orders, newest first.
func (s *OrderService) ListOrdersForUser(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

// ListOrdersForAdmin returns orders containing at least one product
// the admin created. The scoping is a server-side query.
func (s *OrderService) ListOrdersForAdmin(ctx context.Context, adminID string) ([]models.Order, error) {
	return s.orders.ListByProductOwner(ctx, adminID)
}

func (s *OrderService) GetOrder(ctx context.Context, orderID uint) (*models.Order, error) {
	return s.orders.FindByID(ctx, orderID)
}

func (s *OrderService) OrderStatuses() []models.OrderStatus {
	return models.AllOrderStatuses()
}

func (s *OrderService) getProductWithCache(ctx context.Context, productID uint) (*models.Product, error) {
	cacheKey := productCacheKey(productID)

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var product models.Product
			if err := json.Unmarshal([]byte(cached), &product); err == nil {
				return &product, nil
			}
		}
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(product); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, productCacheTTL)
		}
	}
	return product, nil
}

// invalidateProductCache drops cached stock figures for products whose
// quantity just changed. Best effort.
func (s *OrderService) invalidateProductCache(ctx context.Context, items []models.OrderItem) {
	if s.redisClient == nil {
		return
	}
	keys := make([]string, 0, len(items))
	for _, item := range items {
		keys = append(keys, productCacheKey(item.ProductID))
	}
	if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
		log.Printf("failed to invalidate product cache: %v", err)
	}
}

func productCacheKey(productID uint) string {
	return fmt.Sprintf("product:%d", productID)
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

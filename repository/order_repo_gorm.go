package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shivarajwaddar/E-commerce-app/models"
	"github.com/shivarajwaddar/E-commerce-app/stock"
)

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create runs the authoritative half of order placement: every product
// row is locked, the stock check is repeated against the locked value,
// stock is decremented, the snapshot is written and the buyer's cart is
// emptied. Either all of it commits or none of it does.
func (r *GormOrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var soldOut []string
		for i := range order.Items {
			item := &order.Items[i]

			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", item.ProductID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: product %d", models.ErrNotFound, item.ProductID)
				}
				return err
			}

			if !stock.IsAvailable(product.Quantity, item.Quantity) {
				soldOut = append(soldOut, product.Name)
				continue
			}

			product.Quantity -= item.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}
		}

		if len(soldOut) > 0 {
			return fmt.Errorf("%w: %s", models.ErrOutOfStock, strings.Join(soldOut, ", "))
		}

		if err := tx.Omit("User", "Items.Product").Create(order).Error; err != nil {
			return err
		}

		var cart models.Cart
		err := tx.Where("user_id = ?", order.UserID).First(&cart).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil // ad-hoc order, no cart to clear
			}
			return err
		}
		return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
	})
}

func (r *GormOrderRepository) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *GormOrderRepository) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormOrderRepository) ListByProductOwner(ctx context.Context, adminID string) ([]models.Order, error) {
	sub := r.db.Table("order_items").
		Select("order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("products.created_by = ?", adminID)

	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Where("id IN (?)", sub).
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormOrderRepository) UpdateStatus(ctx context.Context, id uint, status models.OrderStatus, payment models.PaymentStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Updates(map[string]any{"order_status": status, "payment_status": payment})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

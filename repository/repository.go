// Package repository defines the persistence interfaces the services
// are written against, plus their gorm implementations. The interfaces
// exist so the service layer can be tested with mocks.
package repository

import (
	"context"

	"github.com/shivarajwaddar/E-commerce-app/models"
)

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	// ListBuyersOfAdmin returns every user who has placed an order
	// containing at least one product created by the given admin.
	ListBuyersOfAdmin(ctx context.Context, adminID string) ([]models.User, error)
}

type ProductRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Product, error)
	FindBySlug(ctx context.Context, slug string) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]models.Product, error)
	Related(ctx context.Context, productID, categoryID uint, limit int) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
}

type CategoryRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Category, error)
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uint) error
}

type CartRepository interface {
	// GetOrCreate returns the user's cart with items (and each item's
	// live product) preloaded, creating an empty cart on first use.
	GetOrCreate(ctx context.Context, userID string) (*models.Cart, error)
	SaveItem(ctx context.Context, item *models.CartItem) error
	// DeleteItem removes a line and reports how many rows went away,
	// so removal of an absent line can stay a no-op.
	DeleteItem(ctx context.Context, cartID, productID uint) (int64, error)
	ClearItems(ctx context.Context, cartID uint) error
}

type OrderRepository interface {
	// Create persists the order snapshot, decrements stock for every
	// line under row locks, and clears the buyer's cart, all in one
	// transaction. Returns models.ErrOutOfStock (wrapped with the
	// offending product names) if any line lost the race for stock.
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	// ListByProductOwner returns orders containing at least one line
	// whose product was created by the given admin.
	ListByProductOwner(ctx context.Context, adminID string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id uint, status models.OrderStatus, payment models.PaymentStatus) error
}

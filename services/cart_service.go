package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shivarajwaddar/E-commerce-app/models"
	"github.com/shivarajwaddar/E-commerce-app/repository"
	"github.com/shivarajwaddar/E-commerce-app/stock"
)

// CartService owns the one-cart-per-user rule. Every mutation returns
// the full updated cart so callers can resynchronize their local
// mirror from a single response.
type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

func NewCartService(carts repository.CartRepository, products repository.ProductRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

// GetCart fetches the user's cart, lazily creating an empty one.
func (s *CartService) GetCart(ctx context.Context, userID string) (*models.Cart, error) {
	return s.carts.GetOrCreate(ctx, userID)
}

// AddItem adds quantity units of a product to the cart. If a line for
// the product already exists its quantity is incremented; a product
// never gets two lines. New lines capture the product's current price
// as price-at-addition.
func (s *CartService) AddItem(ctx context.Context, userID string, productID uint, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, models.ErrInvalidQuantity
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := s.carts.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	line := findLine(cart, productID)
	newQuantity := quantity
	if line != nil {
		newQuantity += line.Quantity
	}
	if !stock.IsAvailable(product.Quantity, newQuantity) {
		return nil, fmt.Errorf("%w: %s", models.ErrOutOfStock, product.Name)
	}

	if line == nil {
		line = &models.CartItem{
			CartID:          cart.CartID,
			ProductID:       product.ID,
			ProductName:     product.Name,
			ProductPhoto:    product.Photo,
			PriceAtAddition: product.Price,
		}
	}
	line.Quantity = newQuantity
	line.AddedAt = time.Now()
	if err := s.carts.SaveItem(ctx, line); err != nil {
		return nil, err
	}

	return s.carts.GetOrCreate(ctx, userID)
}

// UpdateQuantity sets a line's quantity outright. Zero is treated as
// removal; negative values are rejected.
func (s *CartService) UpdateQuantity(ctx context.Context, userID string, productID uint, newQuantity int) (*models.Cart, error) {
	if newQuantity < 0 {
		return nil, models.ErrInvalidQuantity
	}
	if newQuantity == 0 {
		return s.RemoveItem(ctx, userID, productID)
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !stock.IsAvailable(product.Quantity, newQuantity) {
		return nil, fmt.Errorf("%w: %s", models.ErrOutOfStock, product.Name)
	}

	cart, err := s.carts.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	line := findLine(cart, productID)
	if line == nil {
		return nil, models.ErrNotFound
	}

	line.Quantity = newQuantity
	if err := s.carts.SaveItem(ctx, line); err != nil {
		return nil, err
	}

	return s.carts.GetOrCreate(ctx, userID)
}

// RemoveItem deletes a line. Removing an absent line is not an error;
// the unchanged cart comes back.
func (s *CartService) RemoveItem(ctx context.Context, userID string, productID uint) (*models.Cart, error) {
	cart, err := s.carts.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.carts.DeleteItem(ctx, cart.CartID, productID); err != nil {
		return nil, err
	}
	return s.carts.GetOrCreate(ctx, userID)
}

// ClearAll empties the cart. Idempotent.
func (s *CartService) ClearAll(ctx context.Context, userID string) (*models.Cart, error) {
	cart, err := s.carts.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.carts.ClearItems(ctx, cart.CartID); err != nil {
		return nil, err
	}
	return s.carts.GetOrCreate(ctx, userID)
}

func findLine(cart *models.Cart, productID uint) *models.CartItem {
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			return &cart.Items[i]
		}
	}
	return nil
}

package client

import (
	"context"
	"fmt"
	"log"

	"github.com/shivarajwaddar/E-commerce-app/models"
)

// OrderPlacer is the slice of the API checkout needs.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, items []models.CartItem, totalAmount float64, method models.PaymentMethod) (*models.Order, error)
}

// CartClearer empties the server cart after a successful order.
type CartClearer interface {
	ClearAll(ctx context.Context) (*models.Cart, error)
}

// Profile is what checkout knows about the current session.
type Profile struct {
	Token   string
	Address string
}

// Checkout orchestrates order placement from the mirror: local gates
// first, then the authoritative server call, then best-effort cleanup.
type Checkout struct {
	orders OrderPlacer
	carts  CartClearer
	mirror *Mirror
}

func NewCheckout(orders OrderPlacer, carts CartClearer, mirror *Mirror) *Checkout {
	return &Checkout{orders: orders, carts: carts, mirror: mirror}
}

// PlaceOrder runs the checkout sequence. The local checks are a UX
// fast path; the server repeats all of them and its verdict is final.
// A failure to clear the cart afterwards is logged, not rolled back:
// the order stands.
func (co *Checkout) PlaceOrder(ctx context.Context, profile Profile, method models.PaymentMethod) (*models.Order, error) {
	if co.mirror.HasOutOfStock() {
		return nil, fmt.Errorf("%w: remove sold-out items before placing your order", models.ErrOutOfStock)
	}
	if profile.Token == "" {
		return nil, ErrNotAuthenticated
	}
	if profile.Address == "" {
		return nil, models.ErrMissingAddress
	}

	lines := co.mirror.Lines()
	if len(lines) == 0 {
		return nil, models.ErrEmptyOrder
	}

	order, err := co.orders.PlaceOrder(ctx, lines, co.mirror.Total(), method)
	if err != nil {
		return nil, err
	}

	if _, err := co.carts.ClearAll(ctx); err != nil {
		log.Printf("order %s placed but cart cleanup failed: %v", order.OrderRef, err)
	}
	if err := co.mirror.Clear(); err != nil {
		log.Printf("failed to clear local cart mirror: %v", err)
	}
	return order, nil
}

package client

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"

	"github.com/shivarajwaddar/E-commerce-app/models"
	"github.com/shivarajwaddar/E-commerce-app/stock"
)

// Mirror is the locally persisted copy of the server cart. Every
// mutation is written through to disk so a restart before the next
// server round-trip loses nothing. The server copy always wins when
// both are available.
type Mirror struct {
	path string

	mu    sync.Mutex
	lines []models.CartItem
}

// NewMirror loads the mirror from path. A missing file starts empty; a
// corrupted file is discarded rather than trusted.
func NewMirror(path string) *Mirror {
	m := &Mirror{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return m
	}
	var lines []models.CartItem
	if err := json.Unmarshal(data, &lines); err != nil {
		_ = os.Remove(path)
		return m
	}
	m.lines = lines
	return m
}

// Lines returns a copy of the mirrored cart lines.
func (m *Mirror) Lines() []models.CartItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.CartItem, len(m.lines))
	copy(out, m.lines)
	return out
}

// Set overwrites the mirror and persists it.
func (m *Mirror) Set(lines []models.CartItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = lines
	return m.persistLocked()
}

// Clear empties the mirror and its file.
func (m *Mirror) Clear() error {
	return m.Set(nil)
}

// Total is the payable amount over in-stock lines, what the cart page
// displays and what checkout sends as totalAmount.
func (m *Mirror) Total() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return stock.LinesTotal(m.lines)
}

// HasOutOfStock reports whether any mirrored line's product was out of
// stock at the last sync.
func (m *Mirror) HasOutOfStock() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, line := range m.lines {
		if line.Product.ID != 0 && line.Product.Quantity <= 0 {
			return true
		}
	}
	return false
}

func (m *Mirror) persistLocked() error {
	data, err := json.Marshal(m.lines)
	if err != nil {
		return err
	}
	return os.WriteFile(m.path, data, 0644)
}

// CartFetcher is the slice of the API the mirror needs to reconcile.
type CartFetcher interface {
	GetCart(ctx context.Context) (*models.Cart, error)
}

// Reconcile brings the mirror in line with the session state. With a
// live session the server cart overwrites the mirror; without one the
// mirror is cleared. If the fetch fails the last known-good mirror is
// kept so a flaky network does not blank the cart.
func (m *Mirror) Reconcile(ctx context.Context, api CartFetcher, authenticated bool) error {
	if !authenticated {
		return m.Clear()
	}

	cart, err := api.GetCart(ctx)
	if err != nil {
		if errors.Is(err, ErrNotAuthenticated) {
			return m.Clear()
		}
		return err // mirror untouched
	}
	return m.Set(cart.Items)
}

// CartMutator is the slice of the API that changes cart lines. Every
// call returns the full updated cart.
type CartMutator interface {
	AddItem(ctx context.Context, productID uint, quantity int) (*models.Cart, error)
	UpdateQuantity(ctx context.Context, productID uint, quantity int) (*models.Cart, error)
	RemoveItem(ctx context.Context, productID uint) (*models.Cart, error)
	ClearAll(ctx context.Context) (*models.Cart, error)
}

// Session couples the API with the mirror: server first, then resync
// the mirror from the returned cart. On failure the mirror keeps its
// last known-good state.
type Session struct {
	api    CartMutator
	mirror *Mirror
}

func NewSession(api CartMutator, mirror *Mirror) *Session {
	return &Session{api: api, mirror: mirror}
}

func (s *Session) Mirror() *Mirror {
	return s.mirror
}

func (s *Session) AddItem(ctx context.Context, productID uint, quantity int) (*models.Cart, error) {
	return s.resync(s.api.AddItem(ctx, productID, quantity))
}

func (s *Session) UpdateQuantity(ctx context.Context, productID uint, quantity int) (*models.Cart, error) {
	return s.resync(s.api.UpdateQuantity(ctx, productID, quantity))
}

func (s *Session) RemoveItem(ctx context.Context, productID uint) (*models.Cart, error) {
	return s.resync(s.api.RemoveItem(ctx, productID))
}

func (s *Session) ClearAll(ctx context.Context) (*models.Cart, error) {
	return s.resync(s.api.ClearAll(ctx))
}

func (s *Session) resync(cart *models.Cart, err error) (*models.Cart, error) {
	if err != nil {
		return nil, err
	}
	if err := s.mirror.Set(cart.Items); err != nil {
		return nil, err
	}
	return cart, nil
}

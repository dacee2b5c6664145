package client

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivarajwaddar/E-commerce-app/models"
)

type fakeCartAPI struct {
	cart *models.Cart
	err  error

	calls int
}

func (f *fakeCartAPI) GetCart(ctx context.Context) (*models.Cart, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.cart, nil
}

func (f *fakeCartAPI) AddItem(ctx context.Context, productID uint, quantity int) (*models.Cart, error) {
	return f.cart, f.err
}

func (f *fakeCartAPI) UpdateQuantity(ctx context.Context, productID uint, quantity int) (*models.Cart, error) {
	return f.cart, f.err
}

func (f *fakeCartAPI) RemoveItem(ctx context.Context, productID uint) (*models.Cart, error) {
	return f.cart, f.err
}

func (f *fakeCartAPI) ClearAll(ctx context.Context) (*models.Cart, error) {
	return f.cart, f.err
}

func mirrorPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "cart.json")
}

func sampleLines() []models.CartItem {
	return []models.CartItem{
		{ProductID: 1, Quantity: 2, PriceAtAddition: 100, Product: models.Product{ID: 1, Quantity: 5}},
		{ProductID: 2, Quantity: 1, PriceAtAddition: 50, Product: models.Product{ID: 2, Quantity: 3}},
	}
}

func TestMirror_PersistsAcrossRestart(t *testing.T) {
	path := mirrorPath(t)

	m := NewMirror(path)
	require.NoError(t, m.Set(sampleLines()))

	// a fresh mirror over the same file sees the same cart
	reloaded := NewMirror(path)
	assert.Equal(t, m.Lines(), reloaded.Lines())
	assert.Equal(t, 250.0, reloaded.Total())
}

func TestMirror_CorruptedFileIsDiscarded(t *testing.T) {
	path := mirrorPath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	m := NewMirror(path)
	assert.Empty(t, m.Lines())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "corrupted file should be removed")
}

func TestMirror_Reconcile_ServerWins(t *testing.T) {
	m := NewMirror(mirrorPath(t))
	require.NoError(t, m.Set([]models.CartItem{{ProductID: 9, Quantity: 9, PriceAtAddition: 1}}))

	server := &fakeCartAPI{cart: &models.Cart{Items: sampleLines()}}
	require.NoError(t, m.Reconcile(context.Background(), server, true))

	assert.Equal(t, sampleLines(), m.Lines(), "server cart overwrites stale local state")
}

func TestMirror_Reconcile_LogoutClears(t *testing.T) {
	m := NewMirror(mirrorPath(t))
	require.NoError(t, m.Set(sampleLines()))

	server := &fakeCartAPI{}
	require.NoError(t, m.Reconcile(context.Background(), server, false))

	assert.Empty(t, m.Lines())
	assert.Zero(t, server.calls, "no server call without a session")
}

func TestMirror_Reconcile_FetchFailureKeepsLastGood(t *testing.T) {
	m := NewMirror(mirrorPath(t))
	require.NoError(t, m.Set(sampleLines()))

	server := &fakeCartAPI{err: errors.New("connection refused")}
	err := m.Reconcile(context.Background(), server, true)

	assert.Error(t, err)
	assert.Equal(t, sampleLines(), m.Lines(), "flaky network must not blank the cart")
}

func TestMirror_Reconcile_ExpiredTokenClears(t *testing.T) {
	m := NewMirror(mirrorPath(t))
	require.NoError(t, m.Set(sampleLines()))

	server := &fakeCartAPI{err: ErrNotAuthenticated}
	require.NoError(t, m.Reconcile(context.Background(), server, true))

	assert.Empty(t, m.Lines(), "a dead session behaves like logout")
}

func TestMirror_HasOutOfStock(t *testing.T) {
	m := NewMirror(mirrorPath(t))
	require.NoError(t, m.Set(sampleLines()))
	assert.False(t, m.HasOutOfStock())

	lines := sampleLines()
	lines[1].Product.Quantity = 0
	require.NoError(t, m.Set(lines))
	assert.True(t, m.HasOutOfStock())
}

func TestMirror_TotalSkipsOutOfStockLines(t *testing.T) {
	m := NewMirror(mirrorPath(t))
	lines := sampleLines()
	lines[0].Product.Quantity = 0 // 2 x 100 drops out
	require.NoError(t, m.Set(lines))

	assert.Equal(t, 50.0, m.Total())
}

func TestSession_MutationResyncsMirror(t *testing.T) {
	m := NewMirror(mirrorPath(t))
	api := &fakeCartAPI{cart: &models.Cart{Items: sampleLines()}}

	session := NewSession(api, m)
	cart, err := session.AddItem(context.Background(), 1, 2)

	assert.NoError(t, err)
	assert.Equal(t, cart.Items, m.Lines(), "mirror tracks the full-cart response")
}

func TestSession_MutationFailureKeepsMirror(t *testing.T) {
	m := NewMirror(mirrorPath(t))
	require.NoError(t, m.Set(sampleLines()))

	api := &fakeCartAPI{err: errors.New("timeout")}
	session := NewSession(api, m)
	_, err := session.UpdateQuantity(context.Background(), 1, 3)

	assert.Error(t, err)
	assert.Equal(t, sampleLines(), m.Lines())
}

// Package client is the storefront-side companion to the API: a thin
// REST wrapper, a locally persisted cart mirror that survives restarts,
// and the checkout orchestration. The mirror is advisory; the server
// re-validates everything it sends.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shivarajwaddar/E-commerce-app/models"
)

// ErrNotAuthenticated covers missing tokens and 401 responses. The
// caller is expected to drop the session and send the user to login.
var ErrNotAuthenticated = errors.New("not authenticated")

// Client talks to the storefront API. Safe for sequential use; one
// instance per session.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetToken installs the bearer token for subsequent calls. An empty
// token returns the client to anonymous mode.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) Token() string {
	return c.token
}

type cartEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Cart    *models.Cart `json:"cart"`
}

type orderEnvelope struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Order   *models.Order `json:"order"`
}

type placeOrderRequest struct {
	CartItems     []models.CartItem `json:"cartItems"`
	TotalAmount   float64           `json:"totalAmount"`
	PaymentMethod string            `json:"paymentMethod"`
}

func (c *Client) GetCart(ctx context.Context) (*models.Cart, error) {
	return c.cartCall(ctx, http.MethodGet, "/api/v1/cart/get", nil)
}

func (c *Client) AddItem(ctx context.Context, productID uint, quantity int) (*models.Cart, error) {
	body := map[string]any{"productId": productID, "quantity": quantity}
	return c.cartCall(ctx, http.MethodPost, "/api/v1/cart/add-item", body)
}

func (c *Client) UpdateQuantity(ctx context.Context, productID uint, quantity int) (*models.Cart, error) {
	path := fmt.Sprintf("/api/v1/cart/update-quantity/%d", productID)
	return c.cartCall(ctx, http.MethodPut, path, map[string]any{"quantity": quantity})
}

func (c *Client) RemoveItem(ctx context.Context, productID uint) (*models.Cart, error) {
	path := fmt.Sprintf("/api/v1/cart/remove-item/%d", productID)
	return c.cartCall(ctx, http.MethodDelete, path, nil)
}

func (c *Client) ClearAll(ctx context.Context) (*models.Cart, error) {
	return c.cartCall(ctx, http.MethodDelete, "/api/v1/cart/clear-all", nil)
}

func (c *Client) PlaceOrder(ctx context.Context, items []models.CartItem, totalAmount float64, method models.PaymentMethod) (*models.Order, error) {
	req := placeOrderRequest{CartItems: items, TotalAmount: totalAmount, PaymentMethod: string(method)}

	var envelope orderEnvelope
	if err := c.call(ctx, http.MethodPost, "/api/v1/orders/place-order", req, &envelope); err != nil {
		return nil, err
	}
	return envelope.Order, nil
}

func (c *Client) UserOrders(ctx context.Context) ([]models.Order, error) {
	var envelope struct {
		Success bool           `json:"success"`
		Orders  []models.Order `json:"orders"`
	}
	if err := c.call(ctx, http.MethodGet, "/api/v1/orders/user-orders", nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Orders, nil
}

func (c *Client) cartCall(ctx context.Context, method, path string, body any) (*models.Cart, error) {
	var envelope cartEnvelope
	if err := c.call(ctx, method, path, body, &envelope); err != nil {
		return nil, err
	}
	if envelope.Cart == nil {
		return nil, fmt.Errorf("server returned no cart: %s", envelope.Message)
	}
	return envelope.Cart, nil
}

func (c *Client) call(ctx context.Context, method, path string, body, out any) error {
	var payload *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = bytes.NewReader(data)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrNotAuthenticated
	}
	if resp.StatusCode >= http.StatusBadRequest {
		var failure struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&failure)
		if failure.Message != "" {
			return errors.New(failure.Message)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

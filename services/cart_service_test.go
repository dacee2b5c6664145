package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shivarajwaddar/E-commerce-app/mocks"
	"github.com/shivarajwaddar/E-commerce-app/models"
)

func TestCartService_AddItem_NewLine(t *testing.T) {
	cartRepo := new(mocks.MockCartRepository)
	productRepo := new(mocks.MockProductRepository)

	product := &models.Product{ID: 7, Name: "Keyboard", Price: 100, Quantity: 5, Photo: "kb.jpg"}
	emptyCart := &models.Cart{CartID: 1, UserID: "u1"}
	updatedCart := &models.Cart{CartID: 1, UserID: "u1", Items: []models.CartItem{
		{CartID: 1, ProductID: 7, Quantity: 2, PriceAtAddition: 100},
	}}

	productRepo.On("FindByID", mock.Anything, uint(7)).Return(product, nil)
	cartRepo.On("GetOrCreate", mock.Anything, "u1").Return(emptyCart, nil).Once()
	cartRepo.On("SaveItem", mock.Anything, mock.MatchedBy(func(item *models.CartItem) bool {
		return item.ProductID == 7 && item.Quantity == 2 && item.PriceAtAddition == 100
	})).Return(nil)
	cartRepo.On("GetOrCreate", mock.Anything, "u1").Return(updatedCart, nil).Once()

	service := NewCartService(cartRepo, productRepo)
	cart, err := service.AddItem(context.Background(), "u1", 7, 2)

	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 100.0, cart.Items[0].PriceAtAddition)
	cartRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestCartService_AddItem_IncrementsExistingLine(t *testing.T) {
	cartRepo := new(mocks.MockCartRepository)
	productRepo := new(mocks.MockProductRepository)

	// price-at-addition was captured at 90 before the product went to 100
	product := &models.Product{ID: 7, Name: "Keyboard", Price: 100, Quantity: 5}
	cartBefore := &models.Cart{CartID: 1, UserID: "u1", Items: []models.CartItem{
		{ID: 11, CartID: 1, ProductID: 7, Quantity: 2, PriceAtAddition: 90},
	}}
	cartAfter := &models.Cart{CartID: 1, UserID: "u1", Items: []models.CartItem{
		{ID: 11, CartID: 1, ProductID: 7, Quantity: 3, PriceAtAddition: 90},
	}}

	productRepo.On("FindByID", mock.Anything, uint(7)).Return(product, nil)
	cartRepo.On("GetOrCreate", mock.Anything, "u1").Return(cartBefore, nil).Once()
	cartRepo.On("SaveItem", mock.Anything, mock.MatchedBy(func(item *models.CartItem) bool {
		// same line, incremented, price snapshot untouched
		return item.ID == 11 && item.Quantity == 3 && item.PriceAtAddition == 90
	})).Return(nil)
	cartRepo.On("GetOrCreate", mock.Anything, "u1").Return(cartAfter, nil).Once()

	service := NewCartService(cartRepo, productRepo)
	cart, err := service.AddItem(context.Background(), "u1", 7, 1)

	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1, "adding the same product twice must not create a second line")
	assert.Equal(t, 3, cart.Items[0].Quantity)
	cartRepo.AssertExpectations(t)
}

func TestCartService_AddItem_Failures(t *testing.T) {
	tests := []struct {
		name      string
		productID uint
		quantity  int
		inStock   int
		inCart    int
		wantErr   error
	}{
		{"quantity below one", 7, 0, 5, 0, models.ErrInvalidQuantity},
		{"exceeds stock", 7, 6, 5, 0, models.ErrOutOfStock},
		{"post-increment exceeds stock", 7, 3, 5, 4, models.ErrOutOfStock},
		{"sold out", 7, 1, 0, 0, models.ErrOutOfStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cartRepo := new(mocks.MockCartRepository)
			productRepo := new(mocks.MockProductRepository)

			product := &models.Product{ID: tt.productID, Name: "Keyboard", Price: 100, Quantity: tt.inStock}
			cart := &models.Cart{CartID: 1, UserID: "u1"}
			if tt.inCart > 0 {
				cart.Items = []models.CartItem{{CartID: 1, ProductID: tt.productID, Quantity: tt.inCart, PriceAtAddition: 100}}
			}

			productRepo.On("FindByID", mock.Anything, tt.productID).Return(product, nil).Maybe()
			cartRepo.On("GetOrCreate", mock.Anything, "u1").Return(cart, nil).Maybe()

			service := NewCartService(cartRepo, productRepo)
			_, err := service.AddItem(context.Background(), "u1", tt.productID, tt.quantity)

			assert.ErrorIs(t, err, tt.wantErr)
			cartRepo.AssertNotCalled(t, "SaveItem", mock.Anything, mock.Anything)
		})
	}
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	cartRepo := new(mocks.MockCartRepository)
	productRepo := new(mocks.MockProductRepository)

	productRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, models.ErrNotFound)

	service := NewCartService(cartRepo, productRepo)
	_, err := service.AddItem(context.Background(), "u1", 99, 1)

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCartService_UpdateQuantity_ZeroRemovesLine(t *testing.T) {
	cartRepo := new(mocks.MockCartRepository)
	productRepo := new(mocks.MockProductRepository)

	cartBefore := &models.Cart{CartID: 1, UserID: "u1", Items: []models.CartItem{
		{CartID: 1, ProductID: 7, Quantity: 2, PriceAtAddition: 100},
	}}
	cartAfter := &models.Cart{CartID: 1, UserID: "u1"}

	cartRepo.On("GetOrCreate", mock.Anything, "u1").Return(cartBefore, nil).Once()
	cartRepo.On("DeleteItem", mock.Anything, uint(1), uint(7)).Return(int64(1), nil)
	cartRepo.On("GetOrCreate", mock.Anything, "u1").Return(cartAfter, nil).Once()

	service := NewCartService(cartRepo, productRepo)
	cart, err := service.UpdateQuantity(context.Background(), "u1", 7, 0)

	assert.NoError(t, err)
	assert.Empty(t, cart.Items)
	cartRepo.AssertExpectations(t)
}

func TestCartService_UpdateQuantity_Negative(t *testing.T) {
	service := NewCartService(new(mocks.MockCartRepository), new(mocks.MockProductRepository))
	_, err := service.UpdateQuantity(context.Background(), "u1", 7, -1)
	assert.ErrorIs(t, err, models.ErrInvalidQuantity)
}

func TestCartService_UpdateQuantity_ExceedsStock(t *testing.T) {
	cartRepo := new(mocks.MockCartRepository)
	productRepo := new(mocks.MockProductRepository)

	productRepo.On("FindByID", mock.Anything, uint(7)).Return(&models.Product{ID: 7, Name: "Keyboard", Quantity: 2}, nil)

	service := NewCartService(cartRepo, productRepo)
	_, err := service.UpdateQuantity(context.Background(), "u1", 7, 3)

	assert.ErrorIs(t, err, models.ErrOutOfStock)
	cartRepo.AssertNotCalled(t, "SaveItem", mock.Anything, mock.Anything)
}

func TestCartService_UpdateQuantity_AbsentLine(t *testing.T) {
	cartRepo := new(mocks.MockCartRepository)
	productRepo := new(mocks.MockProductRepository)

	productRepo.On("FindByID", mock.Anything, uint(7)).Return(&models.Product{ID: 7, Quantity: 10}, nil)
	cartRepo.On("GetOrCreate", mock.Anything, "u1").Return(&models.Cart{CartID: 1, UserID: "u1"}, nil)

	service := NewCartService(cartRepo, productRepo)
	_, err := service.UpdateQuantity(context.Background(), "u1", 7, 2)

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCartService_RemoveItem_AbsentIsNoop(t *testing.T) {
	cartRepo := new(mocks.MockCartRepository)
	productRepo := new(mocks.MockProductRepository)

	cart := &models.Cart{CartID: 1, UserID: "u1", Items: []models.CartItem{
		{CartID: 1, ProductID: 3, Quantity: 1, PriceAtAddition: 10},
	}}

	cartRepo.On("GetOrCreate", mock.Anything, "u1").Return(cart, nil)
	cartRepo.On("DeleteItem", mock.Anything, uint(1), uint(99)).Return(int64(0), nil)

	service := NewCartService(cartRepo, productRepo)
	got, err := service.RemoveItem(context.Background(), "u1", 99)

	assert.NoError(t, err, "removing an absent line must not be an error")
	assert.Len(t, got.Items, 1)
	cartRepo.AssertExpectations(t)
}

func TestCartService_ClearAll(t *testing.T) {
	cartRepo := new(mocks.MockCartRepository)
	productRepo := new(mocks.MockProductRepository)

	full := &models.Cart{CartID: 1, UserID: "u1", Items: []models.CartItem{{CartID: 1, ProductID: 3, Quantity: 1}}}
	empty := &models.Cart{CartID: 1, UserID: "u1"}

	cartRepo.On("GetOrCreate", mock.Anything, "u1").Return(full, nil).Once()
	cartRepo.On("ClearItems", mock.Anything, uint(1)).Return(nil)
	cartRepo.On("GetOrCreate", mock.Anything, "u1").Return(empty, nil).Once()

	service := NewCartService(cartRepo, productRepo)
	cart, err := service.ClearAll(context.Background(), "u1")

	assert.NoError(t, err)
	assert.Empty(t, cart.Items)
	cartRepo.AssertExpectations(t)
}

func TestCartService_GetCart_LazilyCreates(t *testing.T) {
	cartRepo := new(mocks.MockCartRepository)
	productRepo := new(mocks.MockProductRepository)

	cartRepo.On("GetOrCreate", mock.Anything, "fresh-user").Return(&models.Cart{CartID: 9, UserID: "fresh-user"}, nil)

	service := NewCartService(cartRepo, productRepo)
	cart, err := service.GetCart(context.Background(), "fresh-user")

	assert.NoError(t, err)
	assert.Equal(t, "fresh-user", cart.UserID)
	assert.Empty(t, cart.Items)
}

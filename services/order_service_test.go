package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shivarajwaddar/E-commerce-app/mocks"
	"github.com/shivarajwaddar/E-commerce-app/models"
)

var buyerWithAddress = &models.User{ID: "u1", Name: "Asha", Address: "12 Main St"}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	userRepo := new(mocks.MockUserRepository)
	productRepo := new(mocks.MockProductRepository)

	userRepo.On("FindByID", mock.Anything, "u1").Return(buyerWithAddress, nil)
	productRepo.On("FindByID", mock.Anything, uint(5)).Return(&models.Product{ID: 5, Name: "Lamp", Price: 120, Quantity: 5}, nil)

	var created *models.Order
	orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.Order")).Return(nil).Run(func(args mock.Arguments) {
		created = args.Get(1).(*models.Order)
		created.ID = 42
	})

	service := NewOrderService(orderRepo, userRepo, productRepo)
	lines := []models.CartItem{{ProductID: 5, Quantity: 2, PriceAtAddition: 100}}
	order, err := service.PlaceOrder(context.Background(), "u1", lines, 200, models.PaymentMethodCOD)

	assert.NoError(t, err)
	assert.NotNil(t, order)
	assert.Equal(t, 200.0, order.TotalAmount)
	assert.Equal(t, models.OrderStatusNotProcessed, order.OrderStatus)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, models.PaymentMethodCOD, order.PaymentMethod)
	assert.NotEmpty(t, order.OrderRef)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, 100.0, order.Items[0].PriceAtAddition, "snapshot keeps price-at-addition, not the live price")
	assert.Same(t, created, order)
	orderRepo.AssertExpectations(t)
}

func TestOrderService_PlaceOrder_OutOfStock(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	userRepo := new(mocks.MockUserRepository)
	productRepo := new(mocks.MockProductRepository)

	userRepo.On("FindByID", mock.Anything, "u1").Return(buyerWithAddress, nil)
	productRepo.On("FindByID", mock.Anything, uint(5)).Return(&models.Product{ID: 5, Name: "Lamp", Price: 100, Quantity: 1}, nil)

	service := NewOrderService(orderRepo, userRepo, productRepo)
	lines := []models.CartItem{{ProductID: 5, Quantity: 3, PriceAtAddition: 100}}
	_, err := service.PlaceOrder(context.Background(), "u1", lines, 300, models.PaymentMethodCOD)

	assert.ErrorIs(t, err, models.ErrOutOfStock)
	assert.ErrorContains(t, err, "Lamp", "failure names the offending product")
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_ZeroStockBeatsAnyTotal(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	userRepo := new(mocks.MockUserRepository)
	productRepo := new(mocks.MockProductRepository)

	userRepo.On("FindByID", mock.Anything, "u1").Return(buyerWithAddress, nil)
	productRepo.On("FindByID", mock.Anything, uint(5)).Return(&models.Product{ID: 5, Name: "Lamp", Price: 100, Quantity: 0}, nil)

	service := NewOrderService(orderRepo, userRepo, productRepo)
	lines := []models.CartItem{{ProductID: 5, Quantity: 1, PriceAtAddition: 100}}

	// whatever total the caller claims, a dead line sinks the order
	for _, total := range []float64{0, 100, 99999} {
		_, err := service.PlaceOrder(context.Background(), "u1", lines, total, models.PaymentMethodOnline)
		assert.ErrorIs(t, err, models.ErrOutOfStock)
	}
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_AmountMismatch(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	userRepo := new(mocks.MockUserRepository)
	productRepo := new(mocks.MockProductRepository)

	userRepo.On("FindByID", mock.Anything, "u1").Return(buyerWithAddress, nil)
	productRepo.On("FindByID", mock.Anything, uint(5)).Return(&models.Product{ID: 5, Name: "Lamp", Price: 100, Quantity: 5}, nil)

	service := NewOrderService(orderRepo, userRepo, productRepo)
	lines := []models.CartItem{{ProductID: 5, Quantity: 2, PriceAtAddition: 100}}
	_, err := service.PlaceOrder(context.Background(), "u1", lines, 150, models.PaymentMethodOnline)

	assert.ErrorIs(t, err, models.ErrAmountMismatch)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_MissingAddress(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	userRepo := new(mocks.MockUserRepository)
	productRepo := new(mocks.MockProductRepository)

	userRepo.On("FindByID", mock.Anything, "u2").Return(&models.User{ID: "u2", Name: "NoAddress"}, nil)

	service := NewOrderService(orderRepo, userRepo, productRepo)
	lines := []models.CartItem{{ProductID: 5, Quantity: 1, PriceAtAddition: 100}}
	_, err := service.PlaceOrder(context.Background(), "u2", lines, 100, models.PaymentMethodCOD)

	assert.ErrorIs(t, err, models.ErrMissingAddress)
	// the address gate fires before any stock check
	productRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderService_PlaceOrder_EmptyOrder(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	userRepo := new(mocks.MockUserRepository)
	productRepo := new(mocks.MockProductRepository)

	userRepo.On("FindByID", mock.Anything, "u1").Return(buyerWithAddress, nil)

	service := NewOrderService(orderRepo, userRepo, productRepo)
	_, err := service.PlaceOrder(context.Background(), "u1", nil, 0, models.PaymentMethodCOD)

	assert.ErrorIs(t, err, models.ErrEmptyOrder)
}

func TestOrderService_PlaceOrder_RaceLostAtCommit(t *testing.T) {
	// advisory check passes, but the row-locked commit loses the race
	orderRepo := new(mocks.MockOrderRepository)
	userRepo := new(mocks.MockUserRepository)
	productRepo := new(mocks.MockProductRepository)

	userRepo.On("FindByID", mock.Anything, "u1").Return(buyerWithAddress, nil)
	productRepo.On("FindByID", mock.Anything, uint(5)).Return(&models.Product{ID: 5, Name: "Lamp", Price: 100, Quantity: 1}, nil)
	orderRepo.On("Create", mock.Anything, mock.Anything).Return(models.ErrOutOfStock)

	service := NewOrderService(orderRepo, userRepo, productRepo)
	lines := []models.CartItem{{ProductID: 5, Quantity: 1, PriceAtAddition: 100}}
	_, err := service.PlaceOrder(context.Background(), "u1", lines, 100, models.PaymentMethodOnline)

	assert.ErrorIs(t, err, models.ErrOutOfStock)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	tests := []struct {
		name        string
		from        models.OrderStatus
		method      models.PaymentMethod
		payment     models.PaymentStatus
		to          models.OrderStatus
		wantErr     error
		wantPayment models.PaymentStatus
	}{
		{"forward step", models.OrderStatusNotProcessed, models.PaymentMethodOnline, models.PaymentStatusPaid, models.OrderStatusProcessing, nil, models.PaymentStatusPaid},
		{"skip ahead", models.OrderStatusProcessing, models.PaymentMethodOnline, models.PaymentStatusPaid, models.OrderStatusDelivered, nil, models.PaymentStatusPaid},
		{"cod settles on delivery", models.OrderStatusShipped, models.PaymentMethodCOD, models.PaymentStatusPending, models.OrderStatusDelivered, nil, models.PaymentStatusPaid},
		{"refund flips payment", models.OrderStatusDelivered, models.PaymentMethodOnline, models.PaymentStatusPaid, models.OrderStatusRefunded, nil, models.PaymentStatusRefunded},
		{"cancel refunds paid order", models.OrderStatusProcessing, models.PaymentMethodOnline, models.PaymentStatusPaid, models.OrderStatusCancelled, nil, models.PaymentStatusRefunded},
		{"no-op rejected", models.OrderStatusShipped, models.PaymentMethodCOD, models.PaymentStatusPending, models.OrderStatusShipped, models.ErrBadTransition, ""},
		{"backward rejected", models.OrderStatusDelivered, models.PaymentMethodCOD, models.PaymentStatusPaid, models.OrderStatusProcessing, models.ErrBadTransition, ""},
		{"terminal is final", models.OrderStatusCancelled, models.PaymentMethodCOD, models.PaymentStatusPending, models.OrderStatusProcessing, models.ErrBadTransition, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderRepo := new(mocks.MockOrderRepository)
			userRepo := new(mocks.MockUserRepository)
			productRepo := new(mocks.MockProductRepository)

			orderRepo.On("FindByID", mock.Anything, uint(1)).Return(&models.Order{
				ID:            1,
				OrderStatus:   tt.from,
				PaymentMethod: tt.method,
				PaymentStatus: tt.payment,
			}, nil)
			if tt.wantErr == nil {
				orderRepo.On("UpdateStatus", mock.Anything, uint(1), tt.to, tt.wantPayment).Return(nil)
			}

			service := NewOrderService(orderRepo, userRepo, productRepo)
			order, err := service.UpdateOrderStatus(context.Background(), 1, tt.to)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.to, order.OrderStatus)
			assert.Equal(t, tt.wantPayment, order.PaymentStatus)
			orderRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	orderRepo := new(mocks.MockOrderRepository)
	service := NewOrderService(orderRepo, new(mocks.MockUserRepository), new(mocks.MockProductRepository))

	userOrders := []models.Order{{ID: 1, UserID: "u1"}}
	adminOrders := []models.Order{{ID: 1}, {ID: 2}}
	orderRepo.On("ListByUser", mock.Anything, "u1").Return(userOrders, nil)
	orderRepo.On("ListByProductOwner", mock.Anything, "admin1").Return(adminOrders, nil)

	got, err := service.ListOrdersForUser(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Equal(t, userOrders, got)

	got, err = service.ListOrdersForAdmin(context.Background(), "admin1")
	assert.NoError(t, err)
	assert.Equal(t, adminOrders, got)
}

func TestOrderService_OrderStatuses(t *testing.T) {
	service := NewOrderService(new(mocks.MockOrderRepository), new(mocks.MockUserRepository), new(mocks.MockProductRepository))

	statuses := service.OrderStatuses()
	assert.Equal(t, models.OrderStatusNotProcessed, statuses[0], "lifecycle starts at Not Processed")
	assert.Len(t, statuses, 6)
}

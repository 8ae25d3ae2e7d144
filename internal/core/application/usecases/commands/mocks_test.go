package commands_test

import (
	"context"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/catalog"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockSubOrderRepository struct{ mock.Mock }

func (m *MockSubOrderRepository) Add(ctx context.Context, so *order.SubOrder) error {
	args := m.Called(ctx, so)
	return args.Error(0)
}

func (m *MockSubOrderRepository) Update(ctx context.Context, so *order.SubOrder) error {
	args := m.Called(ctx, so)
	return args.Error(0)
}

func (m *MockSubOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.SubOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.SubOrder), args.Error(1)
}

func (m *MockSubOrderRepository) Claim(ctx context.Context, id, courierID kernel.UUID) (*order.SubOrder, error) {
	args := m.Called(ctx, id, courierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.SubOrder), args.Error(1)
}

func (m *MockSubOrderRepository) GetAllUnassigned(ctx context.Context) ([]*order.SubOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.SubOrder), args.Error(1)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) FindItemsByIDs(ctx context.Context, ids []kernel.UUID) ([]*catalog.Item, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Item), args.Error(1)
}

func (m *MockCatalogRepository) DecrementStock(ctx context.Context, itemID kernel.UUID, quantity int, conditional bool) error {
	args := m.Called(ctx, itemID, quantity, conditional)
	return args.Error(0)
}

type MockDirectory struct{ mock.Mock }

func (m *MockDirectory) GetShop(ctx context.Context, id kernel.UUID) (catalog.Shop, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Shop), args.Error(1)
}

func (m *MockDirectory) GetShopsByIDs(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]catalog.Shop, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]catalog.Shop), args.Error(1)
}

func (m *MockDirectory) ListCourierIDs(ctx context.Context) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(participantID kernel.UUID, eventName string, payload any) {
	m.Called(participantID, eventName, payload)
}

func (m *MockNotifier) Broadcast(eventName string, payload any) {
	m.Called(eventName, payload)
}

type MockPlaceOrderUoW struct{ mock.Mock }

func (m *MockPlaceOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlaceOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlaceOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlaceOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockPlaceOrderUoW) SubOrderRepository() ports.SubOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.SubOrderRepository)
}

func (m *MockPlaceOrderUoW) CatalogRepository() ports.CatalogRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogRepository)
}

type MockPlaceOrderUoWFactory struct{ mock.Mock }

func (m *MockPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.PlaceOrderUoW)
}

type MockSubOrderUoW struct{ mock.Mock }

func (m *MockSubOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSubOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSubOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSubOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockSubOrderUoW) SubOrderRepository() ports.SubOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.SubOrderRepository)
}

type MockSubOrderUoWFactory struct{ mock.Mock }

func (m *MockSubOrderUoWFactory) Create() commands.SubOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.SubOrderUoW)
}

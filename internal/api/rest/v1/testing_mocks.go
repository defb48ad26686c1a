//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/MGTheTrain/hbnb-storage/internal/domain/entities"
	"github.com/MGTheTrain/hbnb-storage/internal/domain/storage"
)

// MockEngine is a mock implementation of storage.Engine
type MockEngine struct {
	mock.Mock
}

func (m *MockEngine) Reload(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEngine) All(ctx context.Context, typeName string) (map[string]string, error) {
	args := m.Called(ctx, typeName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]string), args.Error(1)
}

func (m *MockEngine) Get(ctx context.Context, typeName, id string) (entities.Entity, error) {
	args := m.Called(ctx, typeName, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(entities.Entity), args.Error(1)
}

func (m *MockEngine) New(ctx context.Context, entity entities.Entity) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockEngine) Save(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEngine) Delete(ctx context.Context, entity entities.Entity) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockEngine) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockEngine) NewEntity(typeName string) (entities.Entity, error) {
	args := m.Called(typeName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(entities.Entity), args.Error(1)
}

func (m *MockEngine) State() storage.State {
	args := m.Called()
	return args.Get(0).(storage.State)
}

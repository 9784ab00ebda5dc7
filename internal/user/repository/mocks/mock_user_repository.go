package mocks

import (
	"context"

	"github.com/sakuraclothing/store-cli/internal/user/domain"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	args := m.Called(ctx, username)
	if a := args.Get(0); a != nil {
		return a.(*domain.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if a := args.Get(0); a != nil {
		return a.([]domain.Account), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, acct domain.Account) error {
	args := m.Called(ctx, acct)
	return args.Error(0)
}

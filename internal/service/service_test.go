package service

import (
	"context"
	"errors"
	"testing"

	"github.com/leon37/promptboard/internal/auth"
	"github.com/leon37/promptboard/internal/model"
	"github.com/leon37/promptboard/internal/repository"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// mockStore 只覆盖需要的方法，其余走嵌入的真实 Store
type mockStore struct {
	repository.Store

	findUserByEmailFn func(ctx context.Context, email string) (*model.User, error)
	findUserByIDFn    func(ctx context.Context, id uint) (*model.User, error)
	createUserFn      func(ctx context.Context, user *model.User) error
	listPostsFn       func(ctx context.Context) ([]model.Post, error)
}

func (m *mockStore) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return m.Store.FindUserByEmail(ctx, email)
}

func (m *mockStore) FindUserByID(ctx context.Context, id uint) (*model.User, error) {
	if m.findUserByIDFn != nil {
		return m.findUserByIDFn(ctx, id)
	}
	return m.Store.FindUserByID(ctx, id)
}

func (m *mockStore) CreateUser(ctx context.Context, user *model.User) error {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return m.Store.CreateUser(ctx, user)
}

func (m *mockStore) ListPosts(ctx context.Context) ([]model.Post, error) {
	if m.listPostsFn != nil {
		return m.listPostsFn(ctx)
	}
	return m.Store.ListPosts(ctx)
}

var errDBDown = errors.New("connection refused")

func newAuthService(t *testing.T, store repository.Store) *AuthService {
	t.Helper()
	tokens, err := auth.NewTokenCodec([]byte("test-secret"), auth.DefaultTokenTTL)
	require.NoError(t, err)
	svc, err := NewAuthService(store, auth.NewPasswordHasher(bcrypt.MinCost), tokens)
	require.NoError(t, err)
	return svc
}

package service

import (
	"context"
	"testing"

	"github.com/leon37/promptboard/internal/model"
	"github.com/leon37/promptboard/internal/repository"
	"github.com/leon37/promptboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUserWithPosts(t *testing.T, store repository.Store, email string, titles ...string) *model.User {
	t.Helper()
	ctx := context.Background()
	u := &model.User{Email: email, PasswordHash: "hash"}
	require.NoError(t, store.CreateUser(ctx, u))
	for _, title := range titles {
		require.NoError(t, store.CreatePost(ctx, &model.Post{Title: title, UserID: u.ID}))
	}
	return u
}

func TestUserService_DeleteUser(t *testing.T) {
	ctx := context.Background()
	store := testutil.OpenStore(t)
	alice := seedUserWithPosts(t, store, "a@x.com", "a1", "a2")
	bob := seedUserWithPosts(t, store, "b@x.com", "b1")

	svc := NewUserService(store)
	deleted, err := svc.DeleteUser(ctx, alice.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, &model.PublicUser{ID: alice.ID, Email: "a@x.com"}, deleted)

	_, err = store.FindUserByID(ctx, alice.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	posts, err := store.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, bob.ID, posts[0].UserID)
}

func TestUserService_DeleteUser_Forbidden(t *testing.T) {
	ctx := context.Background()
	store := testutil.OpenStore(t)
	alice := seedUserWithPosts(t, store, "a@x.com", "a1")
	bob := seedUserWithPosts(t, store, "b@x.com")

	_, err := NewUserService(store).DeleteUser(ctx, bob.ID, alice.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// 什么都没删
	_, err = store.FindUserByID(ctx, alice.ID)
	require.NoError(t, err)
	posts, err := store.ListPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestUserService_DeleteUser_NotFound(t *testing.T) {
	svc := NewUserService(testutil.OpenStore(t))

	// token 仍有效但用户已经不在了
	_, err := svc.DeleteUser(context.Background(), 7, 7)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.DeleteUser(context.Background(), 7, 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUserService_DeleteUser_RollsBack(t *testing.T) {
	ctx := context.Background()
	base := testutil.OpenStore(t)
	alice := seedUserWithPosts(t, base, "a@x.com", "a1", "a2")

	svc := NewUserService(&txFailStore{Store: base})
	_, err := svc.DeleteUser(ctx, alice.ID, alice.ID)
	assert.ErrorIs(t, err, ErrInternal)

	// 帖子删除被回滚
	posts, err := base.ListPosts(ctx)
	require.NoError(t, err)
	assert.Len(t, posts, 2)
	_, err = base.FindUserByID(ctx, alice.ID)
	require.NoError(t, err)
}

// txFailStore 在事务内部让 DeleteUser 失败
type txFailStore struct {
	repository.Store
}

func (s *txFailStore) Transaction(ctx context.Context, fn func(tx repository.Store) error) error {
	return s.Store.Transaction(ctx, func(tx repository.Store) error {
		return fn(&failingDelete{Store: tx})
	})
}

type failingDelete struct {
	repository.Store
}

func (f *failingDelete) DeleteUser(context.Context, uint) error {
	return errDBDown
}

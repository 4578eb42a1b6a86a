package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/leon37/promptboard/internal/model"
	"github.com/leon37/promptboard/internal/repository"
)

type UserService struct {
	store repository.Store
}

func NewUserService(store repository.Store) *UserService {
	return &UserService{store: store}
}

// DeleteUser 删除用户及其所有帖子 (同一个事务)。只允许删除自己
func (s *UserService) DeleteUser(ctx context.Context, callerID, targetID uint) (*model.PublicUser, error) {
	if targetID == 0 {
		return nil, ErrInvalidUserID
	}
	if callerID != targetID {
		return nil, ErrForbidden
	}

	var deleted *model.User
	var postCount int64
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		user, err := tx.FindUserByID(ctx, targetID)
		if err != nil {
			return err
		}
		if postCount, err = tx.DeletePostsByUser(ctx, targetID); err != nil {
			return err
		}
		if err := tx.DeleteUser(ctx, targetID); err != nil {
			return err
		}
		deleted = user
		return nil
	})
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, internal("delete user", err)
	}

	slog.InfoContext(ctx, "user deleted", "user_id", targetID, "posts", postCount)
	return deleted.Public(), nil
}

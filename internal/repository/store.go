package repository

import (
	"context"
	"errors"

	"github.com/leon37/promptboard/internal/model"
)

var (
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate 违反唯一约束 (例如重复的 email)
	ErrDuplicate = errors.New("duplicate record")
)

// Store 定义了业务层需要的全部持久化能力 (为了以后方便 Mock)
type Store interface {
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	FindUserByID(ctx context.Context, id uint) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, id uint) error

	CreatePost(ctx context.Context, post *model.Post) error
	ListPosts(ctx context.Context) ([]model.Post, error)
	DeletePostsByUser(ctx context.Context, userID uint) (int64, error)

	// Transaction 在同一个事务里执行 fn，fn 返回错误或 panic 时回滚
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

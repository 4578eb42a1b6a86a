package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/leon37/promptboard/internal/model"
	"gorm.io/gorm"
)

// gormStore 是 Store 的 gorm 实现
type gormStore struct {
	db *gorm.DB
}

// NewStore 构造函数。db 需要用 TranslateError 打开，才能识别唯一约束冲突
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, translate("find user by email", err)
	}
	return &user, nil
}

func (s *gormStore) FindUserByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, translate("find user by id", err)
	}
	return &user, nil
}

func (s *gormStore) CreateUser(ctx context.Context, user *model.User) error {
	return translate("create user", s.db.WithContext(ctx).Create(user).Error)
}

func (s *gormStore) DeleteUser(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&model.User{}, id)
	if res.Error != nil {
		return translate("delete user", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) CreatePost(ctx context.Context, post *model.Post) error {
	return translate("create post", s.db.WithContext(ctx).Create(post).Error)
}

// ListPosts 按 id 升序返回，保证两次读取之间没有写入时结果一致
func (s *gormStore) ListPosts(ctx context.Context) ([]model.Post, error) {
	posts := make([]model.Post, 0)
	if err := s.db.WithContext(ctx).Order("id asc").Find(&posts).Error; err != nil {
		return nil, translate("list posts", err)
	}
	return posts, nil
}

func (s *gormStore) DeletePostsByUser(ctx context.Context, userID uint) (int64, error) {
	res := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Post{})
	if res.Error != nil {
		return 0, translate("delete posts", res.Error)
	}
	return res.RowsAffected, nil
}

func (s *gormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

// translate 把 gorm 的错误映射成仓储层的错误，其余错误原样 wrap
func translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

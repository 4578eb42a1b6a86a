package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/leon37/promptboard/internal/auth"
	"github.com/leon37/promptboard/internal/model"
	"github.com/leon37/promptboard/internal/repository"
)

// AuthService 负责注册、登录和 token 校验。无状态，只依赖注入进来的组件
type AuthService struct {
	store  repository.Store
	hasher *auth.PasswordHasher
	tokens *auth.TokenCodec

	// 邮箱不存在时拿来比对的假哈希，让两种失败的耗时接近
	dummyHash string
}

// NewAuthService 构造函数 (依赖注入)
func NewAuthService(store repository.Store, hasher *auth.PasswordHasher, tokens *auth.TokenCodec) (*AuthService, error) {
	dummy, err := hasher.Hash("promptboard-dummy-password")
	if err != nil {
		return nil, err
	}
	return &AuthService{
		store:     store,
		hasher:    hasher,
		tokens:    tokens,
		dummyHash: dummy,
	}, nil
}

// Register 注册逻辑
func (s *AuthService) Register(ctx context.Context, email, password string) (*model.PublicUser, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	// 1. 先查一次，给出明确的错误
	if _, err := s.store.FindUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, internal("find user", err)
	}

	// 2. 密码加密
	hash, err := s.hasher.Hash(password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return nil, kindError(ErrValidation, "Password is too long")
	}
	if err != nil {
		return nil, internal("hash password", err)
	}

	// 3. 落库，并发注册由唯一索引兜底
	user := &model.User{Email: email, PasswordHash: hash}
	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, internal("create user", err)
	}

	slog.InfoContext(ctx, "user registered", "user_id", user.ID)
	return user.Public(), nil
}

// Login 登录逻辑，返回 Token
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", ErrMissingCredentials
	}

	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return "", internal("find user", err)
		}
		s.hasher.Verify(password, s.dummyHash)
		return "", ErrInvalidCredentials // 模糊报错为了安全
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", internal("issue token", err)
	}
	slog.InfoContext(ctx, "user logged in", "user_id", user.ID)
	return token, nil
}

// Authorize 校验 token，返回其中的 userID。错误 wrap 了 auth.ErrInvalidToken
func (s *AuthService) Authorize(token string) (uint, error) {
	return s.tokens.Verify(token)
}

// CurrentUser 查询已认证用户的公开信息
func (s *AuthService) CurrentUser(ctx context.Context, userID uint) (*model.PublicUser, error) {
	user, err := s.store.FindUserByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, internal("find user", err)
	}
	return user.Public(), nil
}

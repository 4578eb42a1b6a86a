package service

import (
	"context"
	"errors"
	"strings"

	"github.com/leon37/promptboard/internal/model"
	"github.com/leon37/promptboard/internal/repository"
)

// PostInput 创建帖子的参数
type PostInput struct {
	Title   string
	Content string
	UserID  uint
}

type PostService struct {
	store repository.Store
}

func NewPostService(store repository.Store) *PostService {
	return &PostService{store: store}
}

// ListPosts 按 id 升序返回全部帖子
func (s *PostService) ListPosts(ctx context.Context) ([]model.Post, error) {
	posts, err := s.store.ListPosts(ctx)
	if err != nil {
		return nil, internal("list posts", err)
	}
	return posts, nil
}

// CreatePost 标题必填，作者必须存在
func (s *PostService) CreatePost(ctx context.Context, in PostInput) (*model.Post, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrInvalidPost
	}
	if in.UserID == 0 {
		return nil, ErrUnknownAuthor
	}

	if _, err := s.store.FindUserByID(ctx, in.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownAuthor
		}
		return nil, internal("find author", err)
	}

	post := &model.Post{Title: title, Content: in.Content, UserID: in.UserID}
	if err := s.store.CreatePost(ctx, post); err != nil {
		return nil, internal("create post", err)
	}
	return post, nil
}

package service

import (
	"context"

	"mblog/internal/model"
	appErr "mblog/internal/pkg/errors"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

type PostService struct {
	posts PostStore
}

func NewPostService(posts PostStore) *PostService {
	return &PostService{posts: posts}
}

type PostInput struct {
	Title     string
	Content   string
	Published bool
}

func (s *PostService) Create(ctx context.Context, ownerID int64, in PostInput) (*model.Post, error) {
	post := &model.Post{
		Title:     in.Title,
		Content:   in.Content,
		Published: in.Published,
		OwnerID:   ownerID,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// List only ever returns the caller's own posts; there is no error path
// for foreign posts here, they are simply filtered out.
func (s *PostService) List(ctx context.Context, callerID int64, search string, limit, offset uint) ([]model.Post, error) {
	if limit == 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.posts.ListByOwner(ctx, callerID, search, limit, offset)
}

func (s *PostService) Get(ctx context.Context, callerID, postID int64) (*model.Post, error) {
	return s.authorize(ctx, callerID, postID)
}

// Update is full-replace: every field of in overwrites the stored post.
func (s *PostService) Update(ctx context.Context, callerID, postID int64, in PostInput) (*model.Post, error) {
	post, err := s.authorize(ctx, callerID, postID)
	if err != nil {
		return nil, err
	}
	if err := s.posts.Update(ctx, postID, in.Title, in.Content, in.Published); err != nil {
		return nil, err
	}
	post.Title = in.Title
	post.Content = in.Content
	post.Published = in.Published
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, callerID, postID int64) error {
	if _, err := s.authorize(ctx, callerID, postID); err != nil {
		return err
	}
	return s.posts.Delete(ctx, postID)
}

// authorize is the single ownership gate for every single-post
// operation. Existence is checked before ownership, so a missing post is
// always 404 and an existing foreign post is always 403.
func (s *PostService) authorize(ctx context.Context, callerID, postID int64) (*model.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.OwnerID != callerID {
		return nil, appErr.ErrForbidden
	}
	return post, nil
}

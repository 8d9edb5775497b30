package service

import (
	"context"
	"strings"

	"mblog/internal/model"
	appErr "mblog/internal/pkg/errors"
)

// In-memory stores used by the service tests.

type fakeUserStore struct {
	nextID int64
	users  map[int64]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]*model.User{}}
}

func (s *fakeUserStore) Create(ctx context.Context, user *model.User) error {
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return appErr.ErrConflict
		}
	}
	s.nextID++
	user.ID = s.nextID
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *fakeUserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, appErr.ErrNotFound
}

func (s *fakeUserStore) GetByID(ctx context.Context, userID int64) (*model.User, error) {
	user, ok := s.users[userID]
	if !ok {
		return nil, appErr.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

type fakePostStore struct {
	nextID int64
	posts  map[int64]*model.Post
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{posts: map[int64]*model.Post{}}
}

func (s *fakePostStore) Create(ctx context.Context, post *model.Post) error {
	s.nextID++
	post.ID = s.nextID
	copied := *post
	s.posts[post.ID] = &copied
	return nil
}

func (s *fakePostStore) GetByID(ctx context.Context, postID int64) (*model.Post, error) {
	post, ok := s.posts[postID]
	if !ok {
		return nil, appErr.ErrNotFound
	}
	copied := *post
	return &copied, nil
}

func (s *fakePostStore) ListByOwner(ctx context.Context, ownerID int64, search string, limit, offset uint) ([]model.Post, error) {
	matched := make([]model.Post, 0)
	for id := int64(1); id <= s.nextID; id++ {
		post, ok := s.posts[id]
		if !ok || post.OwnerID != ownerID {
			continue
		}
		if !strings.Contains(post.Title, search) {
			continue
		}
		matched = append(matched, *post)
	}
	if offset >= uint(len(matched)) {
		return []model.Post{}, nil
	}
	matched = matched[offset:]
	if uint(len(matched)) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (s *fakePostStore) Update(ctx context.Context, postID int64, title, content string, published bool) error {
	post, ok := s.posts[postID]
	if !ok {
		return appErr.ErrNotFound
	}
	post.Title = title
	post.Content = content
	post.Published = published
	return nil
}

func (s *fakePostStore) Delete(ctx context.Context, postID int64) error {
	if _, ok := s.posts[postID]; !ok {
		return appErr.ErrNotFound
	}
	delete(s.posts, postID)
	return nil
}

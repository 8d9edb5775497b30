package service

import (
	"context"

	"mblog/internal/model"
)

// Store interfaces consumed by the services; satisfied by the repo
// package in production and by fakes in tests.

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, userID int64) (*model.User, error)
}

type PostStore interface {
	Create(ctx context.Context, post *model.Post) error
	GetByID(ctx context.Context, postID int64) (*model.Post, error)
	ListByOwner(ctx context.Context, ownerID int64, search string, limit, offset uint) ([]model.Post, error)
	Update(ctx context.Context, postID int64, title, content string, published bool) error
	Delete(ctx context.Context, postID int64) error
}

package service

import (
	"context"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"mblog/internal/model"
	appErr "mblog/internal/pkg/errors"
	"mblog/internal/pkg/jwt"
	"mblog/internal/pkg/password"
)

type AuthService struct {
	users  UserStore
	signer *jwt.Signer
}

func NewAuthService(users UserStore, signer *jwt.Signer) *AuthService {
	return &AuthService{users: users, signer: signer}
}

func (s *AuthService) Register(ctx context.Context, email, plainPassword string) (*model.User, error) {
	hash, err := password.Hash(plainPassword)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the credentials and returns a fresh bearer token. Both an
// unknown email and a wrong password come back as ErrBadCredentials so
// the caller cannot probe which emails are registered.
func (s *AuthService) Login(ctx context.Context, email, plainPassword string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if appErr.IsNotFound(err) {
			return "", appErr.ErrBadCredentials
		}
		return "", err
	}
	ok, err := password.Verify(plainPassword, user.PasswordHash)
	if err != nil {
		logutil.GetLogger(ctx).Error("stored password hash unreadable", zap.Int64("user_id", user.ID), zap.Error(err))
		return "", err
	}
	if !ok {
		return "", appErr.ErrBadCredentials
	}
	return s.signer.Issue(user.ID)
}

// Authenticate resolves a bearer token into the user it was issued to.
// Every rejection collapses to ErrUnauthorized; a token for a user that
// no longer exists fails the same way.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	userID, err := s.signer.Verify(token)
	if err != nil {
		logutil.GetLogger(ctx).Debug("token rejected", zap.Error(err))
		return nil, appErr.ErrUnauthorized
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if appErr.IsNotFound(err) {
			logutil.GetLogger(ctx).Debug("token for missing user", zap.Int64("user_id", userID))
			return nil, appErr.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

// GetUser is the public profile lookup; it does not require auth.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	return s.users.GetByID(ctx, userID)
}

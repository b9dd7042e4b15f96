package service

import (
	"context"
	"fmt"

	"github.com/dkotelnikov/shop-backend/internal/hash"
	"github.com/dkotelnikov/shop-backend/internal/models"
	"github.com/dkotelnikov/shop-backend/internal/repo"
)

type AccountService struct {
	Repo *repo.GormRepo
}

func (s *AccountService) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required: %w", ErrValidation)
	}

	existing, err := s.Repo.UserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("account %q already exists: %w", email, ErrDuplicateEmail)
	}

	passwordHash, err := hash.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         "user",
		Cart:         models.CartData{},
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AccountService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.Repo.UserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrWrongEmail
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, ErrWrongPassword
	}
	return user, nil
}

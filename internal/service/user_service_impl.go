package service

import (
	"context"
	"strings"

	"github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/repository"
)

type userService struct {
	users repository.UserRepo
}

func NewUserService(users repository.UserRepo) UserService {
	return &userService{users: users}
}

func (s *userService) Create(ctx context.Context, in app.UserInput) (*domain.User, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	u := &domain.User{
		Username: strings.TrimSpace(in.Username),
		Role:     domain.Role(in.Role),
		School:   strings.TrimSpace(in.School),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.GetByUsername(ctx, strings.TrimSpace(username))
}

func (s *userService) List(ctx context.Context, school string) ([]*domain.User, error) {
	return s.users.List(ctx, school)
}

package api

import (
	"context"

	"canteen/internal/domain/model"
	"canteen/internal/repository"
)

type AuthAPIRepository struct {
	c *Client
}

// DI
func NewAuthAPIRepository(c *Client) *AuthAPIRepository {
	return &AuthAPIRepository{c: c}
}

type loginRequest struct {
	SchoolID string `json:"schoolId"`
	Password string `json:"password"`
}

func (r *AuthAPIRepository) Login(ctx context.Context, schoolID, password string) (model.AuthResponse, error) {
	var res model.AuthResponse
	if err := r.c.post(ctx, "/api/auth/login", loginRequest{SchoolID: schoolID, Password: password}, &res); err != nil {
		return model.AuthResponse{}, err
	}
	return res, nil
}

func (r *AuthAPIRepository) SignUp(ctx context.Context, in repository.SignUpInput) (model.User, error) {
	var u model.User
	if err := r.c.post(ctx, "/api/auth/signup", in, &u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

func (r *AuthAPIRepository) CurrentUser(ctx context.Context) (model.User, error) {
	var u model.User
	if err := r.c.get(ctx, "/api/users/me", &u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

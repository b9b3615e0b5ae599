package repository

import (
	"context"

	"canteen/internal/domain/model"
)

type SignUpInput struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
	SchoolID string `json:"schoolId"`
}

// 認証はバックエンド委譲。クライアントはトークンを預かるだけ。
type AuthRepository interface {
	Login(ctx context.Context, schoolID, password string) (model.AuthResponse, error)
	SignUp(ctx context.Context, in SignUpInput) (model.User, error)
	CurrentUser(ctx context.Context) (model.User, error)
}

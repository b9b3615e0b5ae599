package model

import "time"

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleStaff    Role = "STAFF"
	RoleAdmin    Role = "ADMIN"
)

type User struct {
	UserID    int64      `json:"userId"`
	FullName  string     `json:"fullName"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	SchoolID  string     `json:"schoolId"`
	RoleName  Role       `json:"roleName"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// ログイン応答。tokenはバックエンド発行のJWT。
type AuthResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	User      User   `json:"user"`
}

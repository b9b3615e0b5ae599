package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// 401。トークン切れ・未ログイン。
	ErrUnauthorized = errors.New("unauthorized")
	// 403。権限不足。
	ErrForbidden = errors.New("forbidden")
	// バックエンド不達・5xxなどの輸送系。リトライで回復しうる。
	ErrUnavailable = errors.New("backend unavailable")
)

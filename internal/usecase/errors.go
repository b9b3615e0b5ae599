package usecase

import (
	"errors"
	"fmt"
	"net/http"

	repo "canteen/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// mapRepoError はAPI層のエラーをusecaseの分類に寄せる。
// 輸送系は非致命。ローカル状態は呼び出し側で無傷のまま返すこと。
func mapRepoError(err error) error {
	switch {
	case errors.Is(err, repo.ErrUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, repo.ErrForbidden):
		return NewHTTPError(http.StatusForbidden, "forbidden")
	case errors.Is(err, repo.ErrNotFound):
		return NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, repo.ErrUnavailable):
		return NewHTTPError(http.StatusServiceUnavailable, "backend unavailable")
	default:
		return NewHTTPError(http.StatusInternalServerError, "backend error")
	}
}

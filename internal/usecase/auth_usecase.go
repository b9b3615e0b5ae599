package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"

	"canteen/internal/domain/model"
	repo "canteen/internal/repository"
)

// 発行済みトークンの保管先（ファイルなど）。
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// APIクライアントへの認可ヘッダ注入口。
type TokenSink interface {
	SetToken(token string)
}

// バックエンドJWTから読むクレーム。検証はしない（鍵はサーバ側のみ）。
// 画面のロール出し分けと期限切れの先回り判定にだけ使う。
type TokenClaims struct {
	Subject   string
	Role      model.Role
	ExpiresAt time.Time
}

// AuthUsecase はログインセッションの状態コンテナ。
// トークンと利用者は必ずここを通して読み書きする。
type AuthUsecase struct {
	authRepo repo.AuthRepository
	store    TokenStore
	sink     TokenSink
	log      *logrus.Logger

	user *model.User
}

// DI
func NewAuthUsecase(authRepo repo.AuthRepository, store TokenStore, sink TokenSink, log *logrus.Logger) *AuthUsecase {
	return &AuthUsecase{
		authRepo: authRepo,
		store:    store,
		sink:     sink,
		log:      log,
	}
}

func (u *AuthUsecase) Login(ctx context.Context, schoolID, password string) (model.User, error) {
	if strings.TrimSpace(schoolID) == "" || password == "" {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "school id and password required")
	}

	res, err := u.authRepo.Login(ctx, schoolID, password)
	if err != nil {
		return model.User{}, mapRepoError(err)
	}

	u.sink.SetToken(res.Token)
	if err := u.store.Save(res.Token); err != nil {
		// セッション自体は生きている。次回起動で再ログインになるだけ
		u.log.WithError(err).Warn("failed to persist token")
	}

	user := res.User
	u.user = &user
	u.log.WithFields(logrus.Fields{
		"user_id": user.UserID,
		"role":    string(user.RoleName),
	}).Info("logged in")
	return user, nil
}

func (u *AuthUsecase) SignUp(ctx context.Context, in repo.SignUpInput) (model.User, error) {
	if strings.TrimSpace(in.FullName) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.SchoolID) == "" ||
		in.Password == "" {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "missing required fields")
	}

	user, err := u.authRepo.SignUp(ctx, in)
	if err != nil {
		return model.User{}, mapRepoError(err)
	}
	return user, nil
}

// Restore は保存済みトークンからセッションを復元する。
// トークンが無い・期限切れ・/users/me が401なら未ログイン扱い。
func (u *AuthUsecase) Restore(ctx context.Context) (model.User, error) {
	token, err := u.store.Load()
	if err != nil || token == "" {
		return model.User{}, NewHTTPError(http.StatusUnauthorized, "not logged in")
	}

	if claims, err := DecodeClaims(token); err == nil {
		if !claims.ExpiresAt.IsZero() && claims.ExpiresAt.Before(time.Now()) {
			_ = u.store.Clear()
			return model.User{}, NewHTTPError(http.StatusUnauthorized, "session expired")
		}
	}

	u.sink.SetToken(token)
	user, err := u.authRepo.CurrentUser(ctx)
	if err != nil {
		u.sink.SetToken("")
		return model.User{}, mapRepoError(err)
	}

	u.user = &user
	return user, nil
}

func (u *AuthUsecase) Logout() {
	u.user = nil
	u.sink.SetToken("")
	_ = u.store.Clear()
}

// CurrentUser はログイン済みの利用者。未ログインはfalse。
func (u *AuthUsecase) CurrentUser() (model.User, bool) {
	if u.user == nil {
		return model.User{}, false
	}
	return *u.user, true
}

func (u *AuthUsecase) IsAdmin() bool    { return u.hasRole(model.RoleAdmin) }
func (u *AuthUsecase) IsStaff() bool    { return u.hasRole(model.RoleStaff) }
func (u *AuthUsecase) IsCustomer() bool { return u.hasRole(model.RoleCustomer) }

func (u *AuthUsecase) hasRole(role model.Role) bool {
	return u.user != nil && u.user.RoleName == role
}

// DecodeClaims はJWTのペイロードだけを読む。署名検証はしない。
func DecodeClaims(token string) (TokenClaims, error) {
	var claims jwt.MapClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return TokenClaims{}, err
	}

	out := TokenClaims{}
	if sub, ok := claims["sub"].(string); ok {
		out.Subject = sub
	}
	if role, ok := claims["role"].(string); ok {
		out.Role = model.Role(strings.ToUpper(strings.TrimSpace(role)))
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return out, nil
}

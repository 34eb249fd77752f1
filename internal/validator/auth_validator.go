package validator

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"app/internal/repository"
	"app/internal/usecase"
)

var (
	ErrEmailRequired    = errors.New("Email is required")
	ErrPasswordRequired = errors.New("Password is required")
	ErrNameRequired     = errors.New("Name is required")
	ErrInvalidEmail     = errors.New("Invalid email format")
	ErrPasswordTooShort = errors.New("Password must be at least 8 characters")
	ErrEmailAlreadyUsed = errors.New("Email already exists")
)

type authValidator struct {
	users repository.UserRepository
}

// Usecaseは interface を依存注入
func NewAuthValidator(users repository.UserRepository) usecase.AuthValidator {
	return &authValidator{users: users}
}

// 登録の入力を検証。エラーメッセージはそのままクライアントに返る
func (v *authValidator) ValidateRegister(ctx context.Context, email string, password string, name string) error {
	email = strings.TrimSpace(email)

	// 必須チェック
	if email == "" {
		return ErrEmailRequired
	}
	if password == "" {
		return ErrPasswordRequired
	}
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}

	// email形式
	if !isEmailLike(email) {
		return ErrInvalidEmail
	}

	// パスワード最低文字数（MVP: 8）
	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	// email重複チェック（DBが必要）
	u, err := v.users.FindByEmail(ctx, email)
	if err == nil && u != nil {
		return ErrEmailAlreadyUsed
	}

	return nil
}

// 簡易メール形式をチェック
func isEmailLike(s string) bool {
	re := regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	return re.MatchString(s)
}

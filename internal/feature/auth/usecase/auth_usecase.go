// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"mood_backend/internal/feature/auth/domain/entity"
)

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// authUsecase は認証ビジネスロジックを実装します。
type authUsecase struct {
	users      UserRepository
	bcryptCost int
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(users UserRepository) *authUsecase {
	return &authUsecase{users: users, bcryptCost: bcrypt.DefaultCost}
}

// Signup registers email with a bcrypt hash of password.
// The password is pre-hashed with SHA-256 so secrets longer than 72 bytes are accepted.
//
// The existence pre-check gives the common case a clean Conflict; the unique
// index on users.email still decides concurrent signups for the same email.
func (u *authUsecase) Signup(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return ErrInvalidInput
	}

	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword(prehash(password), u.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := u.users.Create(ctx, &entity.User{Email: email, Password: string(hashed)}); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return err
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Login checks password against the stored hash for email.
// Unknown emails yield ErrUserNotFound, wrong passwords ErrInvalidCredentials.
func (u *authUsecase) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return ErrInvalidInput
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), prehash(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

package usecase

import (
	"context"

	"ledger/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the credentials for a username/password login.
type LoginInput struct {
	Username string
	Password string
}

// RegisterUserInput defines the data required to create a staff account.
type RegisterUserInput struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

// ChangeUserRoleInput moves an existing account to a different role.
type ChangeUserRoleInput struct {
	Username string
	Role     string
}

// --- Output DTOs ---

// LoginOutput carries the signed token together with the authenticated
// account, so the handler can echo the role back to the client.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// AuthUsecase defines the interface for account and session operations.
type AuthUsecase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	RegisterUser(ctx context.Context, input RegisterUserInput) (*entity.User, error)
	ChangeUserRole(ctx context.Context, input ChangeUserRoleInput) (*entity.User, error)
}

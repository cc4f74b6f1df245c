package impl

import (
	"context"
	"log/slog"

	deliverycontext "ledger/internal/delivery/context"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/domain/service"
	"ledger/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies the credentials and issues an access token carrying the
// username and role. Unknown usernames and wrong passwords are
// indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Login attempt", slog.String("username", input.Username))

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewUserRepository().FindByUsername(ctx, input.Username)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	token, err := srv.tokenService.GenerateToken(user.Username, user.Role.String())
	if err != nil {
		srv.log(ctx).Error("Failed to generate token", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate access token")
	}
	srv.log(ctx).Debug("Login succeeded", slog.String("username", user.Username), slog.String("role", user.Role.String()))

	return &usecase.LoginOutput{
		AccessToken: token,
		User:        user,
	}, nil
}

// RegisterUser creates a staff account with a hashed password. The Public
// role is never stored, it only describes unauthenticated callers.
func (srv *authService) RegisterUser(ctx context.Context, input usecase.RegisterUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Registering user", slog.String("username", input.Username), slog.String("role", input.Role))

	role := entity.Role(input.Role)
	if !role.IsAssignable() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "role %q cannot be assigned", input.Role)
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Warn("Password rejected during registration", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	user := &entity.User{
		Username:     input.Username,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         role,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateUsername) {
				return errors.Wrap(domainerrors.ErrUserAlreadyExists, input.Username)
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to register user", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	return user, nil
}

// ChangeUserRole moves an existing account to a different role.
func (srv *authService) ChangeUserRole(ctx context.Context, input usecase.ChangeUserRoleInput) (*entity.User, error) {
	srv.log(ctx).Info("Changing user role", slog.String("username", input.Username), slog.String("role", input.Role))

	role := entity.Role(input.Role)
	if !role.IsAssignable() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "role %q cannot be assigned", input.Role)
	}

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if err := userRepo.UpdateRole(ctx, input.Username, role); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, input.Username)
			}

			return errors.Wrap(err, "failed to update role")
		}

		found, err := userRepo.FindByUsername(ctx, input.Username)
		if err != nil {
			return errors.Wrap(err, "failed to reload user")
		}
		user = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to change user role", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	return user, nil
}

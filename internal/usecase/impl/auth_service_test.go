package impl

import (
	"context"
	"testing"

	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	mockRepo "ledger/internal/mocks/repository"
	mockSvc "ledger/internal/mocks/service"
	"ledger/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	txFixture
	service      usecase.AuthUsecase
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fixture := newTxFixture(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	service := NewAuthService(AuthServiceParams{
		TxManager:    fixture.txManager,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		txFixture:    fixture,
		service:      service,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		Username:     "sales1",
		PasswordHash: "hashed_password",
		Role:         entity.RoleSalesperson,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByUsername(ctx, "sales1").Return(user, nil)
	})
	fx.hasher.EXPECT().Check("Secret123!", "hashed_password").Return(true)
	fx.tokenService.EXPECT().
		GenerateToken("sales1", entity.RoleSalesperson.String()).
		Return("signed.jwt.token", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: "sales1", Password: "Secret123!"})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
	assert.Equal(t, user, output.User)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)
	})

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: "ghost", Password: "whatever"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		Username:     "sales1",
		PasswordHash: "hashed_password",
		Role:         entity.RoleSalesperson,
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().FindByUsername(ctx, "sales1").Return(user, nil)
	})
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, usecase.LoginInput{Username: "sales1", Password: "wrong"})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_RegisterUser_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := usecase.RegisterUserInput{
		Username:  "clerk2",
		Password:  "Str0ng#Pass",
		FirstName: "Casey",
		LastName:  "Nguyen",
		Role:      "Inventory Clerk",
	}

	fx.hasher.EXPECT().Hash("Str0ng#Pass").Return("hashed_password", nil)
	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				assert.Equal(t, "hashed_password", user.PasswordHash)
				assert.Equal(t, entity.RoleInventoryClerk, user.Role)
			}).
			Return(nil)
	})

	user, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "clerk2", user.Username)
}

func TestAuthService_RegisterUser_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().
		Hash("weak").
		Return("", errors.Wrap(domainerrors.ErrPasswordStrength, "must be at least 8 characters long"))

	user, err := fx.service.RegisterUser(context.Background(), usecase.RegisterUserInput{
		Username: "clerk2",
		Password: "weak",
		Role:     "Inventory Clerk",
	})

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestAuthService_RegisterUser_PublicRoleRejected(t *testing.T) {
	fx := createTestAuthService(t)

	user, err := fx.service.RegisterUser(context.Background(), usecase.RegisterUserInput{
		Username: "visitor",
		Password: "Str0ng#Pass",
		Role:     "Public",
	})

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_RegisterUser_DuplicateUsername(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Str0ng#Pass").Return("hashed_password", nil)
	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Return(repository.ErrDuplicateUsername)
	})

	user, err := fx.service.RegisterUser(ctx, usecase.RegisterUserInput{
		Username: "clerk2",
		Password: "Str0ng#Pass",
		Role:     "Inventory Clerk",
	})

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_ChangeUserRole_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	updated := &entity.User{Username: "clerk2", Role: entity.RoleManager}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().UpdateRole(ctx, "clerk2", entity.RoleManager).Return(nil)
		userRepo.EXPECT().FindByUsername(ctx, "clerk2").Return(updated, nil)
	})

	user, err := fx.service.ChangeUserRole(ctx, usecase.ChangeUserRoleInput{
		Username: "clerk2",
		Role:     "Manager",
	})

	require.NoError(t, err)
	assert.Equal(t, updated, user)
}

func TestAuthService_ChangeUserRole_UserNotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(userRepo)
		userRepo.EXPECT().UpdateRole(ctx, "ghost", entity.RoleManager).Return(repository.ErrUserNotFound)
	})

	user, err := fx.service.ChangeUserRole(ctx, usecase.ChangeUserRoleInput{
		Username: "ghost",
		Role:     "Manager",
	})

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

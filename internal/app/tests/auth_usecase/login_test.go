package authusecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"myflix/internal/app"
	"myflix/internal/domain/entities"
)

var (
	ErrDatabaseConnection = errors.New("database connection error")
	ErrTokenGeneration    = errors.New("token generation failed")
)

func TestLogin(t *testing.T) {
	ctx := context.Background()

	const (
		username       = "moviefan"
		password       = "correct-password"
		hashedPassword = "hashed_password"
	)

	now := time.Now()
	expiresAt := now.Add(168 * time.Hour)
	accessToken := "access-token-123"

	testUser := &entities.User{
		ID:           "user-id-1",
		Username:     username,
		Email:        "fan@example.com",
		PasswordHash: hashedPassword,
	}

	tests := []struct {
		name        string
		username    string
		password    string
		setupMocks  func(userRepo *mockUserRepository, passwordSvc *mockPasswordService, tokenSvc *mockTokenService)
		expectedErr error
	}{
		{
			name:     "success - user logged in",
			username: username,
			password: password,
			setupMocks: func(userRepo *mockUserRepository, passwordSvc *mockPasswordService, tokenSvc *mockTokenService) {
				userRepo.On("FindByUsername", mock.Anything, username).Return(testUser, nil).Once()
				passwordSvc.On("Verify", mock.Anything, password, hashedPassword).Return(true, nil).Once()
				tokenSvc.On("GenerateToken", mock.Anything, username).
					Return(accessToken, expiresAt, nil).Once()
			},
		},
		{
			name:     "error - unknown username yields generic credentials error",
			username: "nosuchuser",
			password: password,
			setupMocks: func(userRepo *mockUserRepository, passwordSvc *mockPasswordService, _ *mockTokenService) {
				userRepo.On("FindByUsername", mock.Anything, "nosuchuser").
					Return(nil, entities.ErrUserNotFound).Once()
				// Выравнивание времени: хэш проверяется и для неизвестного имени.
				passwordSvc.On("Verify", mock.Anything, password, mock.AnythingOfType("string")).
					Return(false, nil).Once()
			},
			expectedErr: entities.ErrInvalidCredentials,
		},
		{
			name:     "error - wrong password yields the same generic error",
			username: username,
			password: "wrong-password",
			setupMocks: func(userRepo *mockUserRepository, passwordSvc *mockPasswordService, _ *mockTokenService) {
				userRepo.On("FindByUsername", mock.Anything, username).Return(testUser, nil).Once()
				passwordSvc.On("Verify", mock.Anything, "wrong-password", hashedPassword).
					Return(false, nil).Once()
			},
			expectedErr: entities.ErrInvalidCredentials,
		},
		{
			name:     "error - database failure finding user",
			username: username,
			password: password,
			setupMocks: func(userRepo *mockUserRepository, _ *mockPasswordService, _ *mockTokenService) {
				userRepo.On("FindByUsername", mock.Anything, username).
					Return(nil, ErrDatabaseConnection).Once()
			},
			expectedErr: ErrDatabaseConnection,
		},
		{
			name:     "error - token generation fails",
			username: username,
			password: password,
			setupMocks: func(userRepo *mockUserRepository, passwordSvc *mockPasswordService, tokenSvc *mockTokenService) {
				userRepo.On("FindByUsername", mock.Anything, username).Return(testUser, nil).Once()
				passwordSvc.On("Verify", mock.Anything, password, hashedPassword).Return(true, nil).Once()
				tokenSvc.On("GenerateToken", mock.Anything, username).
					Return("", time.Time{}, ErrTokenGeneration).Once()
			},
			expectedErr: ErrTokenGeneration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(mockUserRepository)
			passwordSvc := new(mockPasswordService)
			tokenSvc := new(mockTokenService)
			tt.setupMocks(userRepo, passwordSvc, tokenSvc)

			useCase := app.NewAuthUseCase(userRepo, passwordSvc, tokenSvc)

			credential, err := useCase.Login(ctx, tt.username, tt.password)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, credential)
			} else {
				require.NoError(t, err)
				require.NotNil(t, credential)
				assert.Equal(t, accessToken, credential.Token)
				assert.Equal(t, expiresAt, credential.ExpiresAt)
				assert.Equal(t, testUser, credential.User)
			}

			userRepo.AssertExpectations(t)
			passwordSvc.AssertExpectations(t)
			tokenSvc.AssertExpectations(t)
		})
	}
}

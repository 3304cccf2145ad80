package auth

import (
	"context"
	"testing"
	"time"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/models"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/dto/requests"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthUsecase_Login(t *testing.T) {
	hash := hashPassword(t, "s3nha-forte")
	expiresAt := time.Now().Add(time.Hour)

	t.Run("valid credentials issue a token", func(t *testing.T) {
		users := new(MockUserRepository)
		tokens := new(MockTokenManager)
		users.On("FindByEmail", mock.Anything, "sec@psicare.dev").Return(&models.User{Email: "sec@psicare.dev", PasswordHash: hash, Role: models.RoleSecretary, Active: true}, nil)
		tokens.On("CreateToken", mock.Anything, models.RoleSecretary, "sec@psicare.dev").Return("signed", expiresAt, nil)

		result, err := NewAuthUsecase(users, tokens, zap.NewNop()).Login(context.Background(), &requests.Login{Email: " Sec@Psicare.dev ", Password: "s3nha-forte"})
		require.NoError(t, err)
		assert.Equal(t, "signed", result.Token)
		assert.Equal(t, int(models.RoleSecretary), result.Role)
		assert.Equal(t, "secretary", result.RoleName)
		assert.Equal(t, expiresAt, result.ExpiresAt)
		tokens.AssertExpectations(t)
	})

	tests := []struct {
		name     string
		user     *models.User
		password string
		status   int
	}{
		{name: "unknown email", user: nil, password: "s3nha-forte", status: constvars.StatusUnauthorized},
		{name: "wrong password", user: &models.User{PasswordHash: hash, Active: true}, password: "errada", status: constvars.StatusUnauthorized},
		{name: "inactive user", user: &models.User{PasswordHash: hash, Active: false}, password: "s3nha-forte", status: constvars.StatusUnauthorized},
		{name: "invalid role", user: &models.User{PasswordHash: hash, Active: true, Role: models.Role(99)}, password: "s3nha-forte", status: constvars.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			tokens := new(MockTokenManager)
			users.On("FindByEmail", mock.Anything, "user@psicare.dev").Return(tt.user, nil)

			_, err := NewAuthUsecase(users, tokens, zap.NewNop()).Login(context.Background(), &requests.Login{Email: "user@psicare.dev", Password: tt.password})
			require.Error(t, err)
			assert.Equal(t, tt.status, exceptions.StatusCodeOf(err))
			tokens.AssertNotCalled(t, "CreateToken", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

package auth

import (
	"context"
	"strings"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/contracts"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/dto/requests"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/dto/responses"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/exceptions"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	TokenManager   contracts.TokenManager
	Log            *zap.Logger
}

func NewAuthUsecase(userRepository contracts.UserRepository, tokenManager contracts.TokenManager, logger *zap.Logger) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository: userRepository,
		TokenManager:   tokenManager,
		Log:            logger,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	email := strings.ToLower(strings.TrimSpace(request.Email))
	user, err := uc.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password))
	if err != nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(err)
	}
	if !user.Active {
		return nil, exceptions.ErrUserInactive(nil)
	}
	if !user.Role.Valid() {
		return nil, exceptions.ErrInvalidRoleType(nil)
	}

	token, expiresAt, err := uc.TokenManager.CreateToken(ctx, user.Role, user.Email)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, user.Role.String()),
	)
	return &responses.Login{
		Token:     token,
		Role:      int(user.Role),
		RoleName:  user.Role.String(),
		Email:     user.Email,
		ExpiresAt: expiresAt,
	}, nil
}

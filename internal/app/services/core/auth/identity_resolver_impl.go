package auth

import (
	"context"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/contracts"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/models"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"

	"go.uber.org/zap"
)

type identityResolver struct {
	TokenManager        contracts.TokenManager
	ProfessorRepository contracts.ProfessorRepository
	StudentRepository   contracts.StudentRepository
	Log                 *zap.Logger
}

func NewIdentityResolver(
	tokenManager contracts.TokenManager,
	professorRepository contracts.ProfessorRepository,
	studentRepository contracts.StudentRepository,
	logger *zap.Logger,
) contracts.IdentityResolver {
	return &identityResolver{
		TokenManager:        tokenManager,
		ProfessorRepository: professorRepository,
		StudentRepository:   studentRepository,
		Log:                 logger,
	}
}

// Resolve verifies token and attaches the professor or student id matching the email.
// A lookup miss still authenticates the caller, only without a scoped id.
func (r *identityResolver) Resolve(ctx context.Context, token string) (*models.Identity, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("identityResolver.Resolve called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	claims, err := r.TokenManager.VerifyToken(ctx, token)
	if err != nil {
		return nil, err
	}

	identity := &models.Identity{
		Role:  claims.Role,
		Email: claims.Email,
	}

	switch claims.Role {
	case models.RoleProfessor:
		professor, err := r.ProfessorRepository.FindByEmail(ctx, claims.Email)
		if err != nil {
			return nil, err
		}
		if professor != nil {
			identity.ProfessorID = professor.ID
		} else {
			r.Log.Warn("identityResolver.Resolve professor record not found",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEmailKey, claims.Email),
			)
		}
	case models.RoleStudent:
		student, err := r.StudentRepository.FindByEmail(ctx, claims.Email)
		if err != nil {
			return nil, err
		}
		if student != nil {
			identity.StudentID = student.ID
		} else {
			r.Log.Warn("identityResolver.Resolve student record not found",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEmailKey, claims.Email),
			)
		}
	case models.RoleAdmin, models.RoleSecretary, models.RolePatient:
	}

	r.Log.Info("identityResolver.Resolve succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, identity.Role.String()),
	)
	return identity, nil
}

package locker

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/contracts"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/exceptions"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// lockService is a single instance Redis lock: SET NX with a random owner
// token, released only by the owner.
type lockService struct {
	redisRepo contracts.RedisRepository
	Log       *zap.Logger
}

func NewLockService(repo contracts.RedisRepository, logger *zap.Logger) contracts.LockerService {
	return &lockService{
		redisRepo: repo,
		Log:       logger,
	}
}

// TryLock never waits. A lock held elsewhere returns false with no error.
func (s *lockService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	log := s.Log.With(
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingRedisKey, key),
	)

	owner := uuid.NewString()
	acquired, err := s.redisRepo.TrySetNX(ctx, key, owner, expiration)
	switch {
	case err != nil:
		log.Error("lockService.TryLock error calling redisRepo.TrySetNX", zap.Error(err))
		return false, "", err
	case !acquired:
		log.Info("lockService.TryLock lock is held")
		return false, "", nil
	}

	log.Debug("lockService.TryLock acquired",
		zap.String(constvars.LoggingLockValueKey, owner),
		zap.Duration(constvars.LoggingLockExpirationTimeKey, expiration),
	)
	return true, owner, nil
}

// Unlock is a no-op when the lock already expired.
func (s *lockService) Unlock(ctx context.Context, key, lockValue string) error {
	log := s.Log.With(
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingRedisKey, key),
	)

	stored, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		log.Error("lockService.Unlock error calling redisRepo.Get", zap.Error(err))
		return err
	}
	if stored == "" {
		log.Info("lockService.Unlock lock already expired")
		return nil
	}

	// Values are stored JSON encoded.
	if expected := strconv.Quote(lockValue); stored != expected {
		err := exceptions.ErrRedisUnlock(fmt.Errorf("lock %s is owned by another holder", key))
		log.Warn("lockService.Unlock owner mismatch",
			zap.String(constvars.LoggingLockStoredValueKey, stored),
			zap.String(constvars.LoggingLockExpectedValueKey, expected),
		)
		return err
	}

	if err := s.redisRepo.Delete(ctx, key); err != nil {
		log.Error("lockService.Unlock error calling redisRepo.Delete", zap.Error(err))
		return err
	}
	log.Debug("lockService.Unlock released")
	return nil
}

package locker

import (
	"context"
	"time"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/contracts"
)

type noopLocker struct{}

// NewNoopLocker is used when Redis is disabled. Every lock is granted and
// concurrent mutations fall back to the database transaction alone.
func NewNoopLocker() contracts.LockerService {
	return noopLocker{}
}

func (noopLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	return true, "", nil
}

func (noopLocker) Unlock(ctx context.Context, key, lockValue string) error {
	return nil
}

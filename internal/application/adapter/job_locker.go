// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// JobLocker serializes batch jobs per tenant and job type across workers.
//
//go:generate mockgen -destination=mocks/mock_job_locker.go -package=mocks -source=job_locker.go JobLocker
type JobLocker interface {
	// Acquire takes the lock for key. ok is false when another holder owns it.
	Acquire(ctx context.Context, key string, ttl time.Duration) (token string, ok bool, err error)

	// Release frees the lock if token still owns it.
	Release(ctx context.Context, key, token string) error
}

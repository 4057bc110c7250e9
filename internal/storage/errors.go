package storage

import (
	"errors"
	"fmt"
)

// ErrQuotaExceeded is returned when a write would exceed the configured quota.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

func quotaError(size, limit int) error {
	return fmt.Errorf("%w: %d bytes (limit %d)", ErrQuotaExceeded, size, limit)
}

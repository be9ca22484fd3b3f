package service

import (
	"errors"
	"fmt"

	"creatorhub/pkg/apperrors"

	"gorm.io/gorm"
)

// notFoundOr maps a missing row to a 404 with msg and wraps anything else with op.
func notFoundOr(err error, msg, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(msg)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

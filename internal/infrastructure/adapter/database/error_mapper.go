package database

import (
	"context"
	"errors"
	"fmt"

	domainErr "github.com/amirhossein-jamali/library-lending/internal/domain/error"
	"github.com/amirhossein-jamali/library-lending/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// ErrorMapper maps database errors raised outside a repository (begin, commit, raw queries) to domain errors
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError maps a database error to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainErr.ErrNotFound
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s operation timed out: %v", domainErr.ErrDatabaseConnection, operation, err)
	}

	switch m.classifier.Classify(err) {
	case repository.LockError:
		return fmt.Errorf("%w: %v", domainErr.ErrSerialization, err)
	case repository.DuplicateKeyError, repository.ConstraintError:
		return fmt.Errorf("%w: %v", domainErr.ErrConstraintViolation, err)
	case repository.TransientError, repository.ConnectionError:
		return fmt.Errorf("%w: %v", domainErr.ErrDatabaseConnection, err)
	default:
		return fmt.Errorf("%w: %s failed: %v", domainErr.ErrInternalServer, operation, err)
	}
}

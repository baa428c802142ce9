package repository

import (
	"errors"

	"flightsearch-service/internal/domain/entity"

	"gorm.io/gorm"
)

// translateNotFound maps gorm's not-found error into the domain lookup error
// so callers never depend on the storage driver
func translateNotFound(err error, entityName string, key interface{}) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.LookupError{Entity: entityName, Key: key}
	}
	return err
}

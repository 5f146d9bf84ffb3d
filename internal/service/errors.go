package service

import (
	"errors"

	"gorm.io/gorm"
)

// isDuplicate reports whether err is a unique-constraint violation. Requires
// gorm.Config.TranslateError so driver errors surface as ErrDuplicatedKey.
func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// isNotFound reports whether err is a missing-row lookup.
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

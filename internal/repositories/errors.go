package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is wrapped by every lookup or mutation that matched no row.
var ErrNotFound = errors.New("record not found")

// isNotFound reports whether err is GORM's missing-record error.
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

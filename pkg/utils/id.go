package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a 32-char hex id used as primary key for every entity.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

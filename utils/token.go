package utils

import (
	"strings"

	"github.com/google/uuid"
)

// RandomToken returns an n-character lowercase hex token derived from a v4
// UUID. Used for report ids and uploaded file names.
func RandomToken(n int) string {
	s := strings.ReplaceAll(uuid.New().String(), "-", "")
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}

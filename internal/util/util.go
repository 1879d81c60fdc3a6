package util

import (
	"fmt"

	"github.com/google/uuid"
)

// RandomEmail returns a random email address suitable for test fixtures
func RandomEmail() string {
	return fmt.Sprintf("%s@example.test", uuid.New().String())
}

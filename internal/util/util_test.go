package util

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenv(t *testing.T) {
	assert.NoError(t, os.Setenv("util_test_key", "value"))
	assert.Equal(t, "value", Getenv("util_test_key", "default"))
	assert.NoError(t, os.Unsetenv("util_test_key"))
	assert.Equal(t, "default", Getenv("util_test_key", "default"))
}

func TestGetRandomName(t *testing.T) {
	parts := strings.SplitN(GetRandomName(), " ", 2)
	assert.Len(t, parts, 2)
	assert.Contains(t, adjectives, parts[0])
	assert.Contains(t, nouns, parts[1])
}

func TestRandomEmail(t *testing.T) {
	a := RandomEmail()
	b := RandomEmail()
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, "@example.test"))
}

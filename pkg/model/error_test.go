package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	err := UserError("you must wait before you create another table")
	assert.Equal(t, "you must wait before you create another table", err.Error())

	wrapped := fmt.Errorf("create table: %w", err)
	var ue UserError
	assert.True(t, errors.As(wrapped, &ue))
	assert.Equal(t, err, ue)
}

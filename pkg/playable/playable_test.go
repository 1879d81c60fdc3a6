package playable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdditionalData(t *testing.T) {
	a := AdditionalData{
		"string": "value",
		"number": float64(7),
	}

	s, ok := a.GetString("string")
	assert.True(t, ok)
	assert.Equal(t, "value", s)

	_, ok = a.GetString("number")
	assert.False(t, ok)

	n, ok := a.GetInt("number")
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	_, ok = a.GetInt("missing")
	assert.False(t, ok)
}

func TestOK(t *testing.T) {
	res := OK()
	assert.Equal(t, "status", res.Key)
	assert.Equal(t, "OK", res.Value)
	assert.Equal(t, "", res.Context)

	res = OK("ctx")
	assert.Equal(t, "ctx", res.Context)
}

func TestSimpleLogMessage(t *testing.T) {
	msg := SimpleLogMessage(5, "{} did %s", "something")
	assert.Equal(t, []int64{5}, msg.PlayerIDs)
	assert.Equal(t, "{} did something", msg.Message)
	assert.NotEmpty(t, msg.UUID)

	msg = SimpleLogMessage(0, "general message")
	assert.Nil(t, msg.PlayerIDs)

	msgs := SimpleLogMessageSlice(1, "hello")
	assert.Len(t, msgs, 1)
}

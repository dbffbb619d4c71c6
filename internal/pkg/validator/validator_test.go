package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	v := New()
	assert.True(t, v.Valid())

	v.Check(true, "ok", "must not be recorded")
	assert.True(t, v.Valid())

	v.Check(false, "name", "name must be provided")
	assert.False(t, v.Valid())
	assert.Equal(t, "name must be provided", v.Errors["name"])

	// The first message for a key wins.
	v.Check(false, "name", "another message")
	assert.Equal(t, "name must be provided", v.Errors["name"])
}

func TestHexRX(t *testing.T) {
	for _, valid := range []string{"#ffffff", "ffffff", "#FFF", "4285f4", "#4285F4"} {
		assert.True(t, Matches(valid, HexRX), valid)
	}

	for _, invalid := range []string{"", "#ffff", "red", "#gggggg", "12345"} {
		assert.False(t, Matches(invalid, HexRX), invalid)
	}
}

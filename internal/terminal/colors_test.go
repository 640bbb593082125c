package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnableDisableColors(t *testing.T) {
	EnableColors()
	assert.Equal(t, Cyan, Color(Cyan))
	assert.True(t, ColorsEnabled())

	DisableColors()
	assert.Empty(t, Color(Cyan))
	assert.False(t, ColorsEnabled())

	EnableColors()
	assert.Equal(t, Cyan, Color(Cyan))
}

func TestColor_AllColors(t *testing.T) {
	EnableColors()

	colors := []struct {
		name     string
		code     string
		expected string
	}{
		{"Reset", Reset, "\033[0m"},
		{"Bold", Bold, "\033[1m"},
		{"Dim", Dim, "\033[2m"},
		{"Cyan", Cyan, "\033[36m"},
		{"Green", Green, "\033[32m"},
		{"Yellow", Yellow, "\033[33m"},
		{"Red", Red, "\033[31m"},
		{"Magenta", Magenta, "\033[35m"},
	}

	for _, tc := range colors {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.code)
			assert.Equal(t, tc.code, Color(tc.code))
		})
	}
}

func TestColor_DisabledReturnsEmpty(t *testing.T) {
	DisableColors()
	defer EnableColors()

	for _, c := range []string{Reset, Bold, Dim, Cyan, Green, Yellow, Red, Magenta} {
		assert.Empty(t, Color(c))
	}
}

func TestIsTTY(t *testing.T) {
	// can't assert a TTY in tests; just make sure detection doesn't panic
	_ = IsTTY(0)
	_ = IsStdoutTTY()
	_ = IsStderrTTY()
	_ = IsStdinTTY()
}

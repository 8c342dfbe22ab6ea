package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNopDiscardsWithoutPanicking(t *testing.T) {
	l := Nop()
	assert.NotPanics(t, func() {
		l.Debug("ignored")
		l.Warn("ignored")
	})
}

func TestNewConsoleLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "bogus"} {
		l := NewConsole(level)
		assert.NotNil(t, l)
	}
}

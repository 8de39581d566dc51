package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrent_DefaultsToMocha(t *testing.T) {
	th := Current()
	require.NotNil(t, th)
	assert.Equal(t, "catppuccin-mocha", th.Name)
	assert.True(t, th.IsDark)
}

func TestSetCurrent(t *testing.T) {
	t.Cleanup(func() { SetCurrent(nil) })

	custom := NewCatppuccinMocha()
	custom.Name = "custom"
	SetCurrent(custom)
	assert.Same(t, custom, Current())

	SetCurrent(nil)
	assert.Equal(t, "catppuccin-mocha", Current().Name)
}

func TestStyles_BuiltOnce(t *testing.T) {
	th := NewCatppuccinMocha()
	s1 := th.S()
	s2 := th.S()
	assert.Same(t, s1, s2)
	assert.Contains(t, s1.Title.Render("Step"), "Step")
}

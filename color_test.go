package erase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowContrastLightGrayOnGray(t *testing.T) {
	assert.True(t, LowContrast(LightGray, DarkGray.Background(), false),
		"expected light gray on gray background to be low contrast")
}

func TestLowContrastDefaults(t *testing.T) {
	assert.False(t, LowContrast(LightGray, Blue.Background(), false))
	assert.False(t, LowContrast(Default, DefaultBackground, false))
	assert.True(t, LowContrast(White, DefaultBackground, true))
}

func TestColorByName(t *testing.T) {
	for name, want := range map[string]AttributeColor{
		"blue":          Blue,
		"Light Magenta": LightMagenta,
		"light_red":     LightRed,
		"dark-gray":     DarkGray,
		" pink ":        Pink,
		"white":         LightGray,
	} {
		c, err := ColorByName(name, false)
		require.NoError(t, err, name)
		assert.Equal(t, want, c, name)
	}
	c, err := ColorByName("white", true)
	require.NoError(t, err)
	assert.Equal(t, White, c)
}

func TestColorByNameUnknown(t *testing.T) {
	_, err := ColorByName("octarine", false)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "octarine")
}

func TestBackgroundForeground(t *testing.T) {
	assert.Equal(t, AttributeColor(44), Blue.Background())
	assert.Equal(t, AttributeColor(105), LightMagenta.Background())
	assert.Equal(t, DefaultBackground, Default.Background())
	assert.Equal(t, Blue, Blue.Background().Foreground())
	assert.Equal(t, Blue.Background(), Blue.Background().Background())
	assert.Equal(t, Bright, Bright.Background())
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "\033[34m", Blue.String())
	assert.Equal(t, "\033[30;47m", Black.Combine(LightGray.Background()).String())
	assert.Equal(t, Red, None.Combine(Red))
	assert.Equal(t, "\033[31mhi"+NoColor, Red.Wrap("hi"))
}

func TestColorName(t *testing.T) {
	assert.Equal(t, "blue", Blue.Name())
	assert.Equal(t, "blue", Blue.Background().Name())
	assert.Equal(t, "gray", DarkGray.Name())
	assert.Equal(t, "7", Reverse.Name())
}

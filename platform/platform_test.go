package platform

import (
	"fmt"
	"testing"

	"github.com/mtth/typedpath/internal/effect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrent(t *testing.T) {
	for name, want := range map[string]Platform{
		"windows": Windows,
		"darwin":  NonWindows,
		"linux":   NonWindows,
	} {
		t.Run(name, func(t *testing.T) {
			defer effect.Swap(&goos, name)()
			assert.Equal(t, want, Current())
		})
	}
}

func TestCurrentDefaultSeparator(t *testing.T) {
	t.Run("windows", func(t *testing.T) {
		defer effect.Swap(&goos, "windows")()
		assert.Equal(t, WindowsSeparator, CurrentDefaultSeparator())
	})

	t.Run("linux", func(t *testing.T) {
		defer effect.Swap(&goos, "linux")()
		assert.Equal(t, NonWindowsSeparator, CurrentDefaultSeparator())
	})
}

func TestDetect(t *testing.T) {
	for path, want := range map[string]Platform{
		`C:\Users\User1`:    Windows,
		"/Users/User1":      NonWindows,
		`C:\Users/User1`:    Windows,
		"relative/temp.txt": NonWindows,
		`..\temp.txt`:       Windows,
	} {
		t.Run(path, func(t *testing.T) {
			got, err := Detect(path)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	for _, path := range []string{"temp.txt", ""} {
		t.Run(fmt.Sprintf("undetectable %q", path), func(t *testing.T) {
			_, err := Detect(path)
			require.ErrorIs(t, err, ErrPlatformDetection)
		})
	}
}

func TestPlatformAlternate(t *testing.T) {
	assert.Equal(t, NonWindows, Windows.Alternate())
	assert.Equal(t, Windows, NonWindows.Alternate())
}

func TestPlatformText(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, p := range PlatformValues() {
			data, err := p.MarshalText()
			require.NoError(t, err)
			var got Platform
			require.NoError(t, got.UnmarshalText(data))
			assert.Equal(t, p, got)
		}
	})

	t.Run("names", func(t *testing.T) {
		assert.Equal(t, []string{"windows", "non-windows"}, PlatformStrings())
		assert.Equal(t, "Platform(7)", Platform(7).String())
	})

	t.Run("invalid", func(t *testing.T) {
		var got Platform
		assert.Error(t, got.UnmarshalText([]byte("plan9")))
	})
}

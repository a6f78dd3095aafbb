package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTheme_Toggle(t *testing.T) {
	tests := []struct {
		current  Theme
		expected Theme
	}{
		{ThemeLight, ThemeDark},
		{ThemeDark, ThemeLight},
	}

	for _, tc := range tests {
		t.Run(tc.current.String()+"->"+tc.expected.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.current.Toggle())
			assert.Equal(t, tc.current, tc.current.Toggle().Toggle())
		})
	}
}

func TestTheme_IsDark(t *testing.T) {
	assert.True(t, ThemeDark.IsDark())
	assert.False(t, ThemeLight.IsDark())
	assert.False(t, Theme{}.IsDark())
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{in: "dark", want: ThemeDark},
		{in: "light", want: ThemeLight},
		{in: "DARK", want: ThemeDark},
		{in: "", wantErr: true},
		{in: "system", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseTheme(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTheme_Text(t *testing.T) {
	b, err := ThemeDark.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "dark", string(b))

	var th Theme
	require.NoError(t, th.UnmarshalText([]byte("light")))
	assert.Equal(t, ThemeLight, th)
	require.Error(t, th.UnmarshalText([]byte("blue")))
}

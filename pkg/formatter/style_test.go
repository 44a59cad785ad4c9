package formatter

import (
	"testing"

	"github.com/arthur-debert/streamprinter/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleFromList(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
		want   StyleSpec
	}{
		{"empty", nil, StyleSpec{}},
		{"foreground only", []string{"red"}, StyleSpec{Foreground: "red"}},
		{"foreground and background", []string{"white", "blue"}, StyleSpec{Foreground: "white", Background: "blue"}},
		{"all three", []string{"black", "cyan", "bold, underscore"}, StyleSpec{Foreground: "black", Background: "cyan", Options: []string{"bold", "underscore"}}},
		{"empty positions", []string{"", "", "reverse"}, StyleSpec{Options: []string{"reverse"}}},
		{"extra positions ignored", []string{"red", "blue", "bold", "ignored"}, StyleSpec{Foreground: "red", Background: "blue", Options: []string{"bold"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StyleFromList(tt.fields))
		})
	}
}

func TestParseStyleDefinition(t *testing.T) {
	t.Run("full definition", func(t *testing.T) {
		name, spec, err := ParseStyleDefinition("Warning=yellow:default:bold,blink")
		require.NoError(t, err)
		assert.Equal(t, "warning", name)
		assert.Equal(t, StyleSpec{Foreground: "yellow", Background: "default", Options: []string{"bold", "blink"}}, spec)
	})

	t.Run("name only", func(t *testing.T) {
		name, spec, err := ParseStyleDefinition("plain=")
		require.NoError(t, err)
		assert.Equal(t, "plain", name)
		assert.Equal(t, StyleSpec{}, spec)
	})

	for _, bad := range []string{"", "yellow", "=yellow"} {
		t.Run("invalid "+bad, func(t *testing.T) {
			_, _, err := ParseStyleDefinition(bad)
			assert.True(t, errors.IsErrorCode(err, errors.ErrStyleInvalid))
		})
	}
}

func TestStyleSpecString(t *testing.T) {
	assert.Equal(t, "red", StyleSpec{Foreground: "red"}.String())
	assert.Equal(t, "red:blue:bold,reverse", StyleSpec{Foreground: "red", Background: "blue", Options: []string{"bold", "reverse"}}.String())
	assert.Equal(t, "::bold", StyleSpec{Options: []string{"bold"}}.String())
	assert.Equal(t, "", StyleSpec{}.String())
}

func TestStyleTableCloneIsDeep(t *testing.T) {
	table := StyleTable{"warn": {Foreground: "yellow", Options: []string{"bold"}}}
	clone := table.Clone()

	clone["warn"].Options[0] = "blink"
	clone["new"] = StyleSpec{}

	assert.Equal(t, "bold", table["warn"].Options[0])
	assert.NotContains(t, table, "new")
	assert.NotNil(t, StyleTable(nil).Clone())
}

func TestStyleTableMergeAndNames(t *testing.T) {
	base := StyleTable{"b": {Foreground: "red"}, "a": {Foreground: "green"}}
	merged := base.Merge(StyleTable{"b": {Foreground: "blue"}, "c": {}})

	assert.Equal(t, []string{"a", "b", "c"}, merged.Names())
	assert.Equal(t, "blue", merged["b"].Foreground)
	assert.Equal(t, "red", base["b"].Foreground)
}

func TestResolveColor(t *testing.T) {
	_, ok := resolveColor("")
	assert.False(t, ok)
	_, ok = resolveColor("default")
	assert.False(t, ok)

	color, ok := resolveColor("Red")
	require.True(t, ok)
	assert.Equal(t, lipgloss.Color("1"), color)

	color, ok = resolveColor("bright-white")
	require.True(t, ok)
	assert.Equal(t, lipgloss.Color("15"), color)

	color, ok = resolveColor("#FF8800")
	require.True(t, ok)
	assert.Equal(t, lipgloss.Color("#FF8800"), color)
}

package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBool(t *testing.T) {
	tests := []struct {
		value string
		def   bool
		want  bool
	}{
		{"", true, true},
		{"true", false, true},
		{"1", false, true},
		{"false", true, false},
		{"no", true, false},
		{"maybe", true, true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("FAL_RELAY_TEST_BOOL", tt.value)
			assert.Equal(t, tt.want, Bool("FAL_RELAY_TEST_BOOL", tt.def))
		})
	}
}

func TestInt(t *testing.T) {
	t.Setenv("FAL_RELAY_TEST_INT", "42")
	assert.Equal(t, 42, Int("FAL_RELAY_TEST_INT", 7))

	t.Setenv("FAL_RELAY_TEST_INT", "forty-two")
	assert.Equal(t, 7, Int("FAL_RELAY_TEST_INT", 7))
}

func TestStringSlice(t *testing.T) {
	t.Setenv("FAL_RELAY_TEST_SLICE", " https://a.example , ,https://b.example")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, StringSlice("FAL_RELAY_TEST_SLICE", nil))

	t.Setenv("FAL_RELAY_TEST_SLICE", " , ")
	assert.Equal(t, []string{"*"}, StringSlice("FAL_RELAY_TEST_SLICE", []string{"*"}))
}

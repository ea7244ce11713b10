package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTypewriterCycle(t *testing.T) {
	t0 := time.Unix(0, 0)
	tw := NewTypewriter([]string{"ab", "c"}, t0)

	steps := []struct {
		at   time.Duration
		want string
	}{
		{0, "a"},
		{50 * time.Millisecond, "ab"},
		{2000 * time.Millisecond, "ab"},
		{2050 * time.Millisecond, "ab"},
		{2080 * time.Millisecond, "a"},
		{2110 * time.Millisecond, ""},
		{2140 * time.Millisecond, ""},
		{2190 * time.Millisecond, "c"},
	}
	for _, s := range steps {
		assert.Equal(t, s.want, tw.Advance(t0.Add(s.at)), "at %v", s.at)
	}
}

func TestTypewriterCatchesUp(t *testing.T) {
	t0 := time.Unix(0, 0)
	tw := NewTypewriter([]string{"ab", "c"}, t0)

	assert.Equal(t, "", tw.Advance(t0.Add(2110*time.Millisecond)))
	assert.Equal(t, "c", tw.Advance(t0.Add(2190*time.Millisecond)))
}

func TestTypewriterEmpty(t *testing.T) {
	tw := NewTypewriter(nil, time.Now())
	assert.Equal(t, "", tw.Advance(time.Now().Add(time.Hour)))
	assert.Equal(t, "", tw.Text())
}

package particle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVariant(t *testing.T) {
	for _, s := range []string{"neural", "grid", "flow", "nodes"} {
		v, err := ParseVariant(s)
		assert.NoError(t, err)
		assert.Equal(t, Variant(s), v)
	}

	v, err := ParseVariant("")
	assert.NoError(t, err)
	assert.Equal(t, Neural, v)

	_, err = ParseVariant("plasma")
	assert.Error(t, err)
}

func TestVariantColor(t *testing.T) {
	assert.Equal(t, RGB{56, 189, 248}, Neural.Color())
	assert.Equal(t, Neural.Color(), Nodes.Color())
	assert.Equal(t, RGB{168, 85, 247}, Grid.Color())
	assert.Equal(t, RGB{34, 211, 238}, Flow.Color())
	assert.Equal(t, "rgba(168, 85, 247, 0.150)", Grid.Color().RGBA(0.15))
}

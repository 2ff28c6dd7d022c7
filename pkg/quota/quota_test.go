package quota

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnlimited(t *testing.T) {
	var gate Gate = Unlimited{}
	assert.True(t, gate.CanProceed(0))
	assert.True(t, gate.CanProceed(1_000_000))
	gate.RecordCompletion(5)
	assert.True(t, gate.CanProceed(1_000_000))
}

func TestLimitGate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.json")
	gate := NewLimitGate(10, path)

	assert.True(t, gate.CanProceed(10))
	assert.False(t, gate.CanProceed(11))

	gate.RecordCompletion(7)
	assert.Equal(t, 7, gate.Used())
	assert.True(t, gate.CanProceed(3))
	assert.False(t, gate.CanProceed(4))
}

func TestLimitGatePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "usage.json")

	gate := NewLimitGate(10, path)
	gate.RecordCompletion(4)

	reloaded := NewLimitGate(10, path)
	require.Equal(t, 4, reloaded.Used())
	assert.True(t, reloaded.CanProceed(6))
	assert.False(t, reloaded.CanProceed(7))
}

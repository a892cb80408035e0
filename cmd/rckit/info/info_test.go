package info

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCommand(t *testing.T) {
	t.Parallel()

	cmd := GetCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "info", cmd.Name)
	assert.NotNil(t, cmd.Action)
	assert.NotEmpty(t, cmd.Flags)
}

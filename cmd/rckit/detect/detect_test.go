package detect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ltkhiem/rckit/gazepoint"
)

func TestGetCommand(t *testing.T) {
	t.Parallel()

	cmd := GetCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "detect", cmd.Name)
	assert.NotEmpty(t, cmd.Usage)
	assert.NotNil(t, cmd.Action)

	names := make(map[string]bool)
	for _, flag := range cmd.Flags {
		for _, name := range flag.Names() {
			names[name] = true
		}
	}
	for _, want := range []string{methodFlag, repairFlag, orderFlag, "config", "out"} {
		assert.True(t, names[want], "missing flag %q", want)
	}
}

func TestRepairGaps(t *testing.T) {
	t.Parallel()

	data := "TIME\tFPOGX\tFPOGY\tFPOGV\n" +
		"0.0\t0.2\t0.4\t1\n" +
		"0.1\t0\t0\t0\n" +
		"0.2\t0.4\t0.8\t1\n"
	rec, err := gazepoint.Read(strings.NewReader(data), '\t')
	require.NoError(t, err)

	require.NoError(t, repairGaps(rec, 1))

	x, err := rec.Float(gazepoint.ColFPOGX)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, x[1], 1e-12)

	y, err := rec.Float(gazepoint.ColFPOGY)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, y[1], 1e-12)
}

func TestRepairGaps_MissingColumn(t *testing.T) {
	t.Parallel()

	rec, err := gazepoint.Read(strings.NewReader("TIME\n0.0\n"), '\t')
	require.NoError(t, err)

	assert.Error(t, repairGaps(rec, 1))
}

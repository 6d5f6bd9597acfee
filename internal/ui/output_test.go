package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/shipyard/pkg/types"
)

func TestPrinterLines(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, true)

	p.Info("starting %s", "voyage")
	p.Success("done")
	p.Warn("careful")
	p.Fail("broken: %d", 3)
	p.Dim("secondary")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"  → starting voyage",
		"  ✔ done",
		"  ○ careful",
		"  ✘ broken: 3",
		"  secondary",
	}, lines)
	assert.NotContains(t, buf.String(), "\x1b[")
	assert.Same(t, &buf, p.Writer())
}

func TestPrinterLoaded(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, true)

	c, err := types.NewCooled(types.NewSequencer(), 80, 15, -5)
	require.NoError(t, err)
	require.NoError(t, c.Load(60))

	p.Loaded(c, 60)
	assert.Equal(t, "  ✔ loaded 60 kg into cooled container KON-C-1 (60/80 kg)\n", buf.String())
}

func TestPrinterHazardWriter(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, true)

	l, err := types.NewLiquid(types.NewSequencer(), 100, 10, true, types.WithHazardOutput(p.Hazard()))
	require.NoError(t, err)
	l.NotifyHazard(l.ID())

	assert.Equal(t, "  ⚠ hazard: dangerous cargo in liquid container KON-L-1\n", buf.String())
}

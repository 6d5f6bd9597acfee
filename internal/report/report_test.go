package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/shipyard/pkg/types"
)

func sampleInfo() types.ShipInfo {
	return types.ShipInfo{
		ShipID:        "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b",
		Name:          "Ocean Carrier",
		MaxSpeed:      20,
		Count:         2,
		MaxContainers: 5,
		TotalWeight:   110,
		MaxWeight:     50000,
		Containers: []types.ContainerInfo{
			{ID: "KON-G-1", Kind: types.KindGas, CurrentLoad: 30, MaxCapacity: 50, Limit: 50, EmptyWeight: 5, Hazardous: true},
			{ID: "KON-C-1", Kind: types.KindCooled, CurrentLoad: 60, MaxCapacity: 80, Limit: 80, EmptyWeight: 15},
		},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleInfo()))

	want := "Ship: Ocean Carrier, speed: 20 knots, containers: 2/5, weight: 110/50,000 kg\n" +
		"  - KON-G-1 (gas), loaded: 30/50 kg [hazard]\n" +
		"  - KON-C-1 (cooled), loaded: 60/80 kg\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteTextOverweight(t *testing.T) {
	info := sampleInfo()
	info.Overweight = true
	info.Containers = nil

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, info))
	assert.Contains(t, buf.String(), "over its weight limit")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleInfo(), FormatJSON))

	var got types.ShipInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleInfo(), got)
	assert.Contains(t, buf.String(), `"total_weight": 110`)
}

func TestWriteFormats(t *testing.T) {
	var text, deflt bytes.Buffer
	require.NoError(t, Write(&text, sampleInfo(), FormatText))
	require.NoError(t, Write(&deflt, sampleInfo(), ""))
	assert.Equal(t, text.String(), deflt.String())

	assert.Error(t, Write(&bytes.Buffer{}, sampleInfo(), Format("xml")))
}

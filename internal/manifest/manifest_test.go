package manifest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/shipyard/pkg/types"
)

const sampleYAML = `ship:
  name: Baltic Trader
  max_speed: 14.5
  max_containers: 3
  max_weight: 1000
cargo:
  - kind: liquid
    max_capacity: 200
    empty_weight: 20
    load: 150
  - kind: G
    max_capacity: 40
    empty_weight: 4
    pressure: 8
    load: 40
remove:
  - KON-G-1
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte(content), 0o644))
	return dir
}

func TestDecodeFromFile(t *testing.T) {
	v, err := NewViper(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	m, err := Decode(v)
	require.NoError(t, err)

	assert.Equal(t, types.ShipConfig{Name: "Baltic Trader", MaxSpeed: 14.5, MaxContainers: 3, MaxWeight: 1000}, m.Ship)
	require.Len(t, m.Cargo, 2)
	assert.Equal(t, Cargo{Kind: "liquid", MaxCapacity: 200, EmptyWeight: 20, Load: 150}, m.Cargo[0])
	assert.Equal(t, Cargo{Kind: "G", MaxCapacity: 40, EmptyWeight: 4, Pressure: 8, Load: 40}, m.Cargo[1])
	assert.Equal(t, []string{"KON-G-1"}, m.Remove)
}

func TestDecodeMissingFileUsesDefaults(t *testing.T) {
	v, err := NewViper(t.TempDir())
	require.NoError(t, err)

	m, err := Decode(v)
	require.NoError(t, err)
	assert.Equal(t, Default().Ship, m.Ship)
	assert.Empty(t, m.Cargo)
	assert.Empty(t, m.Remove)
}

func TestDecodeEnvOverride(t *testing.T) {
	t.Setenv("SHIPYARD_SHIP_NAME", "Night Ferry")
	t.Setenv("SHIPYARD_SHIP_MAX_WEIGHT", "750")

	v, err := NewViper(writeConfig(t, sampleYAML))
	require.NoError(t, err)

	m, err := Decode(v)
	require.NoError(t, err)
	assert.Equal(t, "Night Ferry", m.Ship.Name)
	assert.Equal(t, 750.0, m.Ship.MaxWeight)
	assert.Equal(t, 3, m.Ship.MaxContainers)
}

func TestDecodeRejectsBadManifest(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name:    "invalid ship",
			yaml:    "ship:\n  max_containers: 0\n",
			wantErr: types.ErrMaxContainersInvalid,
		},
		{
			name:    "unknown kind",
			yaml:    "cargo:\n  - kind: solid\n    max_capacity: 1\n",
			wantErr: types.ErrUnknownKind,
		},
		{
			name:    "missing kind",
			yaml:    "cargo:\n  - max_capacity: 1\n",
			wantErr: ErrNoCargoKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewViper(writeConfig(t, tt.yaml))
			require.NoError(t, err)
			_, err = Decode(v)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewViperMalformedFile(t *testing.T) {
	_, err := NewViper(writeConfig(t, "ship: [unclosed\n"))
	assert.Error(t, err)
}

func TestCargoBuild(t *testing.T) {
	seq := types.NewSequencer()

	l, err := Cargo{Kind: "liquid", MaxCapacity: 100, EmptyWeight: 10, Dangerous: true}.Build(seq)
	require.NoError(t, err)
	require.IsType(t, &types.Liquid{}, l)
	assert.True(t, l.(*types.Liquid).IsDangerous())

	g, err := Cargo{Kind: "gas", MaxCapacity: 50, EmptyWeight: 5, Pressure: 10}.Build(seq)
	require.NoError(t, err)
	require.IsType(t, &types.Gas{}, g)
	assert.Equal(t, 10.0, g.(*types.Gas).Pressure())

	c, err := Cargo{Kind: "C", MaxCapacity: 80, EmptyWeight: 15, Temperature: -5}.Build(seq)
	require.NoError(t, err)
	require.IsType(t, &types.Cooled{}, c)
	assert.Equal(t, -5.0, c.(*types.Cooled).Temperature())

	_, err = Cargo{Kind: "liquid", MaxCapacity: 0}.Build(seq)
	assert.ErrorIs(t, err, types.ErrInvalidCapacity)
}

func TestApplyReferenceVoyage(t *testing.T) {
	var hazards bytes.Buffer
	var loaded []string
	removed := map[string]int{}

	res, err := Apply(Default(), types.NewSequencer(), Options{
		HazardOutput: &hazards,
		OnLoaded:     func(c types.Container, _ float64) { loaded = append(loaded, c.ID()) },
		OnRemoved:    func(id string, n int) { removed[id] = n },
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"KON-L-1", "KON-G-1", "KON-C-1"}, loaded)
	assert.Equal(t, []string{"KON-L-1", "KON-G-1"}, res.Hazards)
	assert.Contains(t, hazards.String(), "KON-L-1")
	assert.Contains(t, hazards.String(), "KON-G-1")
	assert.Equal(t, map[string]int{"KON-L-1": 1}, removed)

	require.Len(t, res.Built, 3)
	assert.Equal(t, 2, res.Ship.Len())
	assert.Equal(t, 110.0, res.Ship.TotalWeight())
	assert.Equal(t, 40.0, res.Built[0].CurrentLoad(), "removed container keeps its load")
}

func TestApplyStopsAtFirstRejection(t *testing.T) {
	m := Default()
	m.Cargo[0].Load = 60 // over the 50% dangerous limit
	m.Remove = nil

	var rejected []error
	res, err := Apply(m, types.NewSequencer(), Options{
		HazardOutput: &bytes.Buffer{},
		OnRejected:   func(err error) { rejected = append(rejected, err) },
	})

	assert.ErrorIs(t, err, types.ErrOverfill)
	assert.Contains(t, err.Error(), "load KON-L-1")
	assert.Len(t, rejected, 1)
	require.NotNil(t, res.Ship)
	assert.Equal(t, 1, res.Ship.Len(), "liquid was added before its load failed")
	assert.Len(t, res.Built, 1)
	assert.Empty(t, res.Hazards)
}

func TestApplyKeepGoing(t *testing.T) {
	m := Manifest{
		Ship: types.ShipConfig{Name: "Small Barge", MaxSpeed: 8, MaxContainers: 2, MaxWeight: 100},
		Cargo: []Cargo{
			{Kind: "cooled", MaxCapacity: 80, EmptyWeight: 15, Load: 90},
			{Kind: "cooled", MaxCapacity: -1, EmptyWeight: 15},
			{Kind: "gas", MaxCapacity: 50, EmptyWeight: 5, Load: 30},
			{Kind: "gas", MaxCapacity: 50, EmptyWeight: 5},
		},
		Remove: []string{"KON-X-1"},
	}

	var rejected int
	res, err := Apply(m, types.NewSequencer(), Options{
		KeepGoing:    true,
		HazardOutput: &bytes.Buffer{},
		OnRejected:   func(error) { rejected++ },
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrOverfill)
	assert.ErrorIs(t, err, types.ErrInvalidCapacity)
	assert.ErrorIs(t, err, types.ErrCapacityExceeded)
	assert.Equal(t, 3, rejected)

	assert.Equal(t, 2, res.Ship.Len())
	assert.Equal(t, 50.0, res.Ship.TotalWeight())
	assert.Len(t, res.Built, 3)
	assert.Equal(t, []string{"KON-G-1"}, res.Hazards)
}

func TestApplyInvalidShip(t *testing.T) {
	_, err := Apply(Manifest{}, types.NewSequencer(), Options{})
	assert.ErrorIs(t, err, types.ErrShipNameEmpty)
}

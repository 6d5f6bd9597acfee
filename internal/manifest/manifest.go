// Package manifest reads a voyage manifest (a ship and the cargo to put on
// it) from configuration and applies it to a new Ship.
package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/shipyard/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// ConfigFile is the manifest file name inside the config directory.
	ConfigFile = "config.yaml"

	// EnvPrefix prefixes environment overrides, e.g. SHIPYARD_SHIP_NAME.
	EnvPrefix = "SHIPYARD"
)

// Config keys.
const (
	KeyShipName          = "ship.name"
	KeyShipMaxSpeed      = "ship.max_speed"
	KeyShipMaxContainers = "ship.max_containers"
	KeyShipMaxWeight     = "ship.max_weight"
	KeyCargo             = "cargo"
	KeyRemove            = "remove"
)

// ErrNoCargoKind is returned when a cargo entry has no kind.
var ErrNoCargoKind = errors.New("cargo kind must not be empty")

// Cargo describes one container to build, add and load.
type Cargo struct {
	Kind        string  `yaml:"kind" mapstructure:"kind"`
	MaxCapacity float64 `yaml:"max_capacity" mapstructure:"max_capacity"`
	EmptyWeight float64 `yaml:"empty_weight" mapstructure:"empty_weight"`
	Dangerous   bool    `yaml:"dangerous,omitempty" mapstructure:"dangerous"`
	Pressure    float64 `yaml:"pressure,omitempty" mapstructure:"pressure"`
	Temperature float64 `yaml:"temperature,omitempty" mapstructure:"temperature"`
	Load        float64 `yaml:"load,omitempty" mapstructure:"load"`
}

// Manifest is the decoded voyage plan.
type Manifest struct {
	Ship   types.ShipConfig `yaml:"ship" mapstructure:"ship"`
	Cargo  []Cargo          `yaml:"cargo" mapstructure:"cargo"`
	Remove []string         `yaml:"remove,omitempty" mapstructure:"remove"`
}

// Default returns the reference voyage: the Ocean Carrier with one
// dangerous liquid, one gas and one cooled container, after which the
// liquid container is taken off again.
func Default() Manifest {
	return Manifest{
		Ship: types.ShipConfig{
			Name:          "Ocean Carrier",
			MaxSpeed:      20,
			MaxContainers: 5,
			MaxWeight:     50000,
		},
		Cargo: []Cargo{
			{Kind: string(types.KindLiquid), MaxCapacity: 100, EmptyWeight: 10, Dangerous: true, Load: 40},
			{Kind: string(types.KindGas), MaxCapacity: 50, EmptyWeight: 5, Pressure: 10, Load: 30},
			{Kind: string(types.KindCooled), MaxCapacity: 80, EmptyWeight: 15, Temperature: -5, Load: 60},
		},
		Remove: []string{"KON-L-1"},
	}
}

// NewViper returns a Viper instance that reads config.yaml from configDir
// and SHIPYARD_* environment overrides. Ship keys default to the reference
// ship. A missing config.yaml is not an error.
func NewViper(configDir string) (*viper.Viper, error) {
	def := Default().Ship

	v := viper.New()
	v.SetDefault(KeyShipName, def.Name)
	v.SetDefault(KeyShipMaxSpeed, def.MaxSpeed)
	v.SetDefault(KeyShipMaxContainers, def.MaxContainers)
	v.SetDefault(KeyShipMaxWeight, def.MaxWeight)
	v.SetDefault(KeyRemove, []string{})

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	if configDir != "" {
		v.AddConfigPath(configDir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// Decode unmarshals and validates the manifest held by v.
func Decode(v *viper.Viper) (Manifest, error) {
	var m Manifest
	if err := v.Unmarshal(&m); err != nil {
		return Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// Validate checks the ship config and that every cargo kind is known.
// Capacity and weight values are checked when containers are built.
func (m Manifest) Validate() error {
	if err := m.Ship.Validate(); err != nil {
		return fmt.Errorf("ship: %w", err)
	}
	for i, c := range m.Cargo {
		if strings.TrimSpace(c.Kind) == "" {
			return fmt.Errorf("cargo %d: %w", i+1, ErrNoCargoKind)
		}
		if _, err := types.ParseKind(c.Kind); err != nil {
			return fmt.Errorf("cargo %d: %w", i+1, err)
		}
	}
	return nil
}

// Package report renders ship snapshots for the terminal or as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/mesh-intelligence/shipyard/pkg/types"
)

// Format selects the report rendering.
type Format string

// Report formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Write renders info to w in the given format.
func Write(w io.Writer, info types.ShipInfo, format Format) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, info)
	case FormatText, "":
		return WriteText(w, info)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// WriteText prints the ship summary line followed by one line per container.
func WriteText(w io.Writer, info types.ShipInfo) error {
	if _, err := fmt.Fprintf(w, "Ship: %s, speed: %s knots, containers: %d/%d, weight: %s/%s kg\n",
		info.Name, humanize.Commaf(info.MaxSpeed), info.Count, info.MaxContainers,
		humanize.Commaf(info.TotalWeight), humanize.Commaf(info.MaxWeight)); err != nil {
		return err
	}
	if info.Overweight {
		if _, err := fmt.Fprintln(w, "  ! ship is over its weight limit"); err != nil {
			return err
		}
	}
	for _, c := range info.Containers {
		marker := ""
		if c.Hazardous {
			marker = " [hazard]"
		}
		if _, err := fmt.Fprintf(w, "  - %s (%s), loaded: %s/%s kg%s\n",
			c.ID, c.Kind, humanize.Commaf(c.CurrentLoad), humanize.Commaf(c.MaxCapacity), marker); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON encodes info as indented JSON.
func WriteJSON(w io.Writer, info types.ShipInfo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(info)
}

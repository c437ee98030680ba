package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/handiism/game-manager/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"gopkg.in/yaml.v3"
)

// Format is an output format for read commands.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat converts s to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("invalid output format %q (want table, json or yaml)", s)
	}
}

// gameRecord is the machine-readable shape of a game.
type gameRecord struct {
	Name  string  `json:"name" yaml:"name"`
	Genre string  `json:"genre" yaml:"genre"`
	Price float64 `json:"price" yaml:"price"`
}

func toRecords(games []model.Game) []gameRecord {
	records := make([]gameRecord, len(games))
	for i, g := range games {
		records[i] = gameRecord{Name: g.Name, Genre: g.Genre, Price: g.Price}
	}
	return records
}

// writeData encodes data as JSON or YAML.
func writeData(w io.Writer, f Format, data any) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %q cannot encode data", f)
	}
}

// writeGameTable renders games as a numbered table in stored order.
func writeGameTable(w io.Writer, games []model.Game) error {
	cfg := tablewriter.Config{}
	align := tw.CellAlignment{PerColumn: []tw.Align{tw.AlignRight, tw.AlignLeft, tw.AlignLeft, tw.AlignRight}}
	cfg.Header.Alignment = align
	cfg.Row.Alignment = align

	table := tablewriter.NewTable(w, tablewriter.WithConfig(cfg))
	table.Header("#", "Name", "Genre", "Price")

	for i, g := range games {
		if err := table.Append(strconv.Itoa(i+1), g.Name, g.Genre, g.PriceText()); err != nil {
			return err
		}
	}
	return table.Render()
}

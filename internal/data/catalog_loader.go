package data

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/gearset/internal/stat"
)

// ErrDuplicate is returned when a catalog defines the same item or materia twice.
var ErrDuplicate = errors.New("duplicate catalog entry")

//go:embed catalog.yaml
var sampleCatalog []byte

// catalogFile mirrors the YAML layout. Stat keys decode through
// stat.Kind's UnmarshalText, so abbreviations and full names both work.
type catalogFile struct {
	ItemLevels map[int]map[stat.Kind]int    `yaml:"item_levels"`
	SlotScales map[string]map[stat.Kind]int `yaml:"slot_scales"`
	Items      []itemEntry                  `yaml:"items"`
	Materia    []materiaEntry               `yaml:"materia"`
}

type itemEntry struct {
	ID              uint32            `yaml:"id"`
	Name            string            `yaml:"name"`
	ItemLevel       int               `yaml:"item_level"`
	Slot            string            `yaml:"slot"`
	MateriaSlots    int               `yaml:"materia_slots"`
	AdvancedMelding bool              `yaml:"advanced_melding"`
	Stats           map[stat.Kind]int `yaml:"stats"`
	HQStats         map[stat.Kind]int `yaml:"hq_stats"`
	Caps            map[stat.Kind]int `yaml:"caps"`
}

type materiaEntry struct {
	ID     uint32         `yaml:"id"`
	Name   string         `yaml:"name"`
	Stat   stat.Kind      `yaml:"stat"`
	Grades []materiaGrade `yaml:"grades"`
}

type materiaGrade struct {
	Grade  uint8  `yaml:"grade"`
	ItemID uint32 `yaml:"item_id"`
	Value  int    `yaml:"value"`
}

// LoadCatalog reads a catalog YAML file. An empty path loads the embedded
// sample catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return ParseCatalog(sampleCatalog)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	cat, err := ParseCatalog(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	return cat, nil
}

// ParseCatalog decodes catalog YAML.
func ParseCatalog(raw []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decoding catalog yaml: %w", err)
	}

	cat := NewCatalog()

	for level, params := range file.ItemLevels {
		cat.SetItemLevel(level, params)
	}
	for slot, scale := range file.SlotScales {
		cat.SetSlotScale(slot, scale)
	}

	for _, e := range file.Items {
		if err := cat.AddItem(e.toItem()); err != nil {
			return nil, err
		}
	}

	for _, e := range file.Materia {
		for _, g := range e.Grades {
			err := cat.AddMateria(Materia{
				ID:     e.ID,
				Grade:  g.Grade,
				ItemID: g.ItemID,
				Name:   e.Name,
				Stat:   e.Stat,
				Value:  g.Value,
			})
			if err != nil {
				return nil, err
			}
		}
	}

	slog.Debug("catalog loaded", "items", cat.ItemCount(), "materia", cat.MateriaCount())
	return cat, nil
}

func (e itemEntry) toItem() Item {
	return Item{
		ID:              e.ID,
		Name:            e.Name,
		ItemLevel:       e.ItemLevel,
		Slot:            e.Slot,
		MateriaSlots:    e.MateriaSlots,
		AdvancedMelding: e.AdvancedMelding,
		Stats:           e.Stats,
		HQStats:         e.HQStats,
		Caps:            e.Caps,
	}
}

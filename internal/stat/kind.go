package stat

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies a trackable character statistic.
// Values match the game's BaseParam row ids so catalogs and snapshots
// can be exchanged without translation.
type Kind uint8

const (
	STR Kind = 1
	DEX Kind = 2
	VIT Kind = 3
	INT Kind = 4
	MND Kind = 5
	PIE Kind = 6

	HP Kind = 7
	MP Kind = 8
	TP Kind = 9
	GP Kind = 10
	CP Kind = 11

	PhysDMG Kind = 12
	MagDMG  Kind = 13

	TEN Kind = 19
	DEF Kind = 21

	DH  Kind = 22
	CRT Kind = 27
	DET Kind = 44
	SKS Kind = 45
	SPS Kind = 46

	Craftsmanship Kind = 70
	Control       Kind = 71
	Gathering     Kind = 72
	Perception    Kind = 73
)

// ErrUnknownKind is returned by ParseKind for names that match no stat.
var ErrUnknownKind = errors.New("unknown stat kind")

type kindInfo struct {
	abbrev string
	name   string
	order  int
}

// kinds holds display metadata. order drives report ordering.
var kinds = map[Kind]kindInfo{
	STR:           {"STR", "Strength", 10},
	DEX:           {"DEX", "Dexterity", 11},
	VIT:           {"VIT", "Vitality", 12},
	INT:           {"INT", "Intelligence", 13},
	MND:           {"MND", "Mind", 14},
	PIE:           {"PIE", "Piety", 30},
	HP:            {"HP", "HP", 1},
	MP:            {"MP", "MP", 2},
	TP:            {"TP", "TP", 3},
	GP:            {"GP", "GP", 4},
	CP:            {"CP", "CP", 5},
	PhysDMG:       {"PDMG", "Physical Damage", 40},
	MagDMG:        {"MDMG", "Magic Damage", 41},
	TEN:           {"TEN", "Tenacity", 29},
	DEF:           {"DEF", "Defense", 42},
	DH:            {"DH", "Direct Hit Rate", 21},
	CRT:           {"CRT", "Critical Hit", 20},
	DET:           {"DET", "Determination", 22},
	SKS:           {"SKS", "Skill Speed", 27},
	SPS:           {"SPS", "Spell Speed", 28},
	Craftsmanship: {"CMS", "Craftsmanship", 50},
	Control:       {"CTRL", "Control", 51},
	Gathering:     {"GATH", "Gathering", 52},
	Perception:    {"PERC", "Perception", 53},
}

// All lists every tracked kind in display order.
var All = buildOrder()

func buildOrder() []Kind {
	out := make([]Kind, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	// insertion sort, the table is tiny
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && kinds[out[j]].order < kinds[out[j-1]].order; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// Valid reports whether k is a known stat.
func (k Kind) Valid() bool {
	_, ok := kinds[k]
	return ok
}

// Abbrev returns the short tag (e.g. "CRT"), or "#<id>" for unknown kinds.
func (k Kind) Abbrev() string {
	if info, ok := kinds[k]; ok {
		return info.abbrev
	}
	return fmt.Sprintf("#%d", uint8(k))
}

// String returns the display name.
func (k Kind) String() string {
	if info, ok := kinds[k]; ok {
		return info.name
	}
	return fmt.Sprintf("Stat(%d)", uint8(k))
}

// Order returns the display position used to sort report rows.
func (k Kind) Order() int {
	if info, ok := kinds[k]; ok {
		return info.order
	}
	return 1000 + int(k)
}

// ParseKind resolves an abbreviation or display name, case-insensitive.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	for k, info := range kinds {
		if strings.EqualFold(s, info.abbrev) || strings.EqualFold(s, info.name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// UnmarshalText lets Kind be used as a YAML map key or value.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

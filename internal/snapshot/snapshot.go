// Package snapshot reads and writes equipped-item snapshots as YAML files,
// one file per observed character.
package snapshot

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/gearset/internal/gear"
	"github.com/udisondev/gearset/internal/stat"
)

// ErrTooManyMelds is returned for items listing more than gear.MaxMelds slots.
var ErrTooManyMelds = errors.New("too many meld slots")

// Snapshot is one reading of a character's equipment.
// Set is nil when the equipment could not be read.
type Snapshot struct {
	CharacterID int64
	Name        string
	Set         *gear.EquipmentSet
}

// Available reports whether the snapshot carries equipment.
func (s Snapshot) Available() bool {
	return s.Set != nil
}

type file struct {
	CharacterID int64      `yaml:"character_id"`
	Name        string     `yaml:"name"`
	Level       *int       `yaml:"level"`
	Job         uint8      `yaml:"job"`
	Tribe       uint8      `yaml:"tribe"`
	Gender      uint8      `yaml:"gender"`
	Items       []itemLine `yaml:"items"`
}

type itemLine struct {
	ID    uint32     `yaml:"id"`
	HQ    bool       `yaml:"hq,omitempty"`
	Melds []meldLine `yaml:"melds,omitempty"`
}

type meldLine struct {
	ID    uint32 `yaml:"id"`
	Grade uint8  `yaml:"grade"`
}

// Parse decodes a snapshot. A document without an items key describes a
// character whose equipment is unavailable. A missing level means the
// level cap.
func Parse(raw []byte) (Snapshot, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Snapshot{}, fmt.Errorf("decoding snapshot yaml: %w", err)
	}

	snap := Snapshot{CharacterID: f.CharacterID, Name: f.Name}
	if f.Items == nil {
		return snap, nil
	}

	items := make([]gear.Item, 0, len(f.Items))
	for i, line := range f.Items {
		if len(line.Melds) > gear.MaxMelds {
			return Snapshot{}, fmt.Errorf("item %d (#%d): %w: %d", line.ID, i, ErrTooManyMelds, len(line.Melds))
		}
		it := gear.Item{ID: line.ID, HighQuality: line.HQ}
		for j, m := range line.Melds {
			it.Melds[j] = gear.MateriaSlot{ID: m.ID, Grade: m.Grade}
		}
		items = append(items, it)
	}

	level := stat.MaxLevel
	if f.Level != nil {
		level = *f.Level
	}
	ch := gear.Character{Level: level, Job: f.Job, Tribe: f.Tribe, Gender: f.Gender}
	snap.Set = gear.NewEquipmentSet(ch, gear.Compact(items))
	return snap, nil
}

// Load reads one snapshot file.
func Load(path string) (Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading snapshot %s: %w", path, err)
	}
	snap, err := Parse(raw)
	if err != nil {
		return Snapshot{}, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}
	return snap, nil
}

// Marshal encodes a snapshot. Trailing empty meld slots are omitted.
func Marshal(s Snapshot) ([]byte, error) {
	f := file{CharacterID: s.CharacterID, Name: s.Name}
	if s.Set != nil {
		level := s.Set.Level
		f.Level = &level
		f.Job = s.Set.Job
		f.Tribe = s.Set.Tribe
		f.Gender = s.Set.Gender
		f.Items = make([]itemLine, 0, len(s.Set.Items))
		for _, it := range s.Set.Items {
			f.Items = append(f.Items, toLine(it))
		}
	}

	out, err := yaml.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot yaml: %w", err)
	}
	return out, nil
}

// Save writes a snapshot file.
func Save(path string, s Snapshot) error {
	raw, err := Marshal(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", path, err)
	}
	return nil
}

func toLine(it gear.Item) itemLine {
	line := itemLine{ID: it.ID, HQ: it.HighQuality}
	last := -1
	for i, m := range it.Melds {
		if m != (gear.MateriaSlot{}) {
			last = i
		}
	}
	for i := 0; i <= last; i++ {
		line.Melds = append(line.Melds, meldLine{ID: it.Melds[i].ID, Grade: it.Melds[i].Grade})
	}
	return line
}

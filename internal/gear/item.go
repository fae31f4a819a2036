// Package gear turns equipped items and their melds into per-stat reports.
package gear

import (
	"github.com/udisondev/gearset/internal/data"
	"github.com/udisondev/gearset/internal/stat"
)

// MaxMelds is the number of meld slots an item instance carries.
const MaxMelds = 5

// MateriaSlot is one meld slot. ID 0 means the slot is empty.
type MateriaSlot struct {
	ID    uint32
	Grade uint8
}

// Empty reports whether nothing is melded into the slot.
func (m MateriaSlot) Empty() bool {
	return m.ID == 0
}

// Item is one equipped item instance, as read from the game.
type Item struct {
	ID          uint32
	HighQuality bool
	Melds       [MaxMelds]MateriaSlot
}

// Catalog resolves static item and materia data.
// Lookups that miss are treated as zero contribution, never as errors.
type Catalog interface {
	Item(id uint32) (data.Item, bool)
	Materia(id uint32, grade uint8) (data.Materia, bool)
	MeldCap(item data.Item, kind stat.Kind) (int, bool)
}

// StatData is the breakdown of one stat.
// Value = Base + Gear + Delta; Waste is already excluded from Delta.
type StatData struct {
	Kind  stat.Kind
	Base  int
	Gear  int
	Delta int
	Waste int
	Value int

	PreviousTier int
	NextTier     int

	// Remaining is meld cap minus the points already granted.
	// Only meaningful when HasRemaining is set.
	Remaining    int
	HasRemaining bool
}

// Compact drops slots the game reports with item id 0, keeping order.
func Compact(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.ID == 0 {
			continue
		}
		out = append(out, it)
	}
	return out
}

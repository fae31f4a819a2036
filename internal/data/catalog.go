package data

import (
	"fmt"

	"github.com/udisondev/gearset/internal/stat"
)

// Item is the static definition of a piece of gear.
type Item struct {
	ID              uint32
	Name            string
	ItemLevel       int
	Slot            string // equip slot category, selects the cap scaling row
	MateriaSlots    int
	AdvancedMelding bool

	Stats   map[stat.Kind]int // normal-quality grants
	HQStats map[stat.Kind]int // added on top of Stats for high-quality items
	Caps    map[stat.Kind]int // explicit meld caps, override the scaled ones
}

// Grant returns the innate value of kind, including the HQ bonus when hq is set.
func (i Item) Grant(kind stat.Kind, hq bool) int {
	v := i.Stats[kind]
	if hq {
		v += i.HQStats[kind]
	}
	return v
}

// Granted lists every kind the item grants, NQ or HQ.
func (i Item) Granted(hq bool) []stat.Kind {
	out := make([]stat.Kind, 0, len(i.Stats)+len(i.HQStats))
	for _, k := range stat.All {
		if i.Grant(k, hq) != 0 {
			out = append(out, k)
		}
	}
	return out
}

// Materia is one grade of a materia type.
type Materia struct {
	ID     uint32 // materia type id, as stored in meld slots
	Grade  uint8
	ItemID uint32 // item id of this grade, used for summaries
	Name   string
	Stat   stat.Kind
	Value  int
}

type materiaKey struct {
	id    uint32
	grade uint8
}

// Catalog is the read-only lookup of item and materia definitions.
// Build it with the Add/Set methods (or LoadCatalog) before sharing it;
// lookups are safe for concurrent use once construction is done.
type Catalog struct {
	items      map[uint32]Item
	materia    map[materiaKey]Materia
	byItemID   map[uint32]materiaKey
	itemLevels map[int]map[stat.Kind]int
	slotScales map[string]map[stat.Kind]int
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		items:      make(map[uint32]Item, 64),
		materia:    make(map[materiaKey]Materia, 64),
		byItemID:   make(map[uint32]materiaKey, 64),
		itemLevels: make(map[int]map[stat.Kind]int, 8),
		slotScales: make(map[string]map[stat.Kind]int, 16),
	}
}

// AddItem registers an item definition.
func (c *Catalog) AddItem(item Item) error {
	if item.ID == 0 {
		return fmt.Errorf("item %q: id must be non-zero", item.Name)
	}
	if _, dup := c.items[item.ID]; dup {
		return fmt.Errorf("%w: item %d", ErrDuplicate, item.ID)
	}
	c.items[item.ID] = item
	return nil
}

// AddMateria registers one grade of a materia type.
func (c *Catalog) AddMateria(m Materia) error {
	if m.ID == 0 {
		return fmt.Errorf("materia %q: id must be non-zero", m.Name)
	}
	if !m.Stat.Valid() {
		return fmt.Errorf("materia %d: %w: %d", m.ID, stat.ErrUnknownKind, uint8(m.Stat))
	}
	key := materiaKey{id: m.ID, grade: m.Grade}
	if _, dup := c.materia[key]; dup {
		return fmt.Errorf("%w: materia %d grade %d", ErrDuplicate, m.ID, m.Grade)
	}
	c.materia[key] = m
	if m.ItemID != 0 {
		c.byItemID[m.ItemID] = key
	}
	return nil
}

// SetItemLevel sets the base parameter values for an item level.
func (c *Catalog) SetItemLevel(level int, params map[stat.Kind]int) {
	c.itemLevels[level] = params
}

// SetSlotScale sets the per-mille scaling of item-level params for a slot category.
func (c *Catalog) SetSlotScale(slot string, scale map[stat.Kind]int) {
	c.slotScales[slot] = scale
}

// Item returns the definition of id.
func (c *Catalog) Item(id uint32) (Item, bool) {
	item, ok := c.items[id]
	return item, ok
}

// Materia returns the definition of a materia type at grade.
func (c *Catalog) Materia(id uint32, grade uint8) (Materia, bool) {
	m, ok := c.materia[materiaKey{id: id, grade: grade}]
	return m, ok
}

// MateriaByItem returns the materia grade whose inventory item id is itemID.
func (c *Catalog) MateriaByItem(itemID uint32) (Materia, bool) {
	key, ok := c.byItemID[itemID]
	if !ok {
		return Materia{}, false
	}
	return c.materia[key], true
}

// MeldCap returns the most points of kind the item may hold from gear and
// melds combined. An explicit cap on the item wins; otherwise the cap is
// the item-level base param scaled by the slot category, rounded.
// ok is false when neither source defines a cap.
func (c *Catalog) MeldCap(item Item, kind stat.Kind) (int, bool) {
	if v, ok := item.Caps[kind]; ok {
		return v, true
	}

	base, ok := c.itemLevels[item.ItemLevel][kind]
	if !ok {
		return 0, false
	}
	scale, ok := c.slotScales[item.Slot][kind]
	if !ok {
		return 0, false
	}
	return (base*scale + 500) / 1000, true
}

// ItemCount returns the number of item definitions.
func (c *Catalog) ItemCount() int { return len(c.items) }

// MateriaCount returns the number of materia grade definitions.
func (c *Catalog) MateriaCount() int { return len(c.materia) }

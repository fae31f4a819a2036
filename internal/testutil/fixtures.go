// Package testutil holds shared fixtures for tests above the gear package.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/gearset/internal/data"
	"github.com/udisondev/gearset/internal/gear"
)

// Item ids and materia from the embedded sample catalog.
const (
	Sword       uint32 = 40001 // STR/CRT/DET weapon, 2 slots
	Ring        uint32 = 40004 // DET/DH ring, 2 slots
	Coat        uint32 = 40010 // crafted body with HQ stats
	SavageAim   uint32 = 14    // CRT materia
	SavageMight uint32 = 16    // DET materia

	PLD uint8 = 19
	WHM uint8 = 24
)

// SampleCatalog загружает встроенный каталог или валит тест.
func SampleCatalog(tb testing.TB) *data.Catalog {
	tb.Helper()
	cat, err := data.LoadCatalog("")
	require.NoError(tb, err)
	return cat
}

// Melds builds a meld array from leading slots.
func Melds(slots ...gear.MateriaSlot) [gear.MaxMelds]gear.MateriaSlot {
	var out [gear.MaxMelds]gear.MateriaSlot
	copy(out[:], slots)
	return out
}

// TankSet is a level 90 PLD wearing the sword with one CRT meld of the
// given grade and an unmelded ring.
func TankSet(grade uint8) *gear.EquipmentSet {
	return gear.NewEquipmentSet(gear.Character{Level: 90, Job: PLD}, []gear.Item{
		{ID: Sword, Melds: Melds(gear.MateriaSlot{ID: SavageAim, Grade: grade})},
		{ID: Ring},
	})
}

// WriteFile пишет файл в dir и возвращает полный путь.
func WriteFile(tb testing.TB, dir, name, body string) string {
	tb.Helper()
	path := filepath.Join(dir, name)
	require.NoError(tb, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// ContextWithTimeout создаёт context с timeout, отменяемый при завершении теста.
func ContextWithTimeout(tb testing.TB, d time.Duration) context.Context {
	tb.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	tb.Cleanup(cancel)
	return ctx
}

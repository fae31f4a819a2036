package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/gearset/internal/engine"
	"github.com/udisondev/gearset/internal/gear"
	"github.com/udisondev/gearset/internal/stat"
)

// Gearset is one stored loadout of a character.
type Gearset struct {
	ID          int64
	CharacterID int64
	Fingerprint gear.Fingerprint
	Set         *gear.EquipmentSet
	Stats       []gear.StatData // display order
	CreatedAt   time.Time
	ObservedAt  time.Time
}

// GearsetSummary is a history row without items or stats.
type GearsetSummary struct {
	ID          int64
	Fingerprint gear.Fingerprint
	Level       int
	Job         uint8
	CreatedAt   time.Time
	ObservedAt  time.Time
}

// GearsetRepository stores gear sets keyed by character and fingerprint.
type GearsetRepository struct {
	pool *pgxpool.Pool
}

// NewGearsetRepository создаёт новый GearsetRepository.
func NewGearsetRepository(pool *pgxpool.Pool) *GearsetRepository {
	return &GearsetRepository{pool: pool}
}

// Save stores a computed result. A loadout seen before only has its
// observed_at refreshed; items and stats are written once per fingerprint.
func (r *GearsetRepository) Save(ctx context.Context, characterID int64, res *engine.Result) error {
	_, _, err := r.SaveResult(ctx, characterID, res)
	return err
}

// SaveResult is Save that also reports the row id and whether it was new.
func (r *GearsetRepository) SaveResult(ctx context.Context, characterID int64, res *engine.Result) (id int64, inserted bool, err error) {
	if res == nil || res.Set == nil {
		return 0, false, fmt.Errorf("saving gearset for character %d: empty result", characterID)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	set := res.Set
	fp := res.Fingerprint
	err = tx.QueryRow(ctx,
		`INSERT INTO gearsets (character_id, fingerprint, level, job, tribe, gender)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (character_id, fingerprint) DO UPDATE SET observed_at = now()
		 RETURNING id, (xmax = 0)`,
		characterID, fp[:], set.Level, int16(set.Job), int16(set.Tribe), int16(set.Gender),
	).Scan(&id, &inserted)
	if err != nil {
		return 0, false, fmt.Errorf("upserting gearset for character %d: %w", characterID, err)
	}

	if inserted {
		if err := saveItems(ctx, tx, id, set.Items); err != nil {
			return 0, false, err
		}
		if res.Report != nil {
			if err := saveStats(ctx, tx, id, res.Report.Ordered()); err != nil {
				return 0, false, err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, false, fmt.Errorf("commit gearset %d: %w", id, err)
	}
	return id, inserted, nil
}

func saveItems(ctx context.Context, tx pgx.Tx, gearsetID int64, items []gear.Item) error {
	if len(items) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for pos, it := range items {
		ids := make([]int32, gear.MaxMelds)
		grades := make([]int16, gear.MaxMelds)
		for i, m := range it.Melds {
			ids[i] = int32(m.ID)
			grades[i] = int16(m.Grade)
		}
		batch.Queue(
			`INSERT INTO gearset_items (gearset_id, position, item_id, hq, materia_ids, materia_grades)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			gearsetID, int16(pos), int32(it.ID), it.HighQuality, ids, grades,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range items {
		if _, err := br.Exec(); err != nil {
			br.Close() //nolint:errcheck
			return fmt.Errorf("save gearset items batch: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("close items batch: %w", err)
	}
	return nil
}

func saveStats(ctx context.Context, tx pgx.Tx, gearsetID int64, rows []gear.StatData) error {
	if len(rows) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, d := range rows {
		var remaining *int32
		if d.HasRemaining {
			v := int32(d.Remaining)
			remaining = &v
		}
		batch.Queue(
			`INSERT INTO gearset_stats
			 (gearset_id, stat, base, gear, delta, waste, value, previous_tier, next_tier, remaining)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			gearsetID, int16(d.Kind), d.Base, d.Gear, d.Delta, d.Waste, d.Value,
			d.PreviousTier, d.NextTier, remaining,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range rows {
		if _, err := br.Exec(); err != nil {
			br.Close() //nolint:errcheck
			return fmt.Errorf("save gearset stats batch: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("close stats batch: %w", err)
	}
	return nil
}

// LoadLatest returns the most recently observed gear set of a character.
// Returns ErrNotFound if nothing was stored.
func (r *GearsetRepository) LoadLatest(ctx context.Context, characterID int64) (*Gearset, error) {
	var (
		g      Gearset
		fp     []byte
		level  int16
		job    int16
		tribe  int16
		gender int16
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, character_id, fingerprint, level, job, tribe, gender, created_at, observed_at
		 FROM gearsets
		 WHERE character_id = $1
		 ORDER BY observed_at DESC, id DESC
		 LIMIT 1`, characterID,
	).Scan(&g.ID, &g.CharacterID, &fp, &level, &job, &tribe, &gender, &g.CreatedAt, &g.ObservedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("querying latest gearset for character %d: %w", characterID, err)
	}
	if err := copyFingerprint(&g.Fingerprint, fp); err != nil {
		return nil, fmt.Errorf("gearset %d: %w", g.ID, err)
	}

	items, err := r.loadItems(ctx, g.ID)
	if err != nil {
		return nil, err
	}
	ch := gear.Character{Level: int(level), Job: uint8(job), Tribe: uint8(tribe), Gender: uint8(gender)}
	g.Set = &gear.EquipmentSet{Character: ch, Items: items}

	if g.Stats, err = r.loadStats(ctx, g.ID); err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GearsetRepository) loadItems(ctx context.Context, gearsetID int64) ([]gear.Item, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT item_id, hq, materia_ids, materia_grades
		 FROM gearset_items
		 WHERE gearset_id = $1
		 ORDER BY position`, gearsetID)
	if err != nil {
		return nil, fmt.Errorf("querying items of gearset %d: %w", gearsetID, err)
	}
	defer rows.Close()

	items := make([]gear.Item, 0, 16)
	for rows.Next() {
		var (
			itemID int32
			it     gear.Item
			ids    []int32
			grades []int16
		)
		if err := rows.Scan(&itemID, &it.HighQuality, &ids, &grades); err != nil {
			return nil, fmt.Errorf("scanning gearset item: %w", err)
		}
		it.ID = uint32(itemID)
		for i := 0; i < gear.MaxMelds && i < len(ids) && i < len(grades); i++ {
			it.Melds[i] = gear.MateriaSlot{ID: uint32(ids[i]), Grade: uint8(grades[i])}
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating gearset items: %w", err)
	}
	return items, nil
}

func (r *GearsetRepository) loadStats(ctx context.Context, gearsetID int64) ([]gear.StatData, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT stat, base, gear, delta, waste, value, previous_tier, next_tier, remaining
		 FROM gearset_stats
		 WHERE gearset_id = $1`, gearsetID)
	if err != nil {
		return nil, fmt.Errorf("querying stats of gearset %d: %w", gearsetID, err)
	}
	defer rows.Close()

	byKind := make(map[stat.Kind]gear.StatData, len(stat.All))
	for rows.Next() {
		var (
			kind      int16
			d         gear.StatData
			remaining *int32
		)
		if err := rows.Scan(&kind, &d.Base, &d.Gear, &d.Delta, &d.Waste, &d.Value,
			&d.PreviousTier, &d.NextTier, &remaining); err != nil {
			return nil, fmt.Errorf("scanning gearset stat: %w", err)
		}
		d.Kind = stat.Kind(kind)
		if remaining != nil {
			d.Remaining = int(*remaining)
			d.HasRemaining = true
		}
		byKind[d.Kind] = d
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating gearset stats: %w", err)
	}

	out := make([]gear.StatData, 0, len(byKind))
	for _, k := range stat.All {
		if d, ok := byKind[k]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

// ListHistory returns up to limit stored loadouts, newest observation first.
func (r *GearsetRepository) ListHistory(ctx context.Context, characterID int64, limit int) ([]GearsetSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.pool.Query(ctx,
		`SELECT id, fingerprint, level, job, created_at, observed_at
		 FROM gearsets
		 WHERE character_id = $1
		 ORDER BY observed_at DESC, id DESC
		 LIMIT $2`, characterID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying gearset history for character %d: %w", characterID, err)
	}
	defer rows.Close()

	var out []GearsetSummary
	for rows.Next() {
		var (
			s     GearsetSummary
			fp    []byte
			level int16
			job   int16
		)
		if err := rows.Scan(&s.ID, &fp, &level, &job, &s.CreatedAt, &s.ObservedAt); err != nil {
			return nil, fmt.Errorf("scanning gearset history: %w", err)
		}
		if err := copyFingerprint(&s.Fingerprint, fp); err != nil {
			return nil, fmt.Errorf("gearset %d: %w", s.ID, err)
		}
		s.Level = int(level)
		s.Job = uint8(job)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating gearset history: %w", err)
	}
	return out, nil
}

// Delete removes every stored loadout of a character.
func (r *GearsetRepository) Delete(ctx context.Context, characterID int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM gearsets WHERE character_id = $1`, characterID)
	if err != nil {
		return 0, fmt.Errorf("deleting gearsets of character %d: %w", characterID, err)
	}
	return tag.RowsAffected(), nil
}

func copyFingerprint(dst *gear.Fingerprint, src []byte) error {
	if len(src) != len(dst) {
		return fmt.Errorf("fingerprint has %d bytes, want %d", len(src), len(dst))
	}
	copy(dst[:], src)
	return nil
}

package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/udisondev/gearset/internal/data"
	"github.com/udisondev/gearset/internal/engine"
	"github.com/udisondev/gearset/internal/gear"
	"github.com/udisondev/gearset/internal/snapshot"
	"github.com/udisondev/gearset/internal/stat"
)

// printer renders character reports to text.
type printer struct {
	cat   *data.Catalog
	items bool // add the per-item breakdown
}

// write prints one character: stat table, per-item breakdown when enabled,
// derived values, materia summary. res is nil when the snapshot had no
// equipment.
func (p printer) write(out io.Writer, snap snapshot.Snapshot, res *engine.Result) error {
	name := snap.Name
	if name == "" {
		name = "character " + strconv.FormatInt(snap.CharacterID, 10)
	}

	if res == nil {
		_, err := fmt.Fprintf(out, "== %s: equipment unavailable\n\n", name)
		return err
	}

	r := res.Report
	job := stat.LookupJob(r.Character.Job)
	jobName := job.Abbrev
	if jobName == "" {
		jobName = "job " + strconv.Itoa(int(r.Character.Job))
	}
	fmt.Fprintf(out, "== %s  lv%d %s  [%s]\n", name, r.Character.Level, jobName, res.Fingerprint.String()[:12])

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "stat\tbase\tgear\tmeld\twaste\tvalue\tprev\tnext\tcap left\t")
	for _, d := range r.Ordered() {
		if !shown(d) {
			continue
		}
		tiered := d.PreviousTier != 0 || d.NextTier != 0
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%s\t%s\t%s\t\n",
			d.Kind.Abbrev(), d.Base, d.Gear, d.Delta, d.Waste, d.Value,
			tierCell(d.PreviousTier, tiered), tierCell(d.NextTier, tiered), remainingCell(d))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if p.items {
		if err := writeItems(out, r.Items); err != nil {
			return err
		}
	}

	if len(res.Calculated) > 0 {
		fmt.Fprintln(out)
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, c := range res.Calculated {
			fmt.Fprintf(w, "%s\t%s\n", c.Label, c.Value)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	if ids := r.MateriaIDs(); len(ids) > 0 || r.EmptySlots > 0 {
		fmt.Fprintln(out)
		w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, id := range ids {
			fmt.Fprintf(w, "%s\tx%d\n", materiaName(p.cat, id), r.MateriaCount[id])
		}
		fmt.Fprintf(w, "empty slots\t%d\n", r.EmptySlots)
		if err := w.Flush(); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(out)
	return err
}

// writeItems prints what each piece contributes, in equipment order.
func writeItems(out io.Writer, items []gear.ItemStats) error {
	for _, it := range items {
		fmt.Fprintf(out, "\n-- %s\n", itemName(it))

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(w, "stat\tgear\tmeld\tover\ttotal\tcap left\t")
		for _, k := range stat.All {
			d, ok := it.Stats[k]
			if !ok || !shown(d) {
				continue
			}
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%s\t\n",
				d.Kind.Abbrev(), d.Gear, d.Delta, d.Waste, d.Value, remainingCell(d))
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func itemName(it gear.ItemStats) string {
	name := "item #" + strconv.FormatUint(uint64(it.Item.ID), 10)
	if it.Known && it.Def.Name != "" {
		name = it.Def.Name + " (" + strconv.FormatUint(uint64(it.Item.ID), 10) + ")"
	}
	if it.Item.HighQuality {
		name += " HQ"
	}
	return name
}

// shown hides rows nothing contributes to.
func shown(d gear.StatData) bool {
	return d.Base != 0 || d.Gear != 0 || d.Delta != 0 || d.Waste != 0
}

func tierCell(v int, known bool) string {
	if !known {
		return "-"
	}
	return strconv.Itoa(v)
}

func remainingCell(d gear.StatData) string {
	if !d.HasRemaining {
		return "-"
	}
	return strconv.Itoa(d.Remaining)
}

var grades = [...]string{"", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X", "XI", "XII"}

func materiaName(cat *data.Catalog, itemID uint32) string {
	if m, ok := cat.MateriaByItem(itemID); ok && m.Name != "" {
		if int(m.Grade) < len(grades) {
			return m.Name + " " + grades[m.Grade]
		}
		return m.Name + " " + strconv.Itoa(int(m.Grade))
	}
	return "materia #" + strconv.FormatUint(uint64(itemID), 10)
}

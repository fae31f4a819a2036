// Package calc derives combat-facing numbers from a stat report.
package calc

import (
	"fmt"

	"github.com/udisondev/gearset/internal/formula"
	"github.com/udisondev/gearset/internal/gear"
	"github.com/udisondev/gearset/internal/stat"
)

// CalculatedStat is one labelled derived value, already formatted.
type CalculatedStat struct {
	Key   string
	Label string
	Value string
}

// Derive evaluates the formulas that apply to the report's job, in a fixed
// order. Combat jobs get the full list; crafters and gatherers get their
// resource pool; unknown jobs get only the job-independent entries.
// A level outside 1..stat.MaxLevel yields no combat entries at all.
func Derive(r *gear.Report) []CalculatedStat {
	job := stat.LookupJob(r.Character.Job)
	mods := formula.ModsForLevel(r.Character.Level)
	v := func(k stat.Kind) int { return r.Stat(k).Value }

	switch job.Role {
	case stat.RoleCrafter:
		return []CalculatedStat{{Key: "calc.cp", Label: "Crafting Points", Value: fmt.Sprint(v(stat.CP))}}
	case stat.RoleGatherer:
		return []CalculatedStat{{Key: "calc.gp", Label: "Gathering Points", Value: fmt.Sprint(v(stat.GP))}}
	}

	if r.Character.Level < 1 || r.Character.Level > stat.MaxLevel {
		return nil
	}

	critRate := mods.CritRate(v(stat.CRT))
	critDamage := mods.CritDamage(v(stat.CRT))
	dhRate := mods.DirectHitRate(v(stat.DH))
	det := mods.Determination(v(stat.DET))

	out := make([]CalculatedStat, 0, 12)
	out = append(out,
		CalculatedStat{Key: "calc.crit-rate", Label: "Critical Hit Rate", Value: percent(critRate)},
		CalculatedStat{Key: "calc.crit-damage", Label: "Critical Hit Damage", Value: percent(critDamage)},
		CalculatedStat{Key: "calc.dh-rate", Label: "Direct Hit Rate", Value: percent(dhRate)},
		CalculatedStat{Key: "calc.det-bonus", Label: "Determination Bonus", Value: bonus(det)},
	)

	if !job.Role.Combat() {
		return out
	}

	ten := 0
	if job.Tank() {
		ten = mods.Tenacity(v(stat.TEN))
		out = append(out, CalculatedStat{Key: "calc.ten-bonus", Label: "Tenacity Bonus", Value: bonus(ten)})
	}

	speed := v(job.Speed)
	label := job.Speed.String()
	out = append(out,
		CalculatedStat{Key: "calc.gcd", Label: label + " GCD", Value: seconds(mods.GCD(speed))},
		CalculatedStat{Key: "calc.dot-bonus", Label: label + " DoT Bonus", Value: bonus(mods.Speed(speed))},
	)

	if job.Role == stat.RoleHealer {
		out = append(out, CalculatedStat{Key: "calc.mp-tick", Label: "MP per Tick", Value: fmt.Sprint(mods.MPPerTick(v(stat.PIE)))})
	}

	wd := mods.WeaponDamage(weaponDamage(r, job), job)
	ap := mods.AttackPower(v(job.Primary), job)
	out = append(out,
		CalculatedStat{Key: "calc.weapon-damage", Label: "Weapon Damage Multiplier", Value: fmt.Sprintf("%d%%", wd)},
		CalculatedStat{Key: "calc.attack-power", Label: "Attack Power Multiplier", Value: fmt.Sprintf("%d%%", ap)},
		CalculatedStat{Key: "calc.expected-damage", Label: "Expected Damage per 100 Potency", Value: fmt.Sprintf("%.0f", expectedDamage(wd, ap, det, ten, critRate, critDamage, dhRate))},
	)

	return out
}

// weaponDamage picks the damage type matching the job's primary attribute.
func weaponDamage(r *gear.Report, job stat.Job) int {
	switch job.Primary {
	case stat.INT, stat.MND:
		return r.Stat(stat.MagDMG).Value
	}
	return r.Stat(stat.PhysDMG).Value
}

// expectedDamage is the average damage of a 100 potency hit with crit and
// direct hit folded in by their probabilities. Direct hits add 25%.
func expectedDamage(wd, ap, det, ten, critRate, critDamage, dhRate int) float64 {
	base := 100 * float64(ap) / 100 * float64(1000+det) / 1000 * float64(1000+ten) / 1000 * float64(wd) / 100
	crit := 1 + clampRate(critRate)*(float64(critDamage)/1000-1)
	dh := 1 + clampRate(dhRate)*0.25
	return base * crit * dh
}

func clampRate(permille int) float64 {
	switch {
	case permille < 0:
		return 0
	case permille > 1000:
		return 1
	}
	return float64(permille) / 1000
}

func percent(permille int) string {
	return fmt.Sprintf("%.1f%%", float64(permille)/10)
}

func bonus(permille int) string {
	return fmt.Sprintf("%+.1f%%", float64(permille)/10)
}

func seconds(centis int) string {
	return fmt.Sprintf("%.2fs", float64(centis)/100)
}

package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/gearset/internal/gear"
	"github.com/udisondev/gearset/internal/stat"
)

func reportWith(level int, job uint8, values map[stat.Kind]int) *gear.Report {
	r := &gear.Report{
		Character: gear.Character{Level: level, Job: job},
		Stats:     make(map[stat.Kind]gear.StatData, len(values)),
	}
	for k, v := range values {
		r.Stats[k] = gear.StatData{Kind: k, Value: v}
	}
	return r
}

func keys(stats []CalculatedStat) []string {
	out := make([]string, len(stats))
	for i, s := range stats {
		out[i] = s.Key
	}
	return out
}

func byKey(stats []CalculatedStat) map[string]CalculatedStat {
	out := make(map[string]CalculatedStat, len(stats))
	for _, s := range stats {
		out[s.Key] = s
	}
	return out
}

func TestDerive_Healer(t *testing.T) {
	r := reportWith(90, 24, map[stat.Kind]int{
		stat.CRT:    2000,
		stat.DH:     1400,
		stat.DET:    1900,
		stat.SPS:    1000,
		stat.PIE:    890,
		stat.MND:    3000,
		stat.MagDMG: 120,
	})

	got := Derive(r)

	assert.Equal(t, []string{
		"calc.crit-rate", "calc.crit-damage", "calc.dh-rate", "calc.det-bonus",
		"calc.gcd", "calc.dot-bonus", "calc.mp-tick",
		"calc.weapon-damage", "calc.attack-power", "calc.expected-damage",
	}, keys(got))

	m := byKey(got)
	assert.Equal(t, "21.8%", m["calc.crit-rate"].Value)
	assert.Equal(t, "156.8%", m["calc.crit-damage"].Value)
	assert.Equal(t, "28.9%", m["calc.dh-rate"].Value)
	assert.Equal(t, "+11.1%", m["calc.det-bonus"].Value)
	assert.Equal(t, "Spell Speed GCD", m["calc.gcd"].Label)
	assert.Equal(t, "2.39s", m["calc.gcd"].Value)
	assert.Equal(t, "+4.1%", m["calc.dot-bonus"].Value)
	assert.Equal(t, "239", m["calc.mp-tick"].Value)
	assert.Equal(t, "164%", m["calc.weapon-damage"].Value)
	assert.Equal(t, "1405%", m["calc.attack-power"].Value)
	assert.Equal(t, "3085", m["calc.expected-damage"].Value)
}

func TestDerive_Tank(t *testing.T) {
	r := reportWith(90, 19, map[stat.Kind]int{
		stat.CRT: 400, stat.DH: 400, stat.DET: 390, stat.SKS: 400, stat.TEN: 1400,
		stat.STR: 390, stat.PhysDMG: 120,
	})

	got := Derive(r)

	assert.Equal(t, []string{
		"calc.crit-rate", "calc.crit-damage", "calc.dh-rate", "calc.det-bonus",
		"calc.ten-bonus", "calc.gcd", "calc.dot-bonus",
		"calc.weapon-damage", "calc.attack-power", "calc.expected-damage",
	}, keys(got))

	m := byKey(got)
	assert.Equal(t, "5.0%", m["calc.crit-rate"].Value)
	assert.Equal(t, "0.0%", m["calc.dh-rate"].Value)
	assert.Equal(t, "+0.0%", m["calc.det-bonus"].Value)
	assert.Equal(t, "+5.2%", m["calc.ten-bonus"].Value)
	assert.Equal(t, "Skill Speed GCD", m["calc.gcd"].Label)
	assert.Equal(t, "2.50s", m["calc.gcd"].Value)
	assert.Equal(t, "159%", m["calc.weapon-damage"].Value)
	assert.Equal(t, "100%", m["calc.attack-power"].Value)
}

func TestDerive_CrafterAndGatherer(t *testing.T) {
	crafter := Derive(reportWith(90, 8, map[stat.Kind]int{stat.CP: 600}))
	require.Len(t, crafter, 1)
	assert.Equal(t, CalculatedStat{Key: "calc.cp", Label: "Crafting Points", Value: "600"}, crafter[0])

	gatherer := Derive(reportWith(90, 16, map[stat.Kind]int{stat.GP: 950}))
	require.Len(t, gatherer, 1)
	assert.Equal(t, "950", gatherer[0].Value)
}

func TestDerive_UnknownJob(t *testing.T) {
	got := Derive(reportWith(90, 0, map[stat.Kind]int{stat.CRT: 400}))

	assert.Equal(t, []string{"calc.crit-rate", "calc.crit-damage", "calc.dh-rate", "calc.det-bonus"}, keys(got))
}

func TestDerive_BaseClasses(t *testing.T) {
	values := map[stat.Kind]int{stat.CRT: 400, stat.STR: 390, stat.MND: 390, stat.INT: 390, stat.SKS: 400, stat.SPS: 400}

	gla := keys(Derive(reportWith(90, 1, values)))
	assert.Contains(t, gla, "calc.ten-bonus")
	assert.Contains(t, gla, "calc.gcd")
	assert.Contains(t, gla, "calc.expected-damage")

	cnj := keys(Derive(reportWith(90, 6, values)))
	assert.Contains(t, cnj, "calc.mp-tick")
	assert.Contains(t, cnj, "calc.attack-power")

	thm := byKey(Derive(reportWith(90, 7, values)))
	assert.Equal(t, "Spell Speed GCD", thm["calc.gcd"].Label)
}

func TestDerive_LevelOutOfRange(t *testing.T) {
	values := map[stat.Kind]int{stat.CRT: 400, stat.STR: 390, stat.SKS: 400}

	for _, level := range []int{0, -1, stat.MaxLevel + 5} {
		assert.Empty(t, Derive(reportWith(level, 19, values)), "level %d", level)
		assert.Empty(t, Derive(reportWith(level, 0, values)), "level %d", level)
	}

	crafter := Derive(reportWith(0, 8, map[stat.Kind]int{stat.CP: 180}))
	require.Len(t, crafter, 1)
	assert.Equal(t, "180", crafter[0].Value)
}

func TestDerive_LevelBounds(t *testing.T) {
	values := map[stat.Kind]int{stat.CRT: 400, stat.STR: 390, stat.SKS: 400}

	assert.NotEmpty(t, Derive(reportWith(1, 19, values)))
	assert.NotEmpty(t, Derive(reportWith(stat.MaxLevel, 19, values)))
}

func TestDerive_Deterministic(t *testing.T) {
	r := reportWith(80, 25, map[stat.Kind]int{stat.CRT: 1500, stat.INT: 2000, stat.SPS: 900})
	assert.Equal(t, Derive(r), Derive(r))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "21.8%", percent(218))
	assert.Equal(t, "+11.1%", bonus(111))
	assert.Equal(t, "-0.5%", bonus(-5))
	assert.Equal(t, "2.39s", seconds(239))
	assert.Equal(t, 0.0, clampRate(-20))
	assert.Equal(t, 1.0, clampRate(1500))
}

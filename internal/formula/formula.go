package formula

import "github.com/udisondev/gearset/internal/stat"

// floorDiv divides rounding toward negative infinity. Stats below their
// level baseline produce negative numerators and must still floor.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// scaled is floor(k * (value - base) / div).
func (m Mods) scaled(k, value, base int) int {
	return floorDiv(k*(value-base), m.Div)
}

// CritRate is the critical hit chance in permille.
func (m Mods) CritRate(crt int) int {
	return m.scaled(200, crt, m.Sub) + 50
}

// CritDamage is the critical hit damage multiplier in permille.
func (m Mods) CritDamage(crt int) int {
	return m.scaled(200, crt, m.Sub) + 1400
}

// DirectHitRate is the direct hit chance in permille.
func (m Mods) DirectHitRate(dh int) int {
	return m.scaled(550, dh, m.Sub)
}

// Determination is the damage and healing bonus in permille.
func (m Mods) Determination(det int) int {
	return m.scaled(140, det, m.Main)
}

// Tenacity is the damage, healing and mitigation bonus in permille.
func (m Mods) Tenacity(ten int) int {
	return m.scaled(100, ten, m.Sub)
}

// Speed is the skill/spell speed bonus in permille, applied to DoT/HoT
// ticks and used to shorten the GCD.
func (m Mods) Speed(ss int) int {
	return m.scaled(130, ss, m.Sub)
}

// GCD returns the recast of a 2.50s action in centiseconds.
func (m Mods) GCD(ss int) int {
	ms := floorDiv((1000-m.Speed(ss))*2500, 1000)
	return floorDiv(ms, 10)
}

// MPPerTick is the MP regenerated every server tick in combat.
func (m Mods) MPPerTick(pie int) int {
	return 200 + m.scaled(150, pie, m.Main)
}

// WeaponDamage is the weapon damage function fWD, in percent.
func (m Mods) WeaponDamage(wd int, job stat.Job) int {
	mod := job.Modifier
	if mod == 0 {
		mod = 100
	}
	return floorDiv(m.Main*mod, 1000) + wd
}

// AttackPower is the attack power function fAP, in percent.
func (m Mods) AttackPower(ap int, job stat.Job) int {
	factor := m.AP
	if job.Tank() {
		factor = m.APTank
	}
	if m.Main == 0 {
		return 100
	}
	return floorDiv(factor*(ap-m.Main), m.Main) + 100
}

// Breakpoint returns the integer formula whose output defines tiers for
// kind, or ok=false when the kind has no breakpoints. monotonic reports
// whether the output only moves in one direction as points grow.
func (m Mods) Breakpoint(kind stat.Kind) (f func(int) int, monotonic bool, ok bool) {
	switch kind {
	case stat.CRT:
		return m.CritRate, true, true
	case stat.DH:
		return m.DirectHitRate, true, true
	case stat.DET:
		return m.Determination, true, true
	case stat.TEN:
		return m.Tenacity, true, true
	case stat.PIE:
		return m.MPPerTick, true, true
	case stat.SKS, stat.SPS:
		// GCD shrinks as speed grows.
		return m.GCD, true, true
	}
	return nil, false, false
}

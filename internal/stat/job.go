package stat

import "strings"

// Role groups jobs that share formula constants.
type Role uint8

const (
	RoleNone Role = iota
	RoleTank
	RoleHealer
	RoleMelee
	RoleRanged
	RoleCaster
	RoleCrafter
	RoleGatherer
)

func (r Role) String() string {
	switch r {
	case RoleTank:
		return "tank"
	case RoleHealer:
		return "healer"
	case RoleMelee:
		return "melee"
	case RoleRanged:
		return "ranged"
	case RoleCaster:
		return "caster"
	case RoleCrafter:
		return "crafter"
	case RoleGatherer:
		return "gatherer"
	default:
		return "none"
	}
}

// Combat reports whether the role uses combat formulas.
func (r Role) Combat() bool {
	return r >= RoleTank && r <= RoleCaster
}

// Job describes the class/job modifiers the formulas need.
type Job struct {
	ID       uint8
	Abbrev   string
	Role     Role
	Primary  Kind // attribute that drives attack power
	Speed    Kind // SKS or SPS; 0 for non-combat jobs
	Modifier int  // primary attribute modifier, percent
}

// Tank is shorthand for Role == RoleTank.
func (j Job) Tank() bool { return j.Role == RoleTank }

// Jobs is keyed by ClassJob row id. Base classes share the role and
// attributes of the job they turn into, with a lower modifier.
var Jobs = map[uint8]Job{
	1:  {ID: 1, Abbrev: "GLA", Role: RoleTank, Primary: STR, Speed: SKS, Modifier: 95},
	3:  {ID: 3, Abbrev: "MRD", Role: RoleTank, Primary: STR, Speed: SKS, Modifier: 100},
	6:  {ID: 6, Abbrev: "CNJ", Role: RoleHealer, Primary: MND, Speed: SPS, Modifier: 110},
	2:  {ID: 2, Abbrev: "PGL", Role: RoleMelee, Primary: STR, Speed: SKS, Modifier: 105},
	4:  {ID: 4, Abbrev: "LNC", Role: RoleMelee, Primary: STR, Speed: SKS, Modifier: 110},
	29: {ID: 29, Abbrev: "ROG", Role: RoleMelee, Primary: DEX, Speed: SKS, Modifier: 105},
	5:  {ID: 5, Abbrev: "ARC", Role: RoleRanged, Primary: DEX, Speed: SKS, Modifier: 110},
	7:  {ID: 7, Abbrev: "THM", Role: RoleCaster, Primary: INT, Speed: SPS, Modifier: 110},
	26: {ID: 26, Abbrev: "ACN", Role: RoleCaster, Primary: INT, Speed: SPS, Modifier: 110},

	19: {ID: 19, Abbrev: "PLD", Role: RoleTank, Primary: STR, Speed: SKS, Modifier: 100},
	21: {ID: 21, Abbrev: "WAR", Role: RoleTank, Primary: STR, Speed: SKS, Modifier: 105},
	32: {ID: 32, Abbrev: "DRK", Role: RoleTank, Primary: STR, Speed: SKS, Modifier: 105},
	37: {ID: 37, Abbrev: "GNB", Role: RoleTank, Primary: STR, Speed: SKS, Modifier: 100},

	24: {ID: 24, Abbrev: "WHM", Role: RoleHealer, Primary: MND, Speed: SPS, Modifier: 115},
	28: {ID: 28, Abbrev: "SCH", Role: RoleHealer, Primary: MND, Speed: SPS, Modifier: 115},
	33: {ID: 33, Abbrev: "AST", Role: RoleHealer, Primary: MND, Speed: SPS, Modifier: 115},
	40: {ID: 40, Abbrev: "SGE", Role: RoleHealer, Primary: MND, Speed: SPS, Modifier: 115},

	20: {ID: 20, Abbrev: "MNK", Role: RoleMelee, Primary: STR, Speed: SKS, Modifier: 110},
	22: {ID: 22, Abbrev: "DRG", Role: RoleMelee, Primary: STR, Speed: SKS, Modifier: 115},
	30: {ID: 30, Abbrev: "NIN", Role: RoleMelee, Primary: DEX, Speed: SKS, Modifier: 110},
	34: {ID: 34, Abbrev: "SAM", Role: RoleMelee, Primary: STR, Speed: SKS, Modifier: 112},
	39: {ID: 39, Abbrev: "RPR", Role: RoleMelee, Primary: STR, Speed: SKS, Modifier: 115},

	23: {ID: 23, Abbrev: "BRD", Role: RoleRanged, Primary: DEX, Speed: SKS, Modifier: 115},
	31: {ID: 31, Abbrev: "MCH", Role: RoleRanged, Primary: DEX, Speed: SKS, Modifier: 115},
	38: {ID: 38, Abbrev: "DNC", Role: RoleRanged, Primary: DEX, Speed: SKS, Modifier: 115},

	25: {ID: 25, Abbrev: "BLM", Role: RoleCaster, Primary: INT, Speed: SPS, Modifier: 115},
	27: {ID: 27, Abbrev: "SMN", Role: RoleCaster, Primary: INT, Speed: SPS, Modifier: 115},
	35: {ID: 35, Abbrev: "RDM", Role: RoleCaster, Primary: INT, Speed: SPS, Modifier: 115},

	8:  {ID: 8, Abbrev: "CRP", Role: RoleCrafter},
	9:  {ID: 9, Abbrev: "BSM", Role: RoleCrafter},
	10: {ID: 10, Abbrev: "ARM", Role: RoleCrafter},
	11: {ID: 11, Abbrev: "GSM", Role: RoleCrafter},
	12: {ID: 12, Abbrev: "LTW", Role: RoleCrafter},
	13: {ID: 13, Abbrev: "WVR", Role: RoleCrafter},
	14: {ID: 14, Abbrev: "ALC", Role: RoleCrafter},
	15: {ID: 15, Abbrev: "CUL", Role: RoleCrafter},

	16: {ID: 16, Abbrev: "MIN", Role: RoleGatherer},
	17: {ID: 17, Abbrev: "BTN", Role: RoleGatherer},
	18: {ID: 18, Abbrev: "FSH", Role: RoleGatherer},
}

// LookupJob returns the job for a ClassJob id.
// Unknown ids yield a zero Job with RoleNone.
func LookupJob(id uint8) Job {
	if j, ok := Jobs[id]; ok {
		return j
	}
	return Job{ID: id}
}

// JobByAbbrev resolves "WHM", "drg" etc.
func JobByAbbrev(abbrev string) (Job, bool) {
	for _, j := range Jobs {
		if strings.EqualFold(j.Abbrev, abbrev) {
			return j, true
		}
	}
	return Job{}, false
}

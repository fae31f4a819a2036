package stat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseAtLevel_MainAndSub(t *testing.T) {
	for level := 0; level <= MaxLevel; level++ {
		want := LevelStats[level]
		for _, k := range []Kind{STR, DEX, VIT, INT, MND, PIE, DET} {
			assert.Equal(t, want.Main, BaseAtLevel(k, level), "%s at %d", k.Abbrev(), level)
		}
		for _, k := range []Kind{TEN, DH, CRT, SKS, SPS} {
			assert.Equal(t, want.Sub, BaseAtLevel(k, level), "%s at %d", k.Abbrev(), level)
		}
	}
}

func TestBaseAtLevel_ReferenceValues(t *testing.T) {
	assert.Equal(t, 390, BaseAtLevel(STR, 90))
	assert.Equal(t, 400, BaseAtLevel(CRT, 90))
	assert.Equal(t, 202, BaseAtLevel(DET, 50))
	assert.Equal(t, 341, BaseAtLevel(SKS, 50))
	assert.Equal(t, 20, BaseAtLevel(MND, 1))
	assert.Equal(t, 56, BaseAtLevel(TEN, 1))
}

func TestBaseAtLevel_OutOfRange(t *testing.T) {
	for _, level := range []int{-1, 91, 1000} {
		assert.Zero(t, BaseAtLevel(STR, level))
		assert.Zero(t, BaseAtLevel(CRT, level))
	}
}

func TestBaseAtLevel_GPAndCPIgnoreLevel(t *testing.T) {
	for _, level := range []int{-5, 0, 1, 50, 90, 120} {
		assert.Equal(t, 400, BaseAtLevel(GP, level))
		assert.Equal(t, 180, BaseAtLevel(CP, level))
	}
}

func TestBaseAtLevel_OtherKindsAreZero(t *testing.T) {
	for _, k := range []Kind{HP, MP, TP, PhysDMG, MagDMG, DEF, Craftsmanship, Control, Gathering, Perception} {
		assert.Zero(t, BaseAtLevel(k, 90), k.String())
	}
}

func TestLevelStats_NonDecreasing(t *testing.T) {
	for level := 1; level <= MaxLevel; level++ {
		prev, cur := LevelStats[level-1], LevelStats[level]
		assert.GreaterOrEqual(t, cur.Main, prev.Main, "main at %d", level)
		assert.GreaterOrEqual(t, cur.Sub, prev.Sub, "sub at %d", level)
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"CRT", CRT},
		{"crt", CRT},
		{"Critical Hit", CRT},
		{" det ", DET},
		{"SPS", SPS},
		{"CMS", Craftsmanship},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseKind("luck")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestAll_DisplayOrder(t *testing.T) {
	require.Len(t, All, len(kinds))
	for i := 1; i < len(All); i++ {
		assert.Less(t, All[i-1].Order(), All[i].Order())
	}
}

func TestLookupJob(t *testing.T) {
	whm := LookupJob(24)
	assert.Equal(t, "WHM", whm.Abbrev)
	assert.Equal(t, RoleHealer, whm.Role)
	assert.Equal(t, MND, whm.Primary)
	assert.Equal(t, SPS, whm.Speed)

	unknown := LookupJob(250)
	assert.Equal(t, RoleNone, unknown.Role)
	assert.False(t, unknown.Role.Combat())

	gnb, ok := JobByAbbrev("gnb")
	require.True(t, ok)
	assert.True(t, gnb.Tank())

	_, ok = JobByAbbrev("xyz")
	assert.False(t, ok)
}

func TestLookupJob_BaseClasses(t *testing.T) {
	tests := []struct {
		id      uint8
		abbrev  string
		role    Role
		primary Kind
		speed   Kind
	}{
		{1, "GLA", RoleTank, STR, SKS},
		{2, "PGL", RoleMelee, STR, SKS},
		{3, "MRD", RoleTank, STR, SKS},
		{4, "LNC", RoleMelee, STR, SKS},
		{5, "ARC", RoleRanged, DEX, SKS},
		{6, "CNJ", RoleHealer, MND, SPS},
		{7, "THM", RoleCaster, INT, SPS},
		{26, "ACN", RoleCaster, INT, SPS},
		{29, "ROG", RoleMelee, DEX, SKS},
	}
	for _, tt := range tests {
		t.Run(tt.abbrev, func(t *testing.T) {
			j := LookupJob(tt.id)
			assert.Equal(t, tt.abbrev, j.Abbrev)
			assert.Equal(t, tt.role, j.Role)
			assert.True(t, j.Role.Combat())
			assert.Equal(t, tt.primary, j.Primary)
			assert.Equal(t, tt.speed, j.Speed)
			assert.Positive(t, j.Modifier)

			byName, ok := JobByAbbrev(tt.abbrev)
			require.True(t, ok)
			assert.Equal(t, j, byName)
		})
	}
}

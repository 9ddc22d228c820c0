package defs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMissiles() []MissileDefinition {
	return []MissileDefinition{{ID: "bolt", Speed: 300}}
}

func TestNewLibraryKeepsOrder(t *testing.T) {
	lib, err := NewLibrary(
		[]EnemyDefinition{{ID: "b", Weight: 1}, {ID: "a", Weight: 2}},
		sampleMissiles(),
		[]WeaponDefinition{
			{ID: "gun", Pattern: PatternStraight, Missile: "bolt"},
			{ID: "fan", Pattern: PatternSpread, Missile: "bolt", Count: 5},
		},
	)
	require.NoError(t, err)
	assert.Equal(t, "b", lib.EnemyList()[0].ID)
	assert.Equal(t, "fan", lib.WeaponList()[1].ID)
}

func TestNewLibraryErrors(t *testing.T) {
	tests := []struct {
		name     string
		enemies  []EnemyDefinition
		missiles []MissileDefinition
		weapons  []WeaponDefinition
		want     error
	}{
		{
			name:     "duplicate enemy",
			enemies:  []EnemyDefinition{{ID: "x"}, {ID: "x"}},
			missiles: sampleMissiles(),
			want:     ErrDuplicateID,
		},
		{
			name:     "shooter without missile",
			enemies:  []EnemyDefinition{{ID: "x", FireInterval: 1, Missile: "nope"}},
			missiles: sampleMissiles(),
			want:     ErrUnknownID,
		},
		{
			name:     "weapon pattern",
			missiles: sampleMissiles(),
			weapons:  []WeaponDefinition{{ID: "w", Pattern: "laser", Missile: "bolt"}},
			want:     ErrInvalid,
		},
		{
			name:     "missile speed",
			missiles: []MissileDefinition{{ID: "slow"}},
			want:     ErrInvalid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLibrary(tt.enemies, tt.missiles, tt.weapons)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

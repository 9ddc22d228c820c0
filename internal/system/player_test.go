package system

import (
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/input"
	"go-space-shooter/internal/weapon"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlayerWorld(t *testing.T) (*Ship, *PlayerSystem, *entity.Container, *eventLog) {
	t.Helper()
	spread, err := weapon.NewSpread(boltProto(), 5, 10)
	require.NoError(t, err)
	weapons := []*weapon.Weapon{
		{ID: "cannon", Pattern: weapon.Straight{Proto: boltProto()}, Cooldown: 0.25},
		{ID: "seeker", Pattern: weapon.Homing{Proto: boltProto()}, Cooldown: 0.5},
		{ID: "fan", Pattern: spread, Cooldown: 0.6},
	}
	ship := NewShip(solid("ship", 20, 20), 100, 100, 100, weapons)
	missiles := entity.NewContainer()
	d := event.NewDispatcher()
	fired := listen(d, event.MissileFired)
	return ship, NewPlayerSystem(ship, entity.NewContainer(), missiles, 200, 200, d), missiles, fired
}

func TestShipMovement(t *testing.T) {
	tests := []struct {
		name  string
		keys  input.Fixed
		wantX float64
		wantY float64
	}{
		{"idle", input.Fixed{}, 100, 100},
		{"up", input.Fixed{input.KeyUp: true}, 100, 90},
		{"down", input.Fixed{input.KeyDown: true}, 100, 110},
		{"left", input.Fixed{input.KeyLeft: true}, 90, 100},
		{"right", input.Fixed{input.KeyRight: true}, 110, 100},
		{"vertical wins", input.Fixed{input.KeyUp: true, input.KeyRight: true}, 100, 90},
		{"up beats down", input.Fixed{input.KeyUp: true, input.KeyDown: true}, 100, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ship, s, _, _ := newPlayerWorld(t)
			s.Update(0.1, tt.keys)
			assert.InDelta(t, tt.wantX, ship.Entity.X, 1e-9)
			assert.InDelta(t, tt.wantY, ship.Entity.Y, 1e-9)
			assert.Equal(t, ship.Entity.Center().X, int(ship.Entity.X))
		})
	}
}

func TestShipClampedToScreen(t *testing.T) {
	ship, s, _, _ := newPlayerWorld(t)
	for i := 0; i < 50; i++ {
		s.Update(config.MaxDeltaTime, input.Fixed{input.KeyUp: true})
	}
	assert.Equal(t, 0.0, ship.Entity.Y)
	for i := 0; i < 100; i++ {
		s.Update(config.MaxDeltaTime, input.Fixed{input.KeyRight: true})
	}
	assert.Equal(t, 199.0, ship.Entity.X)
}

func TestShipFireRespectsCooldown(t *testing.T) {
	_, s, missiles, fired := newPlayerWorld(t)
	fire := input.Fixed{input.KeyFire: true}

	s.Update(0.01, fire)
	assert.Equal(t, 1, missiles.Len())

	for i := 0; i < 20; i++ {
		s.Update(0.01, fire) // 0.2 с — перезарядка 0.25 не закончилась
	}
	assert.Equal(t, 1, missiles.Len())

	for i := 0; i < 5; i++ {
		s.Update(0.01, fire)
	}
	assert.Equal(t, 2, missiles.Len())
	assert.Equal(t, 2, fired.count(event.MissileFired))
}

func TestShipWeaponSelection(t *testing.T) {
	ship, s, missiles, fired := newPlayerWorld(t)

	s.Update(0.01, input.Fixed{input.KeyWeapon3: true})
	assert.Equal(t, "fan", ship.Weapon().ID)

	s.Update(0.01, input.Fixed{input.KeyFire: true})
	assert.Equal(t, 5, missiles.Len())
	require.Len(t, fired.events, 1)
	assert.Equal(t, event.MissileFiredData{Team: "player", Count: 5}, fired.events[0].Data)

	s.Update(0.01, input.Fixed{input.KeyWeapon1: true, input.KeyFire: true})
	assert.Equal(t, "cannon", ship.Weapon().ID)
	assert.Equal(t, 5, missiles.Len(), "смена оружия не сбрасывает перезарядку")
}

package system

import (
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/sprite"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCollisionWorld() (*entity.Container, *entity.Container, *event.Dispatcher, *CollisionSystem) {
	enemies, missiles := entity.NewContainer(), entity.NewContainer()
	d := event.NewDispatcher()
	return enemies, missiles, d, NewCollisionSystem(enemies, missiles, 200, 200, d)
}

func TestPlayerMissileDestroysEnemy(t *testing.T) {
	enemies, missiles, d, s := newCollisionWorld()
	destroyed := listen(d, event.EnemyDestroyed)

	eh := enemies.Add(entity.NewEnemy(enemyProto(), 100, 100))
	mh := missiles.Add(entity.NewMissile(boltProto(), 100, 105, entity.TeamPlayer))
	other := missiles.Add(entity.NewMissile(boltProto(), 20, 20, entity.TeamPlayer))

	s.Update(nil, false)

	assert.True(t, enemies.Get(eh).Dead)
	assert.False(t, missiles.Alive(mh))
	assert.True(t, missiles.Alive(other))
	require.Len(t, destroyed.events, 1)
	data := destroyed.events[0].Data.(event.EnemyDestroyedData)
	assert.Equal(t, 2, data.Score)
	assert.False(t, data.Rammed)
}

func TestOneMissileKillsOneEnemy(t *testing.T) {
	enemies, missiles, d, s := newCollisionWorld()
	destroyed := listen(d, event.EnemyDestroyed)

	first := enemies.Add(entity.NewEnemy(enemyProto(), 100, 100))
	second := enemies.Add(entity.NewEnemy(enemyProto(), 104, 100))
	missiles.Add(entity.NewMissile(boltProto(), 102, 100, entity.TeamPlayer))

	s.Update(nil, false)

	assert.Len(t, destroyed.events, 1)
	assert.True(t, enemies.Get(first).Dead, "первый по порядку слотов")
	assert.False(t, enemies.Get(second).Dead)
}

func TestTransparentPaddingDoesNotCollide(t *testing.T) {
	enemies, missiles, _, s := newCollisionWorld()

	// Враг 20×20, непрозрачен только пиксель в левом верхнем углу
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	img.SetNRGBA(0, 0, color.NRGBA{A: 255})
	p := enemyProto()
	p.Sprite = sprite.New("dot", img)

	eh := enemies.Add(entity.NewEnemy(p, 100, 100))
	missiles.Add(entity.NewMissile(boltProto(), 108, 106, entity.TeamPlayer))

	s.Update(nil, false)
	assert.False(t, enemies.Get(eh).Dead)
}

func TestEnemyMissileHitsPlayerOnce(t *testing.T) {
	_, missiles, d, s := newCollisionWorld()
	hits := listen(d, event.PlayerHit)

	player := entity.New(entity.KindPlayer, entity.TeamPlayer, solid("ship", 20, 20), 100, 150)
	a := missiles.Add(entity.NewMissile(boltProto(), 98, 150, entity.TeamEnemy))
	b := missiles.Add(entity.NewMissile(boltProto(), 102, 150, entity.TeamEnemy))

	s.Update(&player, false)

	assert.False(t, missiles.Alive(a))
	assert.False(t, missiles.Alive(b))
	require.Len(t, hits.events, 1)
	assert.Equal(t, "missile", hits.events[0].Data.(event.PlayerHitData).Source)
}

func TestRammingWhileInvulnerable(t *testing.T) {
	enemies, _, d, s := newCollisionWorld()
	got := listen(d, event.PlayerHit, event.EnemyDestroyed)

	player := entity.New(entity.KindPlayer, entity.TeamPlayer, solid("ship", 20, 20), 100, 150)
	eh := enemies.Add(entity.NewEnemy(enemyProto(), 105, 145))

	s.Update(&player, true)

	assert.True(t, enemies.Get(eh).Dead)
	assert.Equal(t, 0, got.count(event.PlayerHit))
	require.Equal(t, 1, got.count(event.EnemyDestroyed))
	assert.True(t, got.events[0].Data.(event.EnemyDestroyedData).Rammed)
}

func TestEnemyMissilesIgnoreEnemies(t *testing.T) {
	enemies, missiles, _, s := newCollisionWorld()
	eh := enemies.Add(entity.NewEnemy(enemyProto(), 100, 100))
	mh := missiles.Add(entity.NewMissile(boltProto(), 100, 100, entity.TeamEnemy))

	s.Update(nil, false)
	assert.False(t, enemies.Get(eh).Dead)
	assert.True(t, missiles.Alive(mh))
}

func TestBroadPhaseDropsRemovedBodies(t *testing.T) {
	enemies, missiles, _, s := newCollisionWorld()
	eh := enemies.Add(entity.NewEnemy(enemyProto(), 50, 50))
	missiles.Add(entity.NewMissile(boltProto(), 150, 150, entity.TeamPlayer))
	s.Update(nil, false)
	assert.Equal(t, 2, s.Bodies())

	enemies.Remove(eh)
	s.Update(nil, false)
	assert.Equal(t, 1, s.Bodies())
}

func TestMissileInsideEnemyRect(t *testing.T) {
	enemies, missiles, d, s := newCollisionWorld()
	destroyed := listen(d, event.EnemyDestroyed)

	p := enemyProto()
	p.Sprite = solid("gunship", 56, 48)
	eh := enemies.Add(entity.NewEnemy(p, 100, 100))
	mh := missiles.Add(entity.NewMissile(boltProto(), 100, 100, entity.TeamPlayer))
	require.True(t, enemies.Get(eh).Rect.Intersect(missiles.Get(mh).Rect).Eq(missiles.Get(mh).Rect))

	s.Update(nil, false)

	assert.True(t, enemies.Get(eh).Dead)
	assert.False(t, missiles.Alive(mh))
	assert.Len(t, destroyed.events, 1)
}

func TestEnemyMissileInsideShipRect(t *testing.T) {
	_, missiles, d, s := newCollisionWorld()
	hits := listen(d, event.PlayerHit)

	player := entity.New(entity.KindPlayer, entity.TeamPlayer, solid("ship", 48, 48), 100, 150)
	mh := missiles.Add(entity.NewMissile(boltProto(), 100, 150, entity.TeamEnemy))
	require.True(t, player.Rect.Intersect(missiles.Get(mh).Rect).Eq(missiles.Get(mh).Rect))

	s.Update(&player, false)

	assert.False(t, missiles.Alive(mh))
	require.Len(t, hits.events, 1)
	assert.Equal(t, "missile", hits.events[0].Data.(event.PlayerHitData).Source)
}

func TestRamContainedEnemy(t *testing.T) {
	enemies, _, d, s := newCollisionWorld()
	got := listen(d, event.EnemyDestroyed, event.PlayerHit)

	player := entity.New(entity.KindPlayer, entity.TeamPlayer, solid("ship", 48, 48), 100, 150)
	eh := enemies.Add(entity.NewEnemy(enemyProto(), 100, 150))

	s.Update(&player, false)

	assert.True(t, enemies.Get(eh).Dead)
	assert.Equal(t, 1, got.count(event.EnemyDestroyed))
	assert.Equal(t, 1, got.count(event.PlayerHit))
}

package system

import (
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/sprite"
	"image"
	"image/color"
)

// constRandom всегда выдаёт одно и то же
type constRandom struct {
	n int
	f float64
}

func (r constRandom) Intn(n int) int   { return r.n % n }
func (r constRandom) Float64() float64 { return r.f }

// eventLog записывает события диспетчера
type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func listen(d *event.Dispatcher, types ...event.EventType) *eventLog {
	l := &eventLog{}
	for _, t := range types {
		d.Subscribe(t, l)
	}
	return l
}

func solid(id string, w, h int) *sprite.Sprite {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	return sprite.New(id, img)
}

func enemyProto() *entity.EnemyPrototype {
	return &entity.EnemyPrototype{Name: "scout", Sprite: solid("scout", 20, 20), Speed: 50, Weight: 1, Score: 2}
}

func boltProto() *entity.MissilePrototype {
	return &entity.MissilePrototype{Name: "bolt", Sprite: solid("bolt", 4, 10), Speed: 300}
}

func spawnerSettings() config.SpawnerSettings {
	return config.Default().Spawner
}

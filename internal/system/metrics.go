// internal/system/metrics.go
package system

import (
	"errors"
	"fmt"
	"go-space-shooter/internal/event"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics — Prometheus-метрики игры. Заполняются из событий и из игрового цикла,
// читаются отладочным HTTP-сервером.
type Metrics struct {
	destroyed prometheus.Counter
	rammed    prometheus.Counter
	escaped   prometheus.Counter
	hits      prometheus.Counter
	fired     *prometheus.CounterVec
	games     prometheus.Counter
	level     prometheus.Gauge
	score     prometheus.Gauge
	frame     prometheus.Histogram
}

// NewMetrics создаёт метрики и регистрирует их в reg.
// Если такие метрики уже зарегистрированы (новая партия), используются существующие.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	var (
		m   Metrics
		err error
	)
	counter := func(name, help string) prometheus.Counter {
		c, e := register(reg, prometheus.NewCounter(prometheus.CounterOpts{Namespace: "shooter", Name: name, Help: help}))
		err = errors.Join(err, e)
		return c
	}
	gauge := func(name, help string) prometheus.Gauge {
		g, e := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "shooter", Name: name, Help: help}))
		err = errors.Join(err, e)
		return g
	}

	m.destroyed = counter("enemies_destroyed_total", "Враги, сбитые ракетами игрока.")
	m.rammed = counter("enemies_rammed_total", "Враги, протаранившие игрока.")
	m.escaped = counter("enemies_escaped_total", "Враги, ушедшие за нижний край.")
	m.hits = counter("player_hits_total", "Засчитанные попадания по игроку.")
	m.games = counter("games_over_total", "Завершённые партии.")
	m.level = gauge("difficulty_level", "Текущий уровень сложности.")
	m.score = gauge("last_score", "Счёт последней завершённой партии.")

	var e error
	m.fired, e = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shooter",
		Name:      "missiles_fired_total",
		Help:      "Выпущенные снаряды по сторонам.",
	}, []string{"team"}))
	err = errors.Join(err, e)
	m.frame, e = register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "shooter",
		Name:      "frame_delta_seconds",
		Help:      "Шаг симуляции (dt) после ограничения MaxDeltaTime.",
		Buckets:   []float64{0.005, 0.01, 0.0167, 0.025, 0.035, 0.05, 0.06},
	}))
	err = errors.Join(err, e)

	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}
	return &m, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// Subscribe подписывает метрики на игровые события диспетчера
func (m *Metrics) Subscribe(eventDispatcher *event.Dispatcher) {
	eventDispatcher.SubscribeAll(m,
		event.EnemyDestroyed, event.EnemyEscaped, event.PlayerHit,
		event.MissileFired, event.DifficultyIncreased, event.GameOver)
}

func (m *Metrics) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.EnemyDestroyedData:
		if data.Rammed {
			m.rammed.Inc()
		} else {
			m.destroyed.Inc()
		}
	case event.EnemyEscapedData:
		m.escaped.Inc()
	case event.PlayerHitData:
		m.hits.Inc()
	case event.MissileFiredData:
		m.fired.WithLabelValues(data.Team).Add(float64(data.Count))
	case event.DifficultyData:
		m.level.Set(float64(data.Level))
	case event.GameOverData:
		m.games.Inc()
		m.score.Set(float64(data.Score))
	}
}

// ObserveFrame записывает шаг кадра
func (m *Metrics) ObserveFrame(dt float64) {
	m.frame.Observe(dt)
}

// ResetLevel — новая партия начинается с первого уровня
func (m *Metrics) ResetLevel() {
	m.level.Set(1)
}

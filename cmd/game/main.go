// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"go-space-shooter/internal/app"
	"go-space-shooter/internal/assets"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/input"
	"go-space-shooter/internal/platform"
	"go-space-shooter/internal/sound"
	"go-space-shooter/internal/state"
	"go-space-shooter/internal/system"
	"go-space-shooter/internal/utils"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	screen         *platform.Screen
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.Done() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.screen.Begin(screen)
	a.stateMachine.Draw(a.screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// options — параметры командной строки
type options struct {
	configPath string
	assetsDir  string
	seed       int64
	debugAddr  string // pprof и /metrics; пусто — сервер не запускается
	mute       bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("game", flag.ContinueOnError)
	fs.StringVar(&o.configPath, "config", "", "YAML с настройками (по умолчанию $GAME_CONFIG)")
	fs.StringVar(&o.assetsDir, "assets", "", "каталог с images/, sounds/, fonts/; пусто — сгенерированные ресурсы")
	fs.Int64Var(&o.seed, "seed", 0, "зерно генератора; 0 — текущее время")
	fs.StringVar(&o.debugAddr, "debug-addr", "", "адрес pprof и /metrics, например localhost:6060; пусто — выключено")
	fs.BoolVar(&o.mute, "mute", false, "без звука")
	err := fs.Parse(args)
	return o, err
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	settings, err := config.Load(opts.configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	rng := utils.NewPRNGService(opts.seed)
	log.Printf("Seed: %d", rng.Seed())

	var loader assets.Loader = assets.NewPlaceholderLoader(rng.Seed(), config.ScreenWidth, config.ScreenHeight)
	if opts.assetsDir != "" {
		loader = assets.Fallback{Primary: assets.NewDirLoader(opts.assetsDir), Secondary: loader}
	}
	catalog, err := app.LoadCatalog(loader, settings)
	if err != nil {
		log.Fatalf("assets: %v", err)
	}

	face, err := platform.NewFace(catalog.Font, platform.FontSize)
	if err != nil {
		log.Fatalf("font: %v", err)
	}

	var player sound.Player = sound.Nop{}
	if !opts.mute {
		bank, err := platform.NewSoundBank(loader, settings.Sounds.Shoot, settings.Sounds.Explosion, settings.Sounds.Hit)
		if err != nil {
			log.Fatalf("sound: %v", err)
		}
		player = bank
	}

	metrics, err := system.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("metrics: %v", err)
	}
	if opts.debugAddr != "" {
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			log.Println(http.ListenAndServe(opts.debugAddr, nil))
		}()
	}

	sm := state.NewStateMachine(&state.Context{
		Input:    input.NewTracker(platform.Keyboard{}),
		Catalog:  catalog,
		Settings: settings,
		Sound:    player,
		Rng:      rng,
		Metrics:  metrics,
		Closing:  ebiten.IsWindowBeingClosed,
	})
	sm.Start()

	game := &AppGame{
		stateMachine:   sm,
		screen:         platform.NewScreen(face),
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Space Shooter")
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.TPS)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
	log.Println("Bye")
}

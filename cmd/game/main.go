// cmd/game/main.go
package main

import (
	"context"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"go-lone-tower/internal/app"
	"go-lone-tower/internal/config"
	"go-lone-tower/internal/feed"
	"go-lone-tower/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	maxDelta       float64
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > a.maxDelta {
		deltaTime = a.maxDelta
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if settings.PprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(settings.PprofAddr, nil))
		}()
	}

	db, err := app.LoadDefinitions(settings.DataDir)
	if err != nil {
		log.Fatal(err)
	}
	store, closer, err := app.OpenStore(context.Background(), settings)
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	opts := app.Options{Seed: settings.Seed, Defs: db, Store: store}
	if settings.FeedAddr != "" {
		hub := feed.NewHub("")
		defer hub.Close()
		mux := http.NewServeMux()
		mux.Handle("/feed", hub)
		srv := &http.Server{
			Addr:        settings.FeedAddr,
			Handler:     mux,
			ReadTimeout: 15 * time.Second,
			IdleTimeout: 60 * time.Second,
		}
		go func() {
			log.Println("feed listening on", settings.FeedAddr)
			log.Println(srv.ListenAndServe())
		}()
		opts.Feed = hub
	}

	g, err := app.NewGame(opts)
	if err != nil {
		log.Fatal(err)
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	if settings.StartFromGame {
		sm.SetState(state.NewGameState(sm, g))
	} else {
		sm.SetState(state.NewMenuState(sm, g))
	}
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		maxDelta:       settings.MaxDelta,
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Lone Tower")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}

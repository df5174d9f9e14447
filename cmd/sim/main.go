// cmd/sim/main.go — прогон симуляции без окна с фиксированным шагом.
package main

import (
	"context"
	"log"

	"go-lone-tower/internal/app"
	"go-lone-tower/internal/config"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatal(err)
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

	g, err := app.NewGame(app.Options{Seed: settings.Seed, Defs: db, Store: store})
	if err != nil {
		log.Fatal(err)
	}

	steps := int(settings.SimSeconds / settings.SimStep)
	for i := 0; i < steps && !g.Over(); i++ {
		g.Update(settings.SimStep, app.Input{})
	}

	hp, max := g.TowerHealth()
	log.Printf("Sim: run %s finished: %s at %.1fs, tower %d/%d, waves %d/%d, kills %d, shots %d, currency %d",
		g.RunID, g.Phase(), g.GameTime(), hp, max,
		g.Stats.WavesCleared, g.WaveSystem.TotalWaves(), g.Stats.Kills, g.Stats.ShotsFired, g.Progress.Currency())
}

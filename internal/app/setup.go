package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"go-lone-tower/internal/config"
	"go-lone-tower/internal/defs"
	"go-lone-tower/internal/progression"
)

// LoadDefinitions читает определения из каталога или встроенные, если каталог не задан.
func LoadDefinitions(dataDir string) (*defs.Database, error) {
	if dataDir == "" {
		return defs.LoadDefault()
	}
	db, err := defs.Load(os.DirFS(dataDir))
	if err != nil {
		return nil, fmt.Errorf("load definitions from %s: %w", dataDir, err)
	}
	return db, nil
}

// OpenStore открывает хранилище прогресса по настройкам: SQLite, если задан
// путь сохранения, иначе память. Возвращенный Closer нужно закрыть при выходе.
func OpenStore(ctx context.Context, s config.Settings) (progression.Store, io.Closer, error) {
	if s.SavePath == "" {
		return progression.NewMemoryStore(s.StartCurrency), nopCloser{}, nil
	}
	store, err := progression.OpenSQLite(ctx, s.SavePath, s.Profile, s.StartCurrency)
	if err != nil {
		return nil, nil, fmt.Errorf("open progression store: %w", err)
	}
	log.Printf("Game: profile %q (%s) loaded from %s", s.Profile, store.ProfileID(), s.SavePath)
	return store, store, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

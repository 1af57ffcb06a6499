package root

import (
	"context"
	"time"

	"github.com/Satvik374/success-habit-tracker/internal/clock"
	"github.com/Satvik374/success-habit-tracker/internal/config"
	"github.com/Satvik374/success-habit-tracker/internal/engine"
	"github.com/Satvik374/success-habit-tracker/internal/storage"
	"github.com/Satvik374/success-habit-tracker/internal/sync"
)

func loadConfig() (*config.Config, error) {
	path, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}
	return config.LoadOrDefault(path)
}

// openService wires config, local storage, the optional sync gateway
// and the engine together. The cleanup func flushes pending sync work
// and closes the database.
func openService(ctx context.Context) (*engine.Service, func(), error) {
	return openServiceWith(ctx, true)
}

// openLocalService skips the remote side of the gateway. Used by watch,
// which mirrors remote snapshots and must not push them back.
func openLocalService(ctx context.Context) (*engine.Service, func(), error) {
	return openServiceWith(ctx, false)
}

func openServiceWith(ctx context.Context, withRemote bool) (*engine.Service, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath, err = storage.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
	}

	db, err := storage.Open(ctx, dbPath)
	if err != nil {
		return nil, nil, err
	}
	repo := storage.NewStateRepo(db)

	state, err := repo.Load(ctx)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	if state == nil {
		state = engine.NewGameState(clock.DayKey(time.Now()))
	}

	var client *sync.Client
	if withRemote && cfg.Sync.Enabled {
		client = sync.NewClient(cfg.Sync.Server, cfg.Sync.User)
	}
	gw := sync.NewGateway(repo, client, cfg.Sync.Debounce)

	svc := engine.NewService(state, clock.System{}, newPrintSink(), gw.Save)
	cleanup := func() {
		gw.Close()
		_ = db.Close()
	}
	return svc, cleanup, nil
}

package main

import (
	"context"
	"flag"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/airis-ai/airis-billing/internal/api"
	"github.com/airis-ai/airis-billing/internal/config"
	"github.com/airis-ai/airis-billing/internal/db"
	"github.com/airis-ai/airis-billing/internal/store"
)

type cliConfig struct {
	configPath string
}

func parseGlobalFlags(args []string) (cliConfig, []string, error) {
	var cfg cliConfig
	fs := flag.NewFlagSet("airisbill", flag.ContinueOnError)
	fs.StringVar(&cfg.configPath, "config", "", "config file path")
	if err := fs.Parse(args); err != nil {
		return cfg, nil, err
	}
	return cfg, fs.Args(), nil
}

type cliState struct {
	cfg    *config.Config
	client *api.Client

	conn     *gorm.DB
	snapshot *store.Store
}

func newCLIState(cfg cliConfig) (*cliState, error) {
	loaded, errLoad := config.Load(config.ResolveConfigPath(cfg.configPath))
	if errLoad != nil {
		return nil, errLoad
	}
	config.SetupLogging(loaded.Log)
	log.Debugf("loaded config: %s", loaded.Describe())

	return &cliState{
		cfg:    loaded,
		client: api.NewClient(loaded.API.BaseURL, loaded.API.Token, loaded.API.Timeout()),
	}, nil
}

func (s *cliState) Close() {
	if s.conn != nil {
		if sqlDB, errDB := s.conn.DB(); errDB == nil {
			_ = sqlDB.Close()
		}
	}
}

func (s *cliState) withContext() (context.Context, context.CancelFunc) {
	timeout := s.cfg.API.Timeout()
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}

// openSnapshot lazily opens and migrates the local snapshot database.
func (s *cliState) openSnapshot() (*store.Store, error) {
	if s.snapshot != nil {
		return s.snapshot, nil
	}
	conn, errOpen := db.Open(s.cfg.Database.DSN)
	if errOpen != nil {
		return nil, errOpen
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		return nil, errMigrate
	}
	s.conn = conn
	s.snapshot = store.NewStore(conn)
	return s.snapshot, nil
}

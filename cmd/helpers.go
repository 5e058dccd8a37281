package cmd

import (
	"punch/config"
	"punch/session"
	"punch/storage"
)

func openStore() (*config.Config, *storage.LedgerStore, error) {
	cfg, err := config.LoadAndValidate()
	if err != nil {
		return nil, nil, err
	}
	store, err := storage.Open(cfg.Journal.Path)
	if err != nil {
		return nil, nil, err
	}
	return cfg, store, nil
}

func newEngine() (*config.Config, *session.Engine, error) {
	cfg, store, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	return cfg, session.New(store), nil
}

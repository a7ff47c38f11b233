//go:build wireinject
// +build wireinject

package main

import (
	"speaker/config"
	"speaker/pkg/store"

	"github.com/google/wire"
)

type App struct {
	db     *store.MySQL
	config *config.Config
}

func InitializeApp() (*App, error) {
	wire.Build(
		wire.Struct(new(App), "*"),
		wire.NewSet(
			store.NewMySQL,
			config.NewConfig,
		),
	)
	return &App{}, nil
}

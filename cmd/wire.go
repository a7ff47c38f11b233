//go:build wireinject
// +build wireinject

package main

import (
	"speaker/config"
	V1 "speaker/hander/v1"
	"speaker/pkg/log"
	"speaker/serve"

	"github.com/google/wire"
)

type App struct {
	Service *serve.HttpServer
	config  *config.Config
	logger  *log.Logger
	v1      *V1.Handers
}

func InitializeApp() (*App, error) {
	wire.Build(
		wire.Struct(new(App), "*"),
		wire.NewSet(
			serve.NewHttpServer,
			config.NewConfig,
			log.ProviderSet,
			V1.ProviderSet,
		),
	)
	return &App{}, nil
}

package main

import (
	stdlog "log"

	"speaker/pkg/log"

	"github.com/joho/godotenv"
)

// @title Speaker API
// @version 1.0
// @description Turns published content into speech audio.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		stdlog.Println("no .env file, using config and environment")
	}
	app, err := InitializeApp()
	if err != nil {
		stdlog.Fatal(err)
	}
	app.logger.Info("starting server", log.String("serve", app.config.ServeName), log.String("port", app.config.Port))
	if err := app.Service.Echo.Start(app.config.Port); err != nil {
		app.logger.Error("server stopped", log.Error(err))
		return
	}
}

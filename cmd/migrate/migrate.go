package main

import "speaker/domain"

func main() {
	app, err := InitializeApp()
	if err != nil {
		panic(err)
	}
	if err := app.db.DB.AutoMigrate(domain.SpeechTemplate{}); err != nil {
		panic(err)
	}
}

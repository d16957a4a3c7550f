package main

import (
	"log"

	"authorshaven/config"
	"authorshaven/router"
)

func main() {
	config.InitConfig()

	r := router.SetupRouter()

	port := config.AppConfig.App.Port
	if port == "" {
		port = ":8080"
	}

	log.Printf("%s listening on %s", config.AppConfig.App.Name, port)
	if err := r.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

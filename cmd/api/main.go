package main

import (
	"context"
	"log"

	"estate-service/cmd/api/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := a.Run(context.Background()); err != nil {
		log.Fatalf("application exited with error: %v", err)
	}
}

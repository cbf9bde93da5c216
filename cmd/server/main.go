package main

import (
	"log"

	"hurghada-dream/go_backend/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatalf("server: %v", err)
	}
}

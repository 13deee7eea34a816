package main

import (
	"log"

	"github.com/avc-dev/shorturls/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"github.com/joho/godotenv"

	"apnajourney_backend/internal/app"
)

func main() {
	// Optional in production; the container passes real env vars.
	_ = godotenv.Load()

	app.Run()
}

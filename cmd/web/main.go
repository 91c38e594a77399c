package main

import "visionvault_backend/internal/app"

func main() {
	app.Run()
}

package main

import (
	"embed"
	"log"

	"github.com/wailsapp/wails/v2"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	prepareEnvironment()

	// Create an instance of the app structure
	app := NewApp()

	if err := wails.Run(createAppOptions(app, assets)); err != nil {
		log.Fatalf("Failed to start DocBridge application: %v", err)
	}
}

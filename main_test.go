//go:build !integration

package main

import (
	"testing"
)

// Test that main package compiles without requiring a running webview
func TestMainPackage(t *testing.T) {
	app := NewApp()
	if app == nil {
		t.Fatal("Failed to create app instance")
	}
	if app.bridge == nil || app.controller == nil {
		t.Fatal("NewApp() did not wire the bridge to a controller")
	}
	if app.bridge.controller != app.controller {
		t.Fatal("bridge is not bound to the app controller")
	}
}

func TestCreateAppOptionsBindsOnlyBridge(t *testing.T) {
	app := NewApp()

	opts := createAppOptions(app, assets)
	if len(opts.Bind) != 1 {
		t.Fatalf("expected exactly one bound value, got %d", len(opts.Bind))
	}
	if opts.Bind[0] != app.bridge {
		t.Fatal("bound value is not the bridge")
	}
}

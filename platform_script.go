package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"

	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
)

// PlatformScriptPath is loaded by index.html before bridge.js
const PlatformScriptPath = "/platform.js"

// platformScript returns a script that publishes the platform identifier
// synchronously, before any UI script runs.
func platformScript(goos string) []byte {
	name, _ := json.Marshal(platformName(goos))
	return []byte(fmt.Sprintf("window.__docbridgePlatform = %s;\n", name))
}

// platformScriptMiddleware serves PlatformScriptPath and passes every other
// request through to the embedded assets.
func platformScriptMiddleware(goos string) assetserver.Middleware {
	script := platformScript(goos)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != PlatformScriptPath {
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
			w.Header().Set("Cache-Control", "no-store")
			w.Write(script)
		})
	}
}

// hostPlatformScriptMiddleware serves the script for the running OS
func hostPlatformScriptMiddleware() assetserver.Middleware {
	return platformScriptMiddleware(runtime.GOOS)
}

//go:build !linux

package main

// prepareEnvironment is a no-op outside Linux
func prepareEnvironment() {}

//go:build !cgo

package main

// main is provided here for non-cgo builds, where bridge.go (which requires
// cgo) is excluded. The c-shared library is only meaningful with cgo enabled.
func main() {}

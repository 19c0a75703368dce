// Package modules contains all self-contained application features.
//
// Each subdirectory is a module that should implement the `module.Module` interface.
// Modules are listed in `internal/app/modules.go` and are booted by the
// server at startup, each under its own URL prefix.
package modules

// Package ui provides the GTK4 presentation layer for twich.
package ui

import (
	"context"

	"github.com/bnema/twich/internal/filtering"
	"github.com/bnema/twich/internal/infrastructure/config"
)

// Dependencies holds all injected dependencies for the UI layer.
// This struct is created once at startup and passed to the App.
type Dependencies struct {
	Ctx           context.Context
	Config        *config.Config
	ConfigManager *config.Manager
	Profile       config.ProfileDirs

	// Gatekeeper and Sanitizer are required when FilteringEnabled is set.
	FilteringEnabled bool
	Gatekeeper       *filtering.Gatekeeper
	Sanitizer        *filtering.Sanitizer

	// InitialURL replaces the configured home page for the first load.
	InitialURL string
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	if d.Ctx == nil {
		return ErrMissingDependency("Ctx")
	}
	if d.Config == nil {
		return ErrMissingDependency("Config")
	}
	if d.FilteringEnabled {
		if d.Gatekeeper == nil {
			return ErrMissingDependency("Gatekeeper")
		}
		if d.Sanitizer == nil {
			return ErrMissingDependency("Sanitizer")
		}
	}
	return nil
}

// StartURL is the first page to load.
func (d *Dependencies) StartURL() string {
	if d.InitialURL != "" {
		return d.InitialURL
	}
	return d.Config.HomeURL
}

// DependencyError indicates a missing required dependency.
type DependencyError struct {
	Name string
}

func (e DependencyError) Error() string {
	return "missing required dependency: " + e.Name
}

// ErrMissingDependency creates a new DependencyError.
func ErrMissingDependency(name string) error {
	return DependencyError{Name: name}
}

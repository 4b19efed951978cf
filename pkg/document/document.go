// Package document provides the public factory for DocumentStore backends
// while keeping implementation details internal.
package document

import (
	"github.com/a-rout/price-calculator-app/internal/document"
	"github.com/a-rout/price-calculator-app/pkg/types"
)

// Open validates cfg and returns the configured DocumentStore.
//
// Backends holding OS resources implement io.Closer; callers that care about
// teardown should type-assert and defer Close.
//
// Example:
//
//	store, err := document.Open(types.Config{
//	    Backend: types.BackendFile,
//	    DataDir: ".perkg-db",
//	})
func Open(cfg types.Config) (types.DocumentStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Backend {
	case types.BackendMemory:
		return document.NewMemory(), nil
	case types.BackendFile:
		return document.NewFile(cfg.DataDir)
	case types.BackendSQLite:
		return document.NewSQLite(cfg.DataDir)
	default:
		// Unreachable: Validate rejects unknown backends.
		return nil, types.ErrBackendUnknown
	}
}

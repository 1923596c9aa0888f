package store

import (
	"context"
	"log/slog"
	"strings"
)

// Directory lists the chain's stores. Implemented by the backend client.
type Directory interface {
	ListStores(ctx context.Context) ([]Context, error)
}

// Resolver maps a dialed number to a store context.
//
// Resolution is best-effort: backend failures and unknown numbers both fall
// back to DefaultContext so the call is still answered.
type Resolver struct {
	dir Directory
	log *slog.Logger
}

func NewResolver(dir Directory, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{dir: dir, log: log}
}

// ResolveByDID finds the store owning the dialed number.
func (r *Resolver) ResolveByDID(ctx context.Context, dialed string) Context {
	dialed = strings.TrimSpace(dialed)
	if dialed == "" || r.dir == nil {
		return DefaultContext()
	}

	stores, err := r.dir.ListStores(ctx)
	if err != nil {
		r.log.Warn("store directory unavailable, using default store", "err", err)
		return DefaultContext()
	}
	for _, s := range stores {
		if s.DID == dialed {
			return s
		}
	}
	r.log.Warn("no store for dialed number, using default store", "dialed", dialed)
	return DefaultContext()
}

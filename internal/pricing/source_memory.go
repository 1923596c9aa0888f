package pricing

import "context"

// MemorySource is an in-memory catalog keyed by store id, useful for tests
// and early development.
type MemorySource struct {
	Lists map[string][]CatalogEntry
	Err   error
}

func (s *MemorySource) GetPriceList(ctx context.Context, storeID string) ([]CatalogEntry, error) {
	_ = ctx
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Lists[storeID], nil
}

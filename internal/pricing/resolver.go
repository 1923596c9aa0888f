package pricing

import (
	"context"
	"log/slog"
	"strings"
)

// Quote is a resolved repair price. Quotes are produced fresh per call and
// never cached across turns.
type Quote struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`

	// RepairType and Model echo the catalog entry that matched, for briefing
	// and logging purposes.
	RepairType string `json:"repair_type,omitempty"`
	Model      string `json:"model,omitempty"`
}

// CatalogEntry is one row of a store's price list as the backend exposes it.
type CatalogEntry struct {
	DeviceModelName string  `json:"device_model_name"`
	RepairTypeName  string  `json:"repair_type_name"`
	Price           float64 `json:"price,string"`
}

// CatalogSource fetches the price list for one store.
// Implemented by the backend client; a memory source exists for tests.
type CatalogSource interface {
	GetPriceList(ctx context.Context, storeID string) ([]CatalogEntry, error)
}

// issueSynonyms bridges the gap between what the caller says and how the
// backend names repair types. Direct issue match is tried first; these are
// the fallback.
var issueSynonyms = map[string][]string{
	"screen":        {"glass_lcd", "glass", "lcd", "screen repair", "screen replacement"},
	"battery":       {"battery", "battery replacement"},
	"charging":      {"dock", "charging port"},
	"charging port": {"dock", "charging port"},
	"port":          {"dock", "charging port"},
	"hdmi":          {"hdmi", "hdmi port"},
	"hdmi port":     {"hdmi", "hdmi port"},
}

// Resolver looks up repair prices in a store-scoped catalog.
//
// Resolution never fails loudly: an unreachable catalog, an empty store, or
// no matching entry all resolve to (Quote{}, false). Failures are logged and
// swallowed here so the decision engine sees only found / not found.
type Resolver struct {
	catalog CatalogSource
	log     *slog.Logger
}

func NewResolver(catalog CatalogSource, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{catalog: catalog, log: log}
}

// Resolve finds a price for (model, issue) in the store's catalog.
//
// Model matching is case-insensitive substring containment in either
// direction ("iphone 13" matches "Apple iPhone 13" and vice versa). The
// issue is matched against the entry's repair type: the spoken issue first,
// then its synonyms.
func (r *Resolver) Resolve(ctx context.Context, storeID, category, model, issue string) (Quote, bool) {
	if r.catalog == nil || storeID == "" || model == "" || issue == "" {
		return Quote{}, false
	}

	entries, err := r.catalog.GetPriceList(ctx, storeID)
	if err != nil {
		r.log.Warn("price catalog unavailable", "store_id", storeID, "err", err)
		return Quote{}, false
	}
	if len(entries) == 0 {
		return Quote{}, false
	}

	modelLower := strings.ToLower(model)
	candidates := repairCandidates(issue)

	for _, e := range entries {
		entryModel := strings.ToLower(e.DeviceModelName)
		if entryModel == "" {
			continue
		}
		if !strings.Contains(entryModel, modelLower) && !strings.Contains(modelLower, entryModel) {
			continue
		}
		entryRepair := strings.ToLower(e.RepairTypeName)
		for _, c := range candidates {
			if strings.Contains(entryRepair, c) {
				return Quote{
					Amount:     e.Price,
					Currency:   "USD",
					RepairType: e.RepairTypeName,
					Model:      e.DeviceModelName,
				}, true
			}
		}
	}

	_ = category // category narrows future catalogs; current price lists are flat per store
	return Quote{}, false
}

// repairCandidates returns the lowercase repair-type terms to try for a
// spoken issue: the spoken issue itself first, then its synonyms.
func repairCandidates(issue string) []string {
	lower := strings.ToLower(issue)
	out := []string{lower}
	if syn, ok := issueSynonyms[lower]; ok {
		out = append(out, syn...)
	}
	return out
}

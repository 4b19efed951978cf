// Shared helpers for perkg CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/a-rout/price-calculator-app/pkg/document"
	"github.com/a-rout/price-calculator-app/pkg/store"
	"github.com/a-rout/price-calculator-app/pkg/types"
)

// appStores bundles the opened document backend and the collections over it.
type appStores struct {
	docs    types.DocumentStore
	items   *store.ItemStore
	history *store.HistoryStore
	recent  *store.RecencyTracker
}

// openStores resolves the data directory, opens the configured backend, and
// wires the collection stores. The caller must defer Close.
func openStores() (*appStores, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	backend := configBackend
	if backend == "" {
		backend = defaultBackend
	}

	docs, err := document.Open(types.Config{Backend: backend, DataDir: dataDir})
	if err != nil {
		return nil, fmt.Errorf("open document store: %w", err)
	}

	log := slog.Default()
	items := store.NewItemStore(docs, log)
	return &appStores{
		docs:    docs,
		items:   items,
		history: store.NewHistoryStore(docs, log),
		recent:  store.NewRecencyTracker(docs, items, log),
	}, nil
}

// Close releases backend resources for backends that hold any.
func (a *appStores) Close() {
	if closer, ok := a.docs.(io.Closer); ok {
		closer.Close()
	}
}

// findItem resolves a user-supplied reference to a catalog item: an exact id
// match first, then a case-insensitive name match.
func findItem(items *store.ItemStore, ref string) (types.Item, error) {
	all, err := items.List()
	if err != nil {
		return types.Item{}, fmt.Errorf("list items: %w", err)
	}

	for _, item := range all {
		if item.ID == ref {
			return item, nil
		}
	}

	var matches []types.Item
	for _, item := range all {
		if strings.EqualFold(item.Name, ref) {
			matches = append(matches, item)
		}
	}
	switch len(matches) {
	case 0:
		return types.Item{}, fmt.Errorf("%w: %q", types.ErrNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return types.Item{}, fmt.Errorf("%q names %d items; use the id", ref, len(matches))
	}
}

// parseDecimalArg parses a non-negative decimal CLI argument.
func parseDecimalArg(arg, what string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(arg)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q", what, arg)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%s must not be negative", what)
	}
	return d, nil
}

// parseCategoryFlag validates a user-supplied category name.
func parseCategoryFlag(arg string) (types.Category, error) {
	category := types.Category(arg)
	if !category.Valid() {
		return "", fmt.Errorf("unknown category %q (valid: %s)", arg, categoryNames())
	}
	return category, nil
}

// categoryNames returns the recognized categories as a comma-separated list
// for error and help output.
func categoryNames() string {
	categories := types.Categories()
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}

// printItemTable prints items in a human-readable table format.
func printItemTable(items []types.Item) {
	if len(items) == 0 {
		fmt.Println("No items found.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tNAME\tPRICE/KG\tCATEGORY\tFAV\tLAST USED")
	fmt.Fprintln(w, "--\t----\t--------\t--------\t---\t---------")
	for _, item := range items {
		fav := ""
		if item.IsFavorite {
			fav = "*"
		}
		lastUsed := "never"
		if item.LastUsed != nil {
			lastUsed = item.LastUsed.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			shortID(item.ID),
			item.Name,
			item.PricePerKg.String(),
			item.Category,
			fav,
			lastUsed,
		)
	}
	w.Flush()

	output := sb.String()
	for _, line := range strings.Split(output, "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}

	fmt.Printf("Total: %d item(s)\n", len(items))
}

// shortID truncates a UUID to its first 8 characters for readability.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

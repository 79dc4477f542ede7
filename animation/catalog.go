package animation

import (
	"fmt"
	"sort"
)

var catalogs = map[string]func() *Catalog{
	"ornament": Ornament,
	"classic":  Classic,
}

// Lookup returns the built-in catalog with the given name.
func Lookup(name string) (*Catalog, error) {
	fn, ok := catalogs[name]
	if !ok {
		return nil, fmt.Errorf("unknown catalog %q (known: %v)", name, CatalogNames())
	}
	return fn(), nil
}

// CatalogNames returns the names of the built-in catalogs, sorted.
func CatalogNames() []string {
	names := make([]string, 0, len(catalogs))
	for name := range catalogs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Package catalog provides the static resource-availability table consumed
// by the resource service.
//
// The catalog answers one question: how many units of a resource type are
// on hand for a given date. The default table ships embedded in the binary;
// FromYAML builds a catalog from caller-supplied data, which is how a real
// supplier feed would be plugged in.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/forgo/fete/internal/model"
)

//go:embed availability.yaml
var defaultTable []byte

// Catalog holds per-date stock levels for each resource type
type Catalog struct {
	stock map[model.ResourceType]map[string]int
}

// FromYAML builds a catalog from a YAML document mapping resource types to
// date -> quantity tables.
func FromYAML(data []byte) (*Catalog, error) {
	stock := make(map[model.ResourceType]map[string]int)
	if err := yaml.Unmarshal(data, &stock); err != nil {
		return nil, fmt.Errorf("catalog: parsing availability table: %w", err)
	}
	return &Catalog{stock: stock}, nil
}

// Default returns the catalog backed by the embedded availability table
func Default() *Catalog {
	c, err := FromYAML(defaultTable)
	if err != nil {
		// embedded table must parse
		panic(err)
	}
	return c
}

// QuantityAvailable returns the stock on hand for a resource type on a
// date. The second return is false when the catalog has no entry for the
// type/date pair.
func (c *Catalog) QuantityAvailable(resourceType model.ResourceType, date string) (int, bool) {
	dates, ok := c.stock[resourceType]
	if !ok {
		return 0, false
	}
	quantity, ok := dates[date]
	if !ok {
		return 0, false
	}
	return quantity, true
}

// Types lists the resource types the catalog stocks
func (c *Catalog) Types() []model.ResourceType {
	types := make([]model.ResourceType, 0, len(c.stock))
	for t := range c.stock {
		types = append(types, t)
	}
	return types
}

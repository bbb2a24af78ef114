package catalog

import (
	"fmt"
	"sort"

	"github.com/de-tools/metric-atlas/pkg/models/domain"
	"github.com/de-tools/metric-atlas/pkg/services/formula"
)

// Catalog is the read-only metric knowledge base: canonical definitions plus
// a single-hop alias table. Construct once, inject everywhere; there is no
// mutation API.
type Catalog struct {
	defs    map[string]domain.MetricDefinition
	aliases map[string]string
	names   []string // canonical names, sorted
}

// New validates the definitions and aliases and builds a catalog.
// Validation is eager so a bad table fails at startup, not on first lookup:
//   - every formula must parse as pure arithmetic over its declared inputs
//     (plus abs/min/max),
//   - every alias must point at an existing canonical name,
//   - aliases may not shadow canonical names or chain onto other aliases.
func New(defs []domain.MetricDefinition, aliases map[string]string) (*Catalog, error) {
	c := &Catalog{
		defs:    make(map[string]domain.MetricDefinition, len(defs)),
		aliases: make(map[string]string, len(aliases)),
	}

	for _, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("metric with empty name")
		}
		if _, exists := c.defs[def.Name]; exists {
			return nil, fmt.Errorf("duplicate metric %q", def.Name)
		}
		if len(def.Inputs) == 0 {
			return nil, fmt.Errorf("metric %q declares no inputs", def.Name)
		}
		if err := formula.Check(def.Formula, def.Inputs); err != nil {
			return nil, fmt.Errorf("metric %q: %w", def.Name, err)
		}
		c.defs[def.Name] = def
		c.names = append(c.names, def.Name)
	}

	for alias, canonical := range aliases {
		if _, shadows := c.defs[alias]; shadows {
			return nil, fmt.Errorf("alias %q shadows a canonical metric name", alias)
		}
		if _, chained := aliases[canonical]; chained {
			return nil, fmt.Errorf("alias %q chains onto alias %q; aliases must map directly to canonical names", alias, canonical)
		}
		if _, exists := c.defs[canonical]; !exists {
			return nil, fmt.Errorf("alias %q points at unknown metric %q", alias, canonical)
		}
		c.aliases[alias] = canonical
	}

	sort.Strings(c.names)
	return c, nil
}

// Default builds the catalog from the built-in definition and alias tables.
func Default() (*Catalog, error) {
	return New(Definitions(), Aliases())
}

// Resolve maps an alias onto its canonical name. Non-aliases resolve to
// themselves, whether or not they exist in the catalog.
func (c *Catalog) Resolve(name string) string {
	if canonical, ok := c.aliases[name]; ok {
		return canonical
	}
	return name
}

// Lookup returns the definition for a metric name or alias.
func (c *Catalog) Lookup(name string) (domain.MetricDefinition, bool) {
	def, ok := c.defs[c.Resolve(name)]
	return def, ok
}

// Contains reports whether the name (after alias resolution) is a known metric.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.Lookup(name)
	return ok
}

// Names returns all canonical metric names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// Definitions returns all definitions sorted by canonical name.
func (c *Catalog) Definitions() []domain.MetricDefinition {
	defs := make([]domain.MetricDefinition, 0, len(c.names))
	for _, name := range c.names {
		defs = append(defs, c.defs[name])
	}
	return defs
}

// AliasesFor returns the aliases pointing at a canonical name, sorted.
func (c *Catalog) AliasesFor(canonical string) []string {
	var out []string
	for alias, target := range c.aliases {
		if target == canonical {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}

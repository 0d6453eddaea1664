package calendar

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrUnknownCalendar is returned by Lookup for an unregistered id.
var ErrUnknownCalendar = errors.New("unknown calendar")

// Catalog holds the built-in schemas by id.
type Catalog struct {
	schemas map[string]Schema
	order   []string
}

// NewCatalog builds every built-in schema. Building runs the reduction on
// each schema's code sequences, so a catalog should be created once and
// shared.
func NewCatalog(logger *slog.Logger) (*Catalog, error) {
	constructors := []func() (Schema, error){
		NewGregorianSchema,
		NewJulianSchema,
		NewCopticSchema,
		NewEgyptianSchema,
		NewTabularIslamicSchema,
	}

	c := &Catalog{schemas: make(map[string]Schema, len(constructors))}
	for _, build := range constructors {
		s, err := build()
		if err != nil {
			return nil, fmt.Errorf("build catalog: %w", err)
		}
		for _, nf := range s.Forms() {
			logger.Debug("derived schema form",
				"calendar", s.ID(),
				"form", nf.Name,
				"value", nf.Form.String(),
			)
		}
		c.schemas[s.ID()] = s
		c.order = append(c.order, s.ID())
	}

	logger.Info("calendar catalog ready", "count", len(c.order))
	return c, nil
}

// Lookup returns the schema registered under id.
func (c *Catalog) Lookup(id string) (Schema, error) {
	s, ok := c.schemas[id]
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrUnknownCalendar)
	}
	return s, nil
}

// All returns the schemas in registration order.
func (c *Catalog) All() []Schema {
	all := make([]Schema, 0, len(c.order))
	for _, id := range c.order {
		all = append(all, c.schemas[id])
	}
	return all
}

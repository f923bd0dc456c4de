package operation

import (
	"fmt"
	"strings"

	"github.com/simaogato/calctrail/internal/domain"
)

// Factory builds a fresh Operation instance.
type Factory func() Operation

// Catalog maps operation names to factories. Names are
// case-insensitive. The zero value is not usable; construct with
// NewCatalog or Default.
type Catalog struct {
	factories map[string]Factory
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{factories: make(map[string]Factory)}
}

// Default returns a catalog pre-registered with the standard operation
// set.
func Default() *Catalog {
	c := NewCatalog()
	c.Register("add", func() Operation { return Addition{} })
	c.Register("subtract", func() Operation { return Subtraction{} })
	c.Register("multiply", func() Operation { return Multiplication{} })
	c.Register("divide", func() Operation { return Division{} })
	c.Register("power", func() Operation { return Power{} })
	c.Register("root", func() Operation { return Root{} })
	c.Register("modulus", func() Operation { return Modulus{} })
	c.Register("int_divide", func() Operation { return IntegerDivision{} })
	c.Register("percent", func() Operation { return Percent{} })
	c.Register("abs_diff", func() Operation { return AbsoluteDifference{} })
	return c
}

// Register adds or overwrites an entry under the lower-cased name.
func (c *Catalog) Register(name string, factory Factory) {
	c.factories[strings.ToLower(name)] = factory
}

// Resolve returns a fresh instance of the operation registered under
// name, case-insensitively. Unknown names yield an error wrapping
// domain.ErrUnknownOperation.
func (c *Catalog) Resolve(name string) (Operation, error) {
	factory, ok := c.factories[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownOperation, name)
	}
	return factory(), nil
}

// Names returns the registered operation names in no particular order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.factories))
	for name := range c.factories {
		names = append(names, name)
	}
	return names
}

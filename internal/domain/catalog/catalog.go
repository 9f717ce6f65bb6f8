package catalog

// Catalog is the immutable, indexed set of supplement entries.
// ID is the primary identity; Name is kept as a secondary unique
// index because subscriptions and advisor replies join on the
// display name.
type Catalog struct {
	entries []Entry
	byID    map[string]*Entry
	byName  map[string]*Entry
}

// New builds a Catalog from entries, validating each entry and
// enforcing ID and Name uniqueness across the set.
func New(entries []Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		entries: make([]Entry, len(entries)),
		byID:    make(map[string]*Entry, len(entries)),
		byName:  make(map[string]*Entry, len(entries)),
	}
	copy(c.entries, entries)

	for i := range c.entries {
		e := &c.entries[i]
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.byID[e.ID]; exists {
			return nil, ErrDuplicateID
		}
		if _, exists := c.byName[e.Name]; exists {
			return nil, ErrDuplicateName
		}
		c.byID[e.ID] = e
		c.byName[e.Name] = e
	}

	return c, nil
}

// ByID looks up an entry by its stable identifier.
func (c *Catalog) ByID(id string) (*Entry, bool) {
	e, ok := c.byID[id]
	return e, ok
}

// ByName looks up an entry by its unique display name.
func (c *Catalog) ByName(name string) (*Entry, bool) {
	e, ok := c.byName[name]
	return e, ok
}

// Entries returns all entries in load order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

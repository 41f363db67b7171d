package content

import (
	_ "embed"
	"fmt"
	"sync"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// Catalog maps topic ids to topics. It is read-only after construction and
// keeps topics in the order they were given.
type Catalog struct {
	topics []Topic
	byID   map[string]int
}

// NewCatalog validates the topics and builds a catalog from them.
func NewCatalog(topics ...Topic) (*Catalog, error) {
	c := &Catalog{
		topics: make([]Topic, 0, len(topics)),
		byID:   make(map[string]int, len(topics)),
	}
	for _, t := range topics {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate topic id %q", t.ID)
		}
		c.byID[t.ID] = len(c.topics)
		c.topics = append(c.topics, t.Clone())
	}
	return c, nil
}

// Lookup returns a copy of the topic registered under id.
func (c *Catalog) Lookup(id string) (Topic, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Topic{}, false
	}
	return c.topics[i].Clone(), true
}

// Topics returns copies of all topics in catalog order.
func (c *Catalog) Topics() []Topic {
	out := make([]Topic, len(c.topics))
	for i, t := range c.topics {
		out[i] = t.Clone()
	}
	return out
}

// IDs returns the topic ids in catalog order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.topics))
	for i, t := range c.topics {
		ids[i] = t.ID
	}
	return ids
}

// Len returns the number of topics.
func (c *Catalog) Len() int {
	return len(c.topics)
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := Parse(defaultCatalogYAML, FormatYAML)
	if err != nil {
		panic(fmt.Sprintf("content: embedded catalog is invalid: %v", err))
	}
	return c
})

// Default returns the built-in catalog shipped with the binary.
func Default() *Catalog {
	return defaultCatalog()
}

package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sync"
)

//go:embed data/topics.json
var topicsJSON []byte

//go:embed data/topics.schema.json
var schemaJSON []byte

// Catalog is the immutable, ordered set of course topics.
type Catalog struct {
	version string
	topics  []Topic
	index   map[TopicID]int
}

type document struct {
	Version string  `json:"version"`
	Topics  []Topic `json:"topics"`
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the catalog embedded in the binary.
// It panics if the embedded document is invalid, which is a build defect.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(topicsJSON)
		if err != nil {
			panic(fmt.Sprintf("embedded catalog: %v", err))
		}
		defaultCat = c
	})
	return defaultCat
}

// DefaultDocument returns a copy of the embedded catalog document, a
// starting point for a custom catalog.
func DefaultDocument() []byte {
	return slices.Clone(topicsJSON)
}

// Load reads a catalog document from path. An empty path yields the embedded catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse validates and decodes a catalog document.
func Parse(data []byte) (*Catalog, error) {
	if err := validateDocument(data); err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if err := validateTopics(doc.Version, doc.Topics); err != nil {
		return nil, err
	}

	c := &Catalog{
		version: doc.Version,
		topics:  doc.Topics,
		index:   make(map[TopicID]int, len(doc.Topics)),
	}
	for i, t := range c.topics {
		c.index[t.ID] = i
	}
	return c, nil
}

// Version returns the catalog document version.
func (c *Catalog) Version() string {
	return c.version
}

// Len returns the number of topics.
func (c *Catalog) Len() int {
	return len(c.topics)
}

// Topics returns all topics in display order.
func (c *Catalog) Topics() []Topic {
	out := make([]Topic, len(c.topics))
	for i, t := range c.topics {
		out[i] = cloneTopic(t)
	}
	return out
}

// Topic returns the topic with the given id.
func (c *Catalog) Topic(id TopicID) (Topic, bool) {
	i, ok := c.index[id]
	if !ok {
		return Topic{}, false
	}
	return cloneTopic(c.topics[i]), true
}

// At returns the topic at the given ordinal position.
func (c *Catalog) At(ordinal int) Topic {
	return cloneTopic(c.topics[ordinal])
}

// Ordinal returns the zero-based display position of id, or -1 if absent.
func (c *Catalog) Ordinal(id TopicID) int {
	i, ok := c.index[id]
	if !ok {
		return -1
	}
	return i
}

// cloneTopic copies the question slice so callers cannot mutate the catalog.
// Questions themselves are shared; their option slices are never written.
func cloneTopic(t Topic) Topic {
	t.Questions = slices.Clone(t.Questions)
	return t
}

package converter

import (
	"sort"
	"sync"

	"github.com/docpages/doc2jpeg/internal/classify"
)

var (
	registry = make(map[classify.Category]Converter)
	mu       sync.RWMutex
)

// Register registers a converter in the global registry. The last converter
// registered for a category wins, which lets tests substitute fakes.
func Register(c Converter) {
	mu.Lock()
	defer mu.Unlock()
	registry[c.Category()] = c
}

// Get retrieves the converter for a category
func Get(cat classify.Category) (Converter, bool) {
	mu.RLock()
	defer mu.RUnlock()
	c, ok := registry[cat]
	return c, ok
}

// ListInfo returns information about all registered converters
func ListInfo() []ConverterInfo {
	mu.RLock()
	defer mu.RUnlock()
	infos := make([]ConverterInfo, 0, len(registry))
	for cat, c := range registry {
		infos = append(infos, ConverterInfo{
			Name:       c.Name(),
			Category:   string(cat),
			Extensions: classify.SupportedExtensions(cat),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Category < infos[j].Category })
	return infos
}

// Reset clears the registry. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[classify.Category]Converter)
}

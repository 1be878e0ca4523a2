package tablecheck

import (
	"sort"
	"strings"
	"sync"
)

// thread-safe in-memory registry: name -> Check (spec.md §8 "Testable
// properties" are meant to hold for every table this module extracts, so
// callers register them once at init time and run the whole set per table).
var (
	mu     sync.RWMutex
	byName = map[string]Check{}
)

// Register adds or replaces a check in the registry.
func Register(c Check) {
	mu.Lock()
	byName[normalizeName(c.Name)] = c
	mu.Unlock()
}

// ListSorted returns all registered checks ordered by Priority asc, then
// Name asc.
func ListSorted() []Check {
	mu.RLock()
	out := make([]Check, 0, len(byName))
	for _, c := range byName {
		out = append(out, c)
	}
	mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority < out[j].Priority
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

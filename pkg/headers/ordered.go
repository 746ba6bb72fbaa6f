package headers

import (
	"strings"
	"sync"

	"github.com/WhileEndless/go-headertools/pkg/percent"
)

// ValuePair preserves both the original and percent-decoded form of a value
type ValuePair struct {
	Raw     string `json:"raw"`     // Value exactly as it appeared in the input
	Decoded string `json:"decoded"` // Percent-decoded form; equals Raw when nothing decodes
}

// NewValuePair creates a ValuePair from a raw value, decoding it once
func NewValuePair(raw string) ValuePair {
	return ValuePair{
		Raw:     raw,
		Decoded: percent.Decode(raw),
	}
}

// Entry represents a single header name-value pair
type Entry struct {
	Name  string
	Value ValuePair
}

// OrderedValues preserves the order of HTTP headers and handles case-insensitive lookups.
// Names are stored lowercased; insertion order is kept for serialization.
type OrderedValues struct {
	mu     sync.RWMutex
	order  []string             // Preserves insertion order
	values map[string]ValuePair // Lowercase keys
}

// NewOrderedValues creates a new OrderedValues instance
func NewOrderedValues() *OrderedValues {
	return &OrderedValues{
		order:  make([]string, 0),
		values: make(map[string]ValuePair),
	}
}

// Set adds or updates a header from its raw value, preserving order.
// An existing header keeps its position; the value is replaced.
func (h *OrderedValues) Set(name, raw string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	lowerName := strings.ToLower(strings.TrimSpace(name))
	if lowerName == "" {
		return
	}

	if _, exists := h.values[lowerName]; !exists {
		h.order = append(h.order, lowerName)
	}

	h.values[lowerName] = NewValuePair(raw)
}

// Get retrieves a header value pair (case-insensitive)
func (h *OrderedValues) Get(name string) (ValuePair, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	v, ok := h.values[strings.ToLower(name)]
	return v, ok
}

// GetRaw retrieves the raw form of a header value, or "" if absent
func (h *OrderedValues) GetRaw(name string) string {
	v, _ := h.Get(name)
	return v.Raw
}

// GetDecoded retrieves the decoded form of a header value, or "" if absent
func (h *OrderedValues) GetDecoded(name string) string {
	v, _ := h.Get(name)
	return v.Decoded
}

// Has checks if a header exists (case-insensitive)
func (h *OrderedValues) Has(name string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	_, exists := h.values[strings.ToLower(name)]
	return exists
}

// Del removes a header
func (h *OrderedValues) Del(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	lowerName := strings.ToLower(name)

	if _, exists := h.values[lowerName]; exists {
		delete(h.values, lowerName)

		for i, headerName := range h.order {
			if headerName == lowerName {
				h.order = append(h.order[:i], h.order[i+1:]...)
				break
			}
		}
	}
}

// All returns all headers in their original order
func (h *OrderedValues) All() []Entry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	entries := make([]Entry, 0, len(h.order))
	for _, lowerName := range h.order {
		entries = append(entries, Entry{
			Name:  lowerName,
			Value: h.values[lowerName],
		})
	}
	return entries
}

// Len returns the number of headers
func (h *OrderedValues) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.order)
}

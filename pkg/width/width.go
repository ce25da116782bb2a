// ABOUTME: Terminal column width of grapheme clusters and escape-laden frame lines
// ABOUTME: Memoizes non-ASCII measurements in a bounded FIFO cache

package width

import (
	"iter"
	"sync"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const cacheSize = 512

// memo is a bounded cache evicting the oldest key once full.
type memo struct {
	mu     sync.Mutex
	values map[string]int
	ring   []string
	next   int
}

func newMemo(size int) *memo {
	return &memo{
		values: make(map[string]int, size),
		ring:   make([]string, size),
	}
}

func (m *memo) get(key string) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *memo) put(key string, value int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.values[key]; ok {
		return
	}
	if old := m.ring[m.next]; old != "" {
		delete(m.values, old)
	}
	m.ring[m.next] = key
	m.values[key] = value
	m.next = (m.next + 1) % len(m.ring)
}

var lineWidths = newMemo(cacheSize)

// Visible returns the number of terminal columns s occupies, ignoring
// ANSI escape sequences and measuring each grapheme cluster once.
func Visible(s string) int {
	if s == "" {
		return 0
	}
	if plainASCII(s) {
		return len(s)
	}
	if w, ok := lineWidths.get(s); ok {
		return w
	}
	w := 0
	for cluster := range Clusters(ansi.Strip(s)) {
		w += Grapheme(cluster)
	}
	lineWidths.put(s, w)
	return w
}

// Grapheme returns the column width of a single grapheme cluster: 0 for
// an empty string, otherwise the width of its base rune.
func Grapheme(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}

// Clusters yields the grapheme clusters of s in order.
func Clusters(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		state := -1
		for s != "" {
			var cluster string
			cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
			if !yield(cluster) {
				return
			}
		}
	}
}

// SingleCluster reports whether s is exactly one grapheme cluster.
func SingleCluster(s string) bool {
	if s == "" {
		return false
	}
	_, rest, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return rest == ""
}

func plainASCII(s string) bool {
	for i := range len(s) {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

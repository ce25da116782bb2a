// ABOUTME: sync.Pool of strings.Builder reused across frame serialization
// ABOUTME: Frames are rebuilt every tick, so builders are recycled instead of reallocated

package pool

import (
	"strings"
	"sync"
)

// maxRetained caps the capacity of builders returned to the pool so one
// oversized frame does not pin its memory forever.
const maxRetained = 1 << 20

var builders = sync.Pool{
	New: func() any { return new(strings.Builder) },
}

// Builder returns an empty strings.Builder from the pool.
func Builder() *strings.Builder {
	sb := builders.Get().(*strings.Builder)
	sb.Reset()
	return sb
}

// Release returns sb to the pool. The caller must not use sb afterwards.
func Release(sb *strings.Builder) {
	if sb == nil || sb.Cap() > maxRetained {
		return
	}
	sb.Reset()
	builders.Put(sb)
}

// Join concatenates parts with sep using a pooled builder.
func Join(parts []string, sep string) string {
	sb := Builder()
	defer Release(sb)
	for i, p := range parts {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(p)
	}
	return sb.String()
}

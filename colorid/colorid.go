// Package colorid interns puzzle color names into small comparable tokens.
//
// The matcher never cares about the textual spelling of a color, only
// whether two stickers were assigned the same one. Interning up front lets
// every downstream map key off a cheap comparable value instead of a raw
// string, the same trade the puzzle-geometry collaborator's own ArcIntern
// makes.
package colorid

import "sync"

// Color is an opaque, comparable token for one puzzle color. The zero value
// is not a valid Color; obtain one from an Interner.
type Color struct {
	id int
}

// Interner maps color names to stable Color tokens. The zero value is ready
// to use. An Interner is safe for concurrent use.
type Interner struct {
	mu     sync.Mutex
	byName map[string]Color
	names  []string
}

// Intern returns the Color token for name, creating one if this is the
// first time name has been seen.
func (n *Interner) Intern(name string) Color {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.byName == nil {
		n.byName = make(map[string]Color)
	}

	if c, ok := n.byName[name]; ok {
		return c
	}

	c := Color{id: len(n.names)}
	n.names = append(n.names, name)
	n.byName[name] = c

	return c
}

// Name returns the original string a Color was interned from.
func (n *Interner) Name(c Color) string {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.names[c.id]
}

// Len reports how many distinct colors have been interned.
func (n *Interner) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return len(n.names)
}

// Package group partitions ordered items into buckets keyed by a derived value.
package group

import (
	"cmp"
	"slices"
)

// Attributer is implemented by items whose fields can be read by name.
type Attributer interface {
	Attribute(name string) (any, bool)
}

// KeySelector derives the group key of an item. It is either an attribute
// name or a function; build one with ByAttribute, ByFunc or ByFuncOK.
type KeySelector[T any, K cmp.Ordered] struct {
	attr string
	fn   func(T) (K, bool)
}

// ByFunc selects keys with fn. Every item gets a key.
func ByFunc[T any, K cmp.Ordered](fn func(T) K) KeySelector[T, K] {
	return KeySelector[T, K]{fn: func(item T) (K, bool) { return fn(item), true }}
}

// ByFuncOK selects keys with fn. Items for which fn reports false are
// grouped together as missing.
func ByFuncOK[T any, K cmp.Ordered](fn func(T) (K, bool)) KeySelector[T, K] {
	return KeySelector[T, K]{fn: fn}
}

// ByAttribute selects keys by reading the named attribute of each item.
// Items without the attribute, or whose value is not a K, are grouped
// together as missing.
func ByAttribute[K cmp.Ordered, T Attributer](name string) KeySelector[T, K] {
	return KeySelector[T, K]{attr: name}
}

// resolve turns the selector into a plain key function.
func (s KeySelector[T, K]) resolve() func(T) (K, bool) {
	if s.fn != nil {
		return s.fn
	}
	name := s.attr
	return func(item T) (K, bool) {
		var zero K
		a, ok := any(item).(Attributer)
		if !ok {
			return zero, false
		}
		v, ok := a.Attribute(name)
		if !ok {
			return zero, false
		}
		k, ok := v.(K)
		return k, ok
	}
}

// Group is one bucket of a Grouped result.
type Group[K cmp.Ordered, T any] struct {
	Key     K
	Missing bool
	Items   []T
}

// Grouped maps keys to the items that share them.
type Grouped[K cmp.Ordered, T any] struct {
	keys    []K
	buckets map[K][]T
	missing []T
}

// GroupBy groups items by the key sel derives for each of them. Items keep
// their input order inside a group.
func GroupBy[T any, K cmp.Ordered](items []T, sel KeySelector[T, K]) *Grouped[K, T] {
	key := sel.resolve()
	g := &Grouped[K, T]{buckets: make(map[K][]T)}

	for _, item := range items {
		k, ok := key(item)
		if !ok {
			g.missing = append(g.missing, item)
			continue
		}
		if _, seen := g.buckets[k]; !seen {
			g.keys = append(g.keys, k)
		}
		g.buckets[k] = append(g.buckets[k], item)
	}

	slices.Sort(g.keys)
	return g
}

// Keys returns the keys in ascending order.
func (g *Grouped[K, T]) Keys() []K {
	return slices.Clone(g.keys)
}

// Get returns a copy of the items grouped under k.
func (g *Grouped[K, T]) Get(k K) []T {
	return slices.Clone(g.buckets[k])
}

// Missing returns a copy of the items that had no key.
func (g *Grouped[K, T]) Missing() []T {
	return slices.Clone(g.missing)
}

// Len returns the number of groups, counting the missing group if it has items.
func (g *Grouped[K, T]) Len() int {
	n := len(g.keys)
	if len(g.missing) > 0 {
		n++
	}
	return n
}

// Groups returns every group in key order. The missing group comes last.
func (g *Grouped[K, T]) Groups() []Group[K, T] {
	groups := make([]Group[K, T], 0, g.Len())
	for _, k := range g.keys {
		groups = append(groups, Group[K, T]{Key: k, Items: slices.Clone(g.buckets[k])})
	}
	if len(g.missing) > 0 {
		groups = append(groups, Group[K, T]{Missing: true, Items: slices.Clone(g.missing)})
	}
	return groups
}

// Flatten concatenates all groups in the order Groups returns them.
func (g *Grouped[K, T]) Flatten() []T {
	var out []T
	for _, grp := range g.Groups() {
		out = append(out, grp.Items...)
	}
	return out
}

// Package pager slices a freshly materialized ordered id list into fixed-size
// windows addressed by the id at the edge of the previously rendered window.
//
// The base list is recomputed on every request, so a cursor may no longer be
// present. In that case every function falls back to the first page and
// reports Reset, letting callers tell the client its window restarted.
package pager

// PageSize used by every "more" endpoint
const PageSize = 9

// Window one page of ids
type Window[T comparable] struct {
	IDs   []T
	Reset bool
}

// Next ids strictly after lastID. A zero lastID starts from the top.
func Next[T comparable](ids []T, lastID T, size int) Window[T] {
	var zero T
	if lastID == zero {
		return Window[T]{IDs: head(ids, size)}
	}
	p := indexOf(ids, lastID)
	if p < 0 {
		return Window[T]{IDs: head(ids, size), Reset: true}
	}
	return Window[T]{IDs: slice(ids, p+1, p+1+size)}
}

// Previous up to size ids immediately before firstID, nearest first so each
// element can be prepended above the current window in turn.
func Previous[T comparable](ids []T, firstID T, size int) Window[T] {
	p := indexOf(ids, firstID)
	if p < 0 {
		return Window[T]{IDs: head(ids, size), Reset: true}
	}
	start := p - size
	if start < 0 {
		start = 0
	}
	return Window[T]{IDs: reversed(ids[start:p])}
}

// From window starting at selectedID, used when a post is opened from a grid
func From[T comparable](ids []T, selectedID T, size int) Window[T] {
	p := indexOf(ids, selectedID)
	if p < 0 {
		return Window[T]{IDs: head(ids, size), Reset: true}
	}
	return Window[T]{IDs: slice(ids, p, p+size)}
}

func indexOf[T comparable](ids []T, id T) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func head[T comparable](ids []T, size int) []T {
	return slice(ids, 0, size)
}

// slice copies ids[from:to] clamped to the list bounds
func slice[T comparable](ids []T, from, to int) []T {
	if to <= from || from >= len(ids) {
		return []T{}
	}
	if to > len(ids) {
		to = len(ids)
	}
	out := make([]T, to-from)
	copy(out, ids[from:to])
	return out
}

func reversed[T comparable](ids []T) []T {
	out := make([]T, len(ids))
	for i, v := range ids {
		out[len(ids)-1-i] = v
	}
	return out
}

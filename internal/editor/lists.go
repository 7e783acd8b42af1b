// Package editor implements the section editors. Every operation computes a new
// value for its whole slice and hands it to the replacement callback; inputs are
// never mutated in place.
package editor

import (
	"fmt"
	"slices"

	"github.com/jonathan/resume-builder/internal/ids"
)

// maxIDAttempts bounds how many times a colliding id is regenerated before it is disambiguated
const maxIDAttempts = 16

// Item is an element of a list-backed section
type Item interface {
	ItemID() string
}

// AddItem returns items with item appended at the end
func AddItem[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

// UpdateItem returns items with the element whose id matches replaced by fn(element).
// Unknown ids return an equal copy.
func UpdateItem[T Item](items []T, id string, fn func(T) T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		if item.ItemID() == id {
			out[i] = fn(item)
			continue
		}
		out[i] = item
	}
	return out
}

// RemoveItem returns items without the element whose id matches.
// Unknown ids return an equal copy, so removal is idempotent.
func RemoveItem[T Item](items []T, id string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.ItemID() != id {
			out = append(out, item)
		}
	}
	return out
}

// FindItem returns the element with the given id
func FindItem[T Item](items []T, id string) (T, bool) {
	for _, item := range items {
		if item.ItemID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// AppendString returns list with value appended
func AppendString(list []string, value string) []string {
	return AddItem(list, value)
}

// SetString returns a copy of list with index set to value. Out-of-range indexes return an equal copy.
func SetString(list []string, index int, value string) []string {
	out := slices.Clone(list)
	if out == nil {
		out = []string{}
	}
	if index >= 0 && index < len(out) {
		out[index] = value
	}
	return out
}

// RemoveString returns a copy of list without index. Out-of-range indexes return an equal copy.
func RemoveString(list []string, index int) []string {
	out := make([]string, 0, len(list))
	for i, v := range list {
		if i != index {
			out = append(out, v)
		}
	}
	return out
}

// freshID draws ids from g until one is not used by items
func freshID[T Item](g ids.Generator, items []T) string {
	taken := make(map[string]struct{}, len(items))
	for _, item := range items {
		taken[item.ItemID()] = struct{}{}
	}

	id := g.Next()
	for attempt := 1; ; attempt++ {
		if _, ok := taken[id]; !ok {
			return id
		}
		if attempt < maxIDAttempts {
			id = g.Next()
			continue
		}
		id = fmt.Sprintf("%s-%d", id, attempt)
	}
}

// listEditor carries the operations shared by every list-backed section
type listEditor[T Item] struct {
	current func() []T
	emit    func([]T)
	ids     ids.Generator
}

// Items returns the current list
func (e *listEditor[T]) Items() []T {
	return e.current()
}

// Item returns the current item with the given id
func (e *listEditor[T]) Item(id string) (T, bool) {
	return FindItem(e.current(), id)
}

// Remove deletes the item with the given id. Unknown ids are a no-op.
func (e *listEditor[T]) Remove(id string) {
	e.emit(RemoveItem(e.current(), id))
}

func (e *listEditor[T]) add(newItem func(id string) T) string {
	items := e.current()
	id := freshID(e.ids, items)
	e.emit(AddItem(items, newItem(id)))
	return id
}

func (e *listEditor[T]) update(id string, fn func(T) T) {
	e.emit(UpdateItem(e.current(), id, fn))
}

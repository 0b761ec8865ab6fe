package gltf

import (
	"fmt"

	"github.com/c360/gltfkit/errors"
)

// Identified is implemented by document elements that carry a string
// identifier resolvable to a collection position.
type Identified interface {
	Identifier() string
}

// IndexedContainer stores document elements in insertion order and resolves
// their identifiers to positions. Reference fields in the JSON form are
// numeric positions; in-memory references use the element identifiers.
type IndexedContainer[T Identified] struct {
	elements []T
	index    map[string]int
}

// Append adds an element to the end of the container.
// Returns an error if the identifier is empty or already present.
func (c *IndexedContainer[T]) Append(element T) error {
	id := element.Identifier()
	if id == "" {
		return errors.WrapReference(
			errors.ErrBrokenReference, "IndexedContainer", "Append", "identifier validation")
	}
	if _, exists := c.index[id]; exists {
		return errors.WrapReference(
			fmt.Errorf("%w: %q", errors.ErrDuplicateIdentifier, id),
			"IndexedContainer", "Append", "duplicate identifier check")
	}

	if c.index == nil {
		c.index = make(map[string]int)
	}
	c.index[id] = len(c.elements)
	c.elements = append(c.elements, element)
	return nil
}

// Index returns the position of the element with the given identifier.
func (c *IndexedContainer[T]) Index(id string) (int, bool) {
	pos, ok := c.index[id]
	return pos, ok
}

// Get returns the element with the given identifier.
func (c *IndexedContainer[T]) Get(id string) (T, bool) {
	if pos, ok := c.index[id]; ok {
		return c.elements[pos], true
	}
	var zero T
	return zero, false
}

// At returns the element at the given position.
func (c *IndexedContainer[T]) At(pos int) (T, bool) {
	if pos < 0 || pos >= len(c.elements) {
		var zero T
		return zero, false
	}
	return c.elements[pos], true
}

// Len returns the number of elements.
func (c *IndexedContainer[T]) Len() int {
	return len(c.elements)
}

// Elements returns the elements in insertion order. The returned slice is a
// copy; mutating it does not affect the container.
func (c *IndexedContainer[T]) Elements() []T {
	if len(c.elements) == 0 {
		return nil
	}
	result := make([]T, len(c.elements))
	copy(result, c.elements)
	return result
}

package forms

// FieldArray is a bounded list of repeatable form items, for example the
// bank account splits of a cash entry.
//
// The item count never leaves the [MinItems, MaxItems] range: Add is a
// no-op once MaxItems is reached and Remove is a no-op at MinItems.
// MaxItems of zero means unbounded.
type FieldArray[T any] struct {
	Items    []T
	MinItems int
	MaxItems int
	Disabled bool

	// NewItem produces the value appended by Add. When nil, the zero
	// value is used.
	NewItem func() T

	// OnAdd is called after an item was appended, with the length the
	// array had before the append.
	OnAdd func(index int)

	// OnRemove is called after an item was removed, with the index it
	// had.
	OnRemove func(index int)
}

// NewFieldArray returns a field array seeded with MinItems items. A
// minimum below one is raised to one.
func NewFieldArray[T any](minItems, maxItems int, newItem func() T) *FieldArray[T] {
	if minItems < 1 {
		minItems = 1
	}

	array := &FieldArray[T]{
		MinItems: minItems,
		MaxItems: maxItems,
		NewItem:  newItem,
	}

	for i := 0; i < minItems; i++ {
		array.Items = append(array.Items, array.item())
	}

	return array
}

func (a *FieldArray[T]) item() T {
	if a.NewItem != nil {
		return a.NewItem()
	}

	var zero T
	return zero
}

// Len returns the current number of items.
func (a *FieldArray[T]) Len() int {
	return len(a.Items)
}

// Add appends a new item. It does nothing when the array is disabled or
// already at MaxItems.
func (a *FieldArray[T]) Add() {
	if a.Disabled {
		return
	}

	if a.MaxItems > 0 && len(a.Items) >= a.MaxItems {
		return
	}

	index := len(a.Items)
	a.Items = append(a.Items, a.item())

	if a.OnAdd != nil {
		a.OnAdd(index)
	}
}

// Remove deletes the item at index. It does nothing when the array is
// disabled, already at MinItems, or the index is out of range.
func (a *FieldArray[T]) Remove(index int) {
	if a.Disabled {
		return
	}

	if len(a.Items) <= a.MinItems {
		return
	}

	if index < 0 || index >= len(a.Items) {
		return
	}

	a.Items = append(a.Items[:index], a.Items[index+1:]...)

	if a.OnRemove != nil {
		a.OnRemove(index)
	}
}

// Reset discards all items and reseeds the array with MinItems items.
func (a *FieldArray[T]) Reset() {
	a.Items = nil
	for i := 0; i < a.MinItems; i++ {
		a.Items = append(a.Items, a.item())
	}
}

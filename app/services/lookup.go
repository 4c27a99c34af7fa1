package services

// Identifiable is implemented by every element addressed by a stable id.
type Identifiable interface {
	Identity() int
}

// FindByID returns the first element whose id equals id.
func FindByID[T Identifiable](items []T, id int) (T, bool) {
	for _, item := range items {
		if item.Identity() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// NextID returns one more than the largest id among items and last, the
// highest id the collection has ever handed out. Passing last keeps the id of
// a deleted trailing element from coming back.
func NextID[T Identifiable](items []T, last int) int {
	highest := last
	for _, item := range items {
		if id := item.Identity(); id > highest {
			highest = id
		}
	}
	return highest + 1
}

// SortForDisplay returns a new slice with the items for which done is false
// first, followed by the rest. Relative order is kept within each group and
// items is left untouched.
func SortForDisplay[T any](items []T, done func(T) bool) []T {
	sorted := make([]T, 0, len(items))
	var finished []T
	for _, item := range items {
		if done(item) {
			finished = append(finished, item)
		} else {
			sorted = append(sorted, item)
		}
	}
	return append(sorted, finished...)
}

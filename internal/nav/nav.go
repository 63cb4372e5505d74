// Package nav holds the index arithmetic shared by every overlay: wrapping
// unit-step movement and clamping for lists that shrink under the cursor.
package nav

// WrapIndex moves current by direction within [0, count), wrapping at both
// ends. Direction is a unit step (-1 or +1); larger magnitudes wrap the
// same way but callers only ever pass unit steps. A count of zero always
// yields zero.
func WrapIndex(current, direction, count int) int {
	if count <= 0 {
		return 0
	}
	idx := (current + direction) % count
	if idx < 0 {
		idx += count
	}
	return idx
}

// ClampIndex forces index into [0, count), or zero when the list is empty.
// Used after a refresh shrinks the underlying collection.
func ClampIndex(index, count int) int {
	if count <= 0 {
		return 0
	}
	if index < 0 {
		return 0
	}
	if index >= count {
		return count - 1
	}
	return index
}

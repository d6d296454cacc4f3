package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Optional resolves a nullable patch field: nil keeps current, a pointer to the
// zero value clears it, anything else replaces it.
func Optional[T comparable](ptr *T, current *T) *T {
	if ptr == nil {
		return current
	}
	var zero T
	if *ptr == zero {
		return nil
	}
	v := *ptr
	return &v
}

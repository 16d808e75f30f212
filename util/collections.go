package util

// Contains checks if a slice contains a value.
func Contains[T comparable](slice []T, val T) bool {
	for _, item := range slice {
		if item == val {
			return true
		}
	}
	return false
}

// IndexOf returns the index of the first occurrence of val, or -1.
func IndexOf[T comparable](slice []T, val T) int {
	for i, item := range slice {
		if item == val {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last occurrence of val, or -1.
func LastIndexOf[T comparable](slice []T, val T) int {
	for i := len(slice) - 1; i >= 0; i-- {
		if slice[i] == val {
			return i
		}
	}
	return -1
}

// Filter returns a new slice containing only elements that satisfy the predicate.
func Filter[T any](slice []T, predicate func(T) bool) []T {
	result := make([]T, 0)
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Map transforms a slice using the given function.
func Map[T any, U any](slice []T, transform func(T) U) []U {
	result := make([]U, len(slice))
	for i, item := range slice {
		result[i] = transform(item)
	}
	return result
}

// Unique returns a slice with duplicate values removed, keeping first
// occurrences in order.
func Unique[T comparable](slice []T) []T {
	seen := make(map[T]struct{}, len(slice))
	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if _, ok := seen[item]; !ok {
			seen[item] = struct{}{}
			result = append(result, item)
		}
	}
	return result
}

// Reverse returns a new slice with the elements in reverse order.
func Reverse[T any](slice []T) []T {
	result := make([]T, len(slice))
	for i, item := range slice {
		result[len(slice)-1-i] = item
	}
	return result
}

// Compact returns a new slice with zero-valued elements removed.
func Compact[T comparable](slice []T) []T {
	var zero T
	return Filter(slice, func(v T) bool { return v != zero })
}

// Flatten concatenates a slice of slices into a single slice.
func Flatten[T any](slices [][]T) []T {
	total := 0
	for _, s := range slices {
		total += len(s)
	}
	result := make([]T, 0, total)
	for _, s := range slices {
		result = append(result, s...)
	}
	return result
}

// Chunk splits a slice into consecutive pieces of at most size elements.
// A non-positive size yields a single chunk with everything.
func Chunk[T any](slice []T, size int) [][]T {
	if size <= 0 {
		return [][]T{slice}
	}
	chunks := make([][]T, 0, (len(slice)+size-1)/size)
	for start := 0; start < len(slice); start += size {
		end := start + size
		if end > len(slice) {
			end = len(slice)
		}
		chunks = append(chunks, slice[start:end])
	}
	return chunks
}

// GroupBy partitions a slice into a map keyed by the given function,
// preserving element order within each group.
func GroupBy[T any, K comparable](slice []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range slice {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// Keys returns the keys of a map.
func Keys[K comparable, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// Values returns the values of a map.
func Values[K comparable, V any](m map[K]V) []V {
	vals := make([]V, 0, len(m))
	for _, v := range m {
		vals = append(vals, v)
	}
	return vals
}

// Coalesce returns the first non-zero value, or the zero value if all are zero.
func Coalesce[T comparable](values ...T) T {
	var zero T
	for _, v := range values {
		if v != zero {
			return v
		}
	}
	return zero
}

// Ptr lifts a value to a pointer, for optional fields in request and
// command structs.
func Ptr[T any](v T) *T {
	return &v
}

// Deref unwraps an optional pointer, substituting the zero value for nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

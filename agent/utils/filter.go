package utils

// Filter returns the items the match func accepts. The items slice is not
// modified.
func Filter[T any](items []T, match func(T) bool) []T {
	results := make([]T, 0, len(items))
	for _, item := range items {
		if match(item) {
			results = append(results, item)
		}
	}
	return results
}

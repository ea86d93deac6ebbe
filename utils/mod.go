package utils

// FindIndex returns the index of the first element equal to item, or -1.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Rotate returns slice starting at index from, wrapping around.
func Rotate[T any](slice []T, from int) []T {
	rotated := make([]T, len(slice))
	for i := range slice {
		rotated[i] = slice[(i+from)%len(slice)]
	}
	return rotated
}

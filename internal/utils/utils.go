package utils

// Contains reports whether the slice contains the given element. Used to
// match request states against the qualified state lists.
func Contains[T comparable](slice []T, element T) bool {
	for _, item := range slice {
		if item == element {
			return true
		}
	}
	return false
}

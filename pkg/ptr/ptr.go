package ptr

// Ptr returns a pointer to v. Saves a temporary variable when an optional
// field needs a literal value.
func Ptr[T any](v T) *T {
	return &v
}

// Package ptr has a small helper for taking addresses of literals.
package ptr

func Ptr[T any](v T) *T {
	return &v
}

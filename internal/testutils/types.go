package testutils

// TestingT is the subset of *testing.T the helpers in this package need.
type TestingT interface {
	Helper()
	Logf(format string, args ...any)
	Error(args ...any)
	Fatal(args ...any)
}

package filling

// AssertionError reports a broken internal invariant: a defect in this
// package, never bad caller input. It is raised as a panic and only
// recovered at the package boundary.
type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}

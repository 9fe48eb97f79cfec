package diagfmt

// PrettyOpts controls human-readable rendering.
type PrettyOpts struct {
	// Color enables ANSI colors.
	Color bool
	// Context is the number of leading context lines shown before the
	// offending line.
	Context int
}

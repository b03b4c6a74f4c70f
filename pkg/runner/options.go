// Package runner decomposes several text sources concurrently.
package runner

import "io"

// StdinPath is the Source.Path that reads from Options.Stdin.
const StdinPath = "-"

// Source is one piece of text to decompose.
type Source struct {
	// Name labels the source in reports. Defaults to Path, or "arg N" for
	// inline text.
	Name string

	// Text is used as-is when Path is empty.
	Text string

	// Path is a file to read, or StdinPath.
	Path string
}

// Options controls a decomposition run.
type Options struct {
	// Sources are processed in order; results keep that order.
	Sources []Source

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// TrimTrailingNewline drops one trailing "\n" or "\r\n" from text read
	// from files and stdin. Inline text is never trimmed.
	TrimTrailingNewline bool

	// Stdin backs sources whose Path is StdinPath. It is read at most once.
	Stdin io.Reader
}

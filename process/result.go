package process

import "strings"

// Result holds the outcome of a completed subprocess. It is produced once,
// after the child has terminated and both output streams have been fully
// drained; there is no partial or streaming variant.
type Result struct {
	// ExitCode is the raw termination status reported by the OS. A
	// non-zero value is ordinary data, not an error; callers own the
	// interpretation.
	ExitCode int
	// Stdout is the captured standard output, UTF-8 decoded, with at
	// most one trailing line terminator removed. Empty if the stream
	// produced no bytes.
	Stdout string
	// Stderr is the captured standard error, normalized like Stdout.
	Stderr string
}

// assemble builds the final Result from the exit status and the two
// drained stream buffers.
func assemble(exitCode int, stdout, stderr []byte) *Result {
	return &Result{
		ExitCode: exitCode,
		Stdout:   chomp(stdout),
		Stderr:   chomp(stderr),
	}
}

// chomp decodes b as UTF-8 text and strips exactly one trailing line
// terminator if present: "a\n" becomes "a", "a\n\n" becomes "a\n".
func chomp(b []byte) string {
	s := string(b)
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2]
	}
	if strings.HasSuffix(s, "\n") {
		return s[:len(s)-1]
	}
	return s
}

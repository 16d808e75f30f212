package process

// Command describes a single synchronous subprocess invocation.
type Command struct {
	// Path is the executable path or bare name. Bare names are handed to
	// the OS search path as-is; paths containing a separator (and tilde
	// prefixes) are expanded and made absolute before launch. No shell is
	// ever involved.
	Path string
	// Args are passed to the process verbatim, one argument per element.
	// They are never concatenated into a command line.
	Args []string
	// Dir is the working directory for the child. Empty inherits the
	// caller's working directory.
	Dir string
	// Env, when non-nil, becomes the child's entire environment. It
	// replaces, never extends, the inherited environment. A nil map
	// inherits the caller's environment.
	Env map[string]string
	// Input, when non-nil, is written to the child's stdin in full and
	// the pipe is then closed. When nil, the stdin pipe is still created
	// (some children probe for a connected stdin) and closed empty.
	Input *string
}

package process

import "strings"

// searchTool is the system's standard executable-search mechanism,
// invoked as a one-shot child process.
const searchTool = "which"

// Resolve locates an executable by bare name on the system search path
// and returns its absolute path. It bootstraps on Run: the search tool is
// itself executed as a child process. A name the search tool cannot find
// yields a *ResolutionError carrying the tool's diagnostic output.
func Resolve(name string) (string, error) {
	res, err := Run(Command{Path: searchTool, Args: []string{name}})
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		detail := res.Stderr
		if detail == "" {
			detail = res.Stdout
		}
		return "", &ResolutionError{Name: name, Detail: strings.TrimSpace(detail)}
	}
	return res.Stdout, nil
}

// ResolveQuiet reports whether name resolves to an executable. A failed
// search is an ordinary false, never an error.
func ResolveQuiet(name string) bool {
	res, err := Run(Command{Path: searchTool, Args: []string{name}})
	return err == nil && res.ExitCode == 0
}

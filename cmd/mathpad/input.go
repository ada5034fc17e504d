package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dhamidi/mathpad/project"
)

// env carries the persistent root flags into subcommands.
type env struct {
	configDir *string
}

func (e *env) project() (*project.Project, error) {
	p, err := project.LoadFrom(*e.configDir)
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}
	return p, nil
}

// readSource returns the expression to work on: the contents of file when
// set ("-" is stdin), the joined arguments otherwise, or stdin when there are
// none.
func readSource(stdin io.Reader, file string, args []string) (string, error) {
	switch {
	case file == "-":
		return readAll(stdin)
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		return string(data), nil
	case len(args) > 0:
		return strings.Join(args, " "), nil
	}
	return readAll(stdin)
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// Package export translates whole Python files into sibling JavaScript
// files.
package export

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"pyjs/internal/translate"
)

// Banner opens every exported file, followed by a blank line.
const Banner = "/* Do not edit, autogenerated by pyjs */"

// ErrInvalidInput indicates the path does not name an existing .py file.
var ErrInvalidInput = errors.New("invalid input")

// TargetPath maps a .py path to its sibling .js path.
func TargetPath(path string) string {
	return strings.TrimSuffix(path, ".py") + ".js"
}

// File translates the whole file at path and writes the result next to it,
// with the .js extension substituted for .py. Any existing file at the
// target path is overwritten. There is no partial-write protection: a crash
// mid-write can leave a truncated target, acceptable for this tool's
// development-time role.
func File(tr translate.Translator, path string, ns translate.Namespace) error {
	if !strings.HasSuffix(path, ".py") {
		return fmt.Errorf("%w: %s does not have the .py extension", ErrInvalidInput, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	js, err := tr.Translate(string(data), ns)
	if err != nil {
		return err
	}

	out := Banner + "\n\n" + js
	if err := os.WriteFile(TargetPath(path), []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", TargetPath(path), err)
	}
	return nil
}

// Package source extracts translatable source units from Python files.
//
// Extraction is an explicit contract: callers name a file region or a
// definition, never a live object. A Unit carries the de-indented text of
// exactly one function or class definition, classified and named, ready to
// hand to the translator.
package source

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Kind classifies a source unit.
type Kind int

const (
	KindFunction Kind = iota
	KindClass
)

func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindClass:
		return "class"
	default:
		return "unknown"
	}
}

// MangleSuffix lets the same logical name exist on the Python side and the
// JS side at once: a definition named "f__js" yields a unit named "f".
const MangleSuffix = "__js"

var (
	// ErrSourceUnavailable indicates the source text could not be retrieved.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrUnsupportedEntity indicates the text is neither a function nor a
	// class definition.
	ErrUnsupportedEntity = errors.New("unsupported entity")
)

// Decorator controls handling of a leading decorator line.
type Decorator int

const (
	// DecoratorAuto drops the first line when it starts with "@".
	DecoratorAuto Decorator = iota
	// DecoratorDrop always drops the first line.
	DecoratorDrop
	// DecoratorKeep never drops a line.
	DecoratorKeep
)

// Options configures extraction.
type Options struct {
	Decorator Decorator
}

// Unit is a named, classified chunk of original source text.
type Unit struct {
	Kind   Kind
	Name   string
	Source string // de-indented, decorator line removed
}

// FromText normalizes pre-extracted source text into a Unit.
//
// The text is de-indented by the indentation of its first line, a single
// leading decorator line is handled per opts, and the remaining first line
// must open a function or class definition.
func FromText(text string, opts Options) (Unit, error) {
	lines := splitLines(text)
	if len(lines) == 0 {
		return Unit{}, fmt.Errorf("%w: empty source text", ErrSourceUnavailable)
	}

	indent := len(lines[0]) - len(strings.TrimLeft(lines[0], " \t"))
	for i, line := range lines {
		if len(line) >= indent {
			lines[i] = line[indent:]
		} else {
			lines[i] = strings.TrimLeft(line, " \t")
		}
	}

	drop := opts.Decorator == DecoratorDrop
	if opts.Decorator == DecoratorAuto && strings.HasPrefix(lines[0], "@") {
		drop = true
	}
	if drop {
		if len(lines) < 2 {
			return Unit{}, fmt.Errorf("%w: nothing follows the decorator line", ErrUnsupportedEntity)
		}
		lines = lines[1:]
	}

	kind, name, err := classify(lines[0])
	if err != nil {
		return Unit{}, err
	}

	return Unit{
		Kind:   kind,
		Name:   strings.TrimSuffix(name, MangleSuffix),
		Source: strings.Join(lines, ""),
	}, nil
}

// ExtractRange reads the 1-based inclusive line range [start, end] from the
// file at path and normalizes it into a Unit.
func ExtractRange(path string, start, end int, opts Options) (Unit, error) {
	lines, err := readLines(path)
	if err != nil {
		return Unit{}, err
	}
	if start < 1 || end < start || end > len(lines) {
		return Unit{}, fmt.Errorf("%w: lines %d-%d out of range in %s (%d lines)",
			ErrSourceUnavailable, start, end, path, len(lines))
	}
	return FromText(strings.Join(lines[start-1:end], ""), opts)
}

// ExtractNamed scans the file at path for a top-level "def name" or
// "class name" definition and extracts its block.
//
// The scan starts at the definition line itself, so decorator lines above it
// are never included. Exactly one definition must match: zero matches fail
// with ErrSourceUnavailable, and two or more fail loudly rather than picking
// one, since a name-based lookup cannot tell same-named definitions apart.
func ExtractNamed(path, name string, opts Options) (Unit, error) {
	lines, err := readLines(path)
	if err != nil {
		return Unit{}, err
	}

	var starts []int
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		_, declared, err := classify(trimmed)
		if err != nil {
			continue
		}
		if declared == name || strings.TrimSuffix(declared, MangleSuffix) == name {
			starts = append(starts, i)
		}
	}

	switch len(starts) {
	case 0:
		return Unit{}, fmt.Errorf("%w: no definition of %q in %s", ErrSourceUnavailable, name, path)
	case 1:
	default:
		return Unit{}, fmt.Errorf("ambiguous lookup: %d definitions of %q in %s", len(starts), name, path)
	}

	start := starts[0]
	end := blockEnd(lines, start)
	return FromText(strings.Join(lines[start:end], ""), opts)
}

// blockEnd returns the exclusive end index of the block opened at start,
// delimited by the first subsequent non-blank line at or below the opening
// line's indentation.
func blockEnd(lines []string, start int) int {
	indent := len(lines[start]) - len(strings.TrimLeft(lines[start], " \t"))
	for i := start + 1; i < len(lines); i++ {
		trimmed := strings.TrimLeft(lines[i], " \t")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}
		if len(lines[i])-len(trimmed) <= indent {
			return i
		}
	}
	return len(lines)
}

// classify inspects a definition line and returns its kind and declared name.
func classify(line string) (Kind, string, error) {
	switch {
	case strings.HasPrefix(line, "def "):
		return KindFunction, declaredName(line[len("def "):]), nil
	case strings.HasPrefix(line, "class "):
		return KindClass, declaredName(line[len("class "):]), nil
	default:
		return 0, "", fmt.Errorf("%w: %q is not a function or class definition",
			ErrUnsupportedEntity, firstLine(line))
	}
}

func declaredName(rest string) string {
	rest = strings.TrimLeft(rest, " \t")
	end := strings.IndexAny(rest, "(: \t\n")
	if end < 0 {
		return rest
	}
	return rest[:end]
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// splitLines splits text into lines, each keeping its trailing newline.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return splitLines(string(data)), nil
}

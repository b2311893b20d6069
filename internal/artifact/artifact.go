// Package artifact builds immutable code artifacts pairing a Python source
// unit with its JavaScript translation.
//
// The translator's output shape is validated at construction time: a
// function artifact stores a bare function literal, a class artifact stores
// the translator's "var <name> = ..." statement unmodified. A shape mismatch
// is a translator contract break, never bad user input, and fails hard.
package artifact

import (
	"fmt"
	"strings"

	"pyjs/internal/source"
	"pyjs/internal/translate"
)

// Artifact pairs the Python source of one function or class with its
// JavaScript translation. Artifacts are immutable after construction.
type Artifact struct {
	kind     source.Kind
	name     string
	pySource string
	jsSource string
}

// InvariantError reports translator output that does not match the expected
// structural shape for its kind.
type InvariantError struct {
	Kind   source.Kind
	Name   string
	Output string // leading snippet of the offending output
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("translator output for %s %q has unexpected shape: %q",
		e.Kind, e.Name, e.Output)
}

// DirectInvocationError reports an attempt to use an artifact as if it were
// the original Python callable.
type DirectInvocationError struct {
	Kind source.Kind
}

func (e *DirectInvocationError) Error() string {
	action := "call"
	if e.Kind == source.KindClass {
		action = "instantiate"
	}
	return fmt.Sprintf("cannot %s a JS %s from host code", action, e.Kind)
}

// Build translates unit's source and wraps the result in an Artifact.
//
// For a function the translator emits "var <name> = function ...;"; that
// declaration-and-assignment prefix is stripped so the stored JS is a bare
// function literal, usable in expression position. For a class the output is
// stored as emitted and must already start with "var <name>".
func Build(tr translate.Translator, unit source.Unit) (*Artifact, error) {
	js, err := tr.Translate(unit.Source, nil)
	if err != nil {
		return nil, err
	}

	switch unit.Kind {
	case source.KindFunction:
		js, err = stripDeclaration(js)
		if err != nil || !strings.HasPrefix(js, "function") {
			return nil, &InvariantError{Kind: unit.Kind, Name: unit.Name, Output: snippet(js)}
		}
	case source.KindClass:
		if !strings.HasPrefix(js, "var "+unit.Name) {
			return nil, &InvariantError{Kind: unit.Kind, Name: unit.Name, Output: snippet(js)}
		}
	default:
		return nil, fmt.Errorf("%w: kind %d", source.ErrUnsupportedEntity, unit.Kind)
	}

	return &Artifact{
		kind:     unit.Kind,
		name:     unit.Name,
		pySource: unit.Source,
		jsSource: js,
	}, nil
}

// stripDeclaration removes the leading "var <ident> =" tokens, leaving the
// assigned expression.
func stripDeclaration(js string) (string, error) {
	rest, ok := strings.CutPrefix(js, "var ")
	if !ok {
		return js, fmt.Errorf("no var declaration")
	}
	eq := strings.IndexByte(rest, '=')
	if eq < 0 {
		return js, fmt.Errorf("no assignment")
	}
	return strings.TrimLeft(rest[eq+1:], " \t"), nil
}

func snippet(js string) string {
	const max = 60
	js = strings.TrimSpace(js)
	if len(js) > max {
		return js[:max] + "..."
	}
	return js
}

// Kind reports whether the artifact wraps a function or a class.
func (a *Artifact) Kind() source.Kind { return a.kind }

// Name is the logical name, with any mangling suffix already stripped.
func (a *Artifact) Name() string { return a.name }

// PySource is the Python code that defines this function or class.
func (a *Artifact) PySource() string { return a.pySource }

// JSSource is the JavaScript code that represents this function or class.
func (a *Artifact) JSSource() string { return a.jsSource }

// Invoke always fails: translated code runs in a JS runtime, not here.
func (a *Artifact) Invoke(args ...any) (any, error) {
	return nil, &DirectInvocationError{Kind: a.kind}
}

func (a *Artifact) String() string {
	return fmt.Sprintf("== Python code that defines this %s ==\n%s== JS code that represents this %s ==\n%s",
		a.kind, a.pySource, a.kind, a.jsSource)
}

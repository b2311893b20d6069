// Package pyjs orchestrates a Python-subset to JavaScript source
// translator: it extracts source units, builds immutable code artifacts,
// exports whole files, and evaluates the produced JavaScript in a sandbox.
//
// The translator itself is an external collaborator supplied by the caller;
// see internal package docs for the individual pieces.
package pyjs

import (
	"context"
	"fmt"

	"pyjs/internal/artifact"
	"pyjs/internal/export"
	"pyjs/internal/logging"
	"pyjs/internal/sandbox"
	"pyjs/internal/source"
	"pyjs/internal/translate"
)

// Re-exported so most callers only import this package.
type (
	Artifact  = artifact.Artifact
	Unit      = source.Unit
	Namespace = translate.Namespace
)

// Tool wires a translator and a sandbox bridge into the public operations.
type Tool struct {
	tr         translate.Translator
	bridge     *sandbox.Bridge
	sandboxCfg sandbox.Config
	log        *logging.Logger
}

// Option configures a Tool.
type Option func(*Tool)

// WithLogger sets the logger used by the tool and its sandbox bridge.
func WithLogger(log *logging.Logger) Option {
	return func(t *Tool) { t.log = log }
}

// WithSandbox replaces the default node-backed sandbox configuration.
func WithSandbox(cfg sandbox.Config) Option {
	return func(t *Tool) { t.sandboxCfg = cfg }
}

// New creates a Tool around the given translator.
func New(tr translate.Translator, opts ...Option) *Tool {
	t := &Tool{tr: tr, log: logging.NewNop(), sandboxCfg: sandbox.DefaultConfig()}
	for _, opt := range opts {
		opt(t)
	}
	t.bridge = sandbox.New(t.sandboxCfg, t.log)
	return t
}

// Translate converts Python source text to JavaScript. Translator errors
// propagate unchanged; each call is a fresh, independent translation.
func (t *Tool) Translate(pycode string, ns Namespace) (string, error) {
	return t.tr.Translate(pycode, ns)
}

// BuildArtifact builds a code artifact from an entity, which must be a
// source.Unit, a raw definition string, or an already-built *Artifact
// (returned unchanged). Anything else is an unsupported entity.
func (t *Tool) BuildArtifact(entity any) (*Artifact, error) {
	switch e := entity.(type) {
	case *Artifact:
		return e, nil
	case Unit:
		return artifact.Build(t.tr, e)
	case string:
		unit, err := source.FromText(e, source.Options{})
		if err != nil {
			return nil, err
		}
		return artifact.Build(t.tr, unit)
	default:
		return nil, fmt.Errorf("%w: %T", source.ErrUnsupportedEntity, entity)
	}
}

// ExportFile translates the .py file at path and writes the sibling .js
// file, prefixed with the generated-file banner.
func (t *Tool) ExportFile(path string, ns Namespace) error {
	return export.File(t.tr, path, ns)
}

// EvalJS evaluates JavaScript code in the sandbox and returns the result of
// the last expression as text.
func (t *Tool) EvalJS(ctx context.Context, jscode string, whitespace bool) (string, error) {
	return t.bridge.Eval(ctx, jscode, whitespace)
}

// EvalPy translates Python code and evaluates the result in the sandbox.
// Used to assert that translated code behaves the same as a hand-written
// JavaScript equivalent.
func (t *Tool) EvalPy(ctx context.Context, pycode string, whitespace bool) (string, error) {
	jscode, err := t.tr.Translate(pycode, nil)
	if err != nil {
		return "", err
	}
	return t.bridge.Eval(ctx, jscode, whitespace)
}

// EvalJS evaluates JavaScript with a default node-backed sandbox. For
// anything involving translation, construct a Tool.
func EvalJS(ctx context.Context, jscode string, whitespace bool) (string, error) {
	return sandbox.New(sandbox.DefaultConfig(), nil).Eval(ctx, jscode, whitespace)
}

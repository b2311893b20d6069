package sandbox

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pyjs/internal/logging"

	"go.uber.org/zap"
)

// Engine selects how JavaScript is evaluated.
type Engine int

const (
	// EngineNode spawns an external node process per evaluation.
	EngineNode Engine = iota
	// EngineGoja evaluates in an embedded goja VM, no node required.
	EngineGoja
)

// Config defines sandbox configuration.
type Config struct {
	Engine  Engine
	NodeBin string        // node executable, EngineNode only
	Timeout time.Duration // per-evaluation limit, 0 means none
}

// DefaultConfig returns the node-backed configuration.
func DefaultConfig() Config {
	return Config{
		Engine:  EngineNode,
		NodeBin: "node",
		Timeout: 30 * time.Second,
	}
}

// EvalError reports a failed evaluation: the runtime failed to start, exited
// non-zero, or reported a syntax or runtime error. Output holds the raw
// diagnostic text verbatim.
type EvalError struct {
	Output string
	Err    error
}

func (e *EvalError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("sandbox evaluation failed: %s", e.Output)
	}
	return fmt.Sprintf("sandbox evaluation failed: %v", e.Err)
}

func (e *EvalError) Unwrap() error { return e.Err }

// Bridge evaluates JavaScript code and captures the textual value of the
// last evaluated expression. Each call runs in a fresh runtime; no state is
// shared between evaluations.
type Bridge struct {
	cfg Config
	log *logging.Logger
}

// New creates a Bridge. A nil logger disables logging.
func New(cfg Config, log *logging.Logger) *Bridge {
	if cfg.NodeBin == "" {
		cfg.NodeBin = "node"
	}
	if log == nil {
		log = logging.NewNop()
	}
	return &Bridge{cfg: cfg, log: log}
}

// Eval evaluates code and returns the result as text.
//
// The runtime prints "undefined" when the last expression has no value; that
// trailing sentinel is stripped so statement-only code returns only its
// side-effect output. With whitespace false, every space, tab, and newline
// is removed from the result, for formatting-insensitive comparisons.
func (b *Bridge) Eval(ctx context.Context, code string, whitespace bool) (string, error) {
	if b.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	var res string
	var err error
	switch b.cfg.Engine {
	case EngineGoja:
		res, err = b.evalGoja(ctx, code)
	default:
		res, err = b.evalNode(ctx, code)
	}
	if err != nil {
		return "", err
	}
	b.log.Debug("evaluated code in sandbox",
		zap.Duration("duration", time.Since(start)),
		zap.Int("code_len", len(code)))

	res = strings.TrimSpace(res)
	if trimmed, ok := strings.CutSuffix(res, "undefined"); ok {
		res = strings.TrimRight(trimmed, " \t\r\n")
	}
	if !whitespace {
		res = strings.NewReplacer("\n", "", "\t", "", " ", "").Replace(res)
	}
	return res, nil
}

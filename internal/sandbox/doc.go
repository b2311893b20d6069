/*
Package sandbox evaluates JavaScript code and reports the result as text.

# Overview

The bridge exists to observe what translated code does at runtime, not to
host it: each evaluation spawns a fresh runtime, captures the textual value
of the last evaluated expression, and throws the runtime away. Two engines
are available:

  - EngineNode: spawns `node -p -e <code>` and reads stdout. This is the
    reference behavior; stdout is the sole channel of truth and stderr
    surfaces only inside an EvalError.
  - EngineGoja: runs the code in an embedded goja VM that emulates node's
    print-expression mode (console output lines, then the completion value).
    Useful where no node binary is installed, including CI.

# Result shaping

Results are stripped of surrounding whitespace, and a trailing "undefined"
sentinel is removed so statement-only code does not end with a spurious
token. Passing whitespace=false removes every space, tab, and newline from
the result, which makes two formattings of the same program compare equal.

# Failure model

Process launch failure, non-zero exit, interrupt on timeout, and runtime
errors all surface as a single EvalError carrying the raw diagnostic text.
The bridge never parses or classifies the runtime's own error messages.

# Usage Example

	bridge := sandbox.New(sandbox.DefaultConfig(), logger)
	res, err := bridge.Eval(ctx, "1+1", true)
	// res == "2"
*/
package sandbox

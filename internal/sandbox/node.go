package sandbox

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// evalNode runs node in print-expression mode and captures stdout. stdout is
// the sole channel of truth; stderr surfaces only inside an EvalError.
func (b *Bridge) evalNode(ctx context.Context, code string) (string, error) {
	cmd := exec.CommandContext(ctx, b.cfg.NodeBin, "-p", "-e", code)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		out := strings.TrimSpace(stderr.String())
		if out == "" {
			out = strings.TrimSpace(stdout.String())
		}
		return "", &EvalError{Output: out, Err: err}
	}
	return stdout.String(), nil
}

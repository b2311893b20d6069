package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"pyjs"
	"pyjs/internal/config"
	"pyjs/internal/export"
	"pyjs/internal/logging"
	"pyjs/internal/sandbox"
	"pyjs/internal/translate"

	"go.uber.org/zap"
)

const usage = `usage: pyjs <command> [flags]

commands:
  export <file.py>   translate a file to a sibling .js file
  evaljs <code>      evaluate JavaScript in the sandbox
  evalpy <code>      translate Python code, then evaluate it

flags:
`

func main() {
	cfg := config.LoadOrDefault()

	engine := flag.String("engine", cfg.Sandbox.Engine, "sandbox engine: node or goja")
	nodeBin := flag.String("node", cfg.Sandbox.NodeBin, "node executable")
	timeout := flag.Duration("timeout", cfg.Sandbox.Timeout, "evaluation timeout")
	translator := flag.String("translator", cfg.Translator.Command, "translator executable")
	namespace := flag.String("namespace", "", "comma-separated key=value namespace entries")
	whitespace := flag.Bool("whitespace", true, "keep whitespace in evaluation results")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	log, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "pyjs: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	args := flag.Args()
	if len(args) < 2 {
		flag.Usage()
		os.Exit(2)
	}

	sandboxCfg := sandbox.Config{
		Engine:  sandbox.EngineNode,
		NodeBin: *nodeBin,
		Timeout: *timeout,
	}
	if *engine == "goja" {
		sandboxCfg.Engine = sandbox.EngineGoja
	}

	tool := pyjs.New(
		translate.NewCommand(*translator),
		pyjs.WithLogger(log),
		pyjs.WithSandbox(sandboxCfg),
	)

	ctx := context.Background()
	cmd, arg := args[0], args[1]

	switch cmd {
	case "export":
		if err := tool.ExportFile(arg, parseNamespace(*namespace)); err != nil {
			log.Fatal("export failed", zap.String("path", arg), zap.Error(err))
		}
		log.Info("exported file",
			zap.String("source", arg),
			zap.String("target", export.TargetPath(arg)))
	case "evaljs":
		res, err := tool.EvalJS(ctx, arg, *whitespace)
		if err != nil {
			log.Fatal("evaluation failed", zap.Error(err))
		}
		fmt.Println(res)
	case "evalpy":
		res, err := tool.EvalPy(ctx, arg, *whitespace)
		if err != nil {
			log.Fatal("evaluation failed", zap.Error(err))
		}
		fmt.Println(res)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func parseNamespace(s string) translate.Namespace {
	if s == "" {
		return nil
	}
	ns := translate.Namespace{}
	for _, pair := range strings.Split(s, ",") {
		k, v, _ := strings.Cut(pair, "=")
		ns[k] = v
	}
	return ns
}

// Package main provides the CLI entrypoint for path-flattener.
//
// path-flattener reads a nested record shape (a YAML shape file or a Go
// struct type) and prints every dotted path reachable in it together with
// the value it accepts: a mapper from the resource state, or, for optional
// branches, a boolean flag or a mapper.
//
// Commands:
//
//	flatten <shape.yaml>          print the flattened path map
//	struct <package> <Type>       flatten a Go struct type
//	resolve <shape.yaml> <path>   print the node a dotted path names
//	parse <path>                  print the segments of a dotted path
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"path-flattener/internal/config"
)

const usage = `usage: path-flattener [flags] <command> [args]

commands:
  flatten <shape.yaml>          print the flattened path map
  struct <package> <Type>       flatten a Go struct type
  resolve <shape.yaml> <path>   print the node a dotted path names
  parse <path>                  print the segments of a dotted path

flags:
`

var errUsage = errors.New("invalid usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("path-flattener", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	config.Flags(fs)
	emitShape := fs.Bool("emit-shape", false, "struct: print the derived shape file instead of the flattened map")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}

		return 2
	}

	cfg, err := config.Load(fs)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	log := newLogger(cfg, stderr)

	app, err := newApp(cfg, log, stdout)
	if err != nil {
		log.Error(err, "failed to start")
		return 1
	}

	app.emitShape = *emitShape

	if err := app.dispatch(fs.Args()); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, err)
			fs.Usage()

			return 2
		}

		log.Error(err, "command failed", "args", fs.Args())

		return 1
	}

	return 0
}

func newLogger(cfg *config.Config, out io.Writer) logr.Logger {
	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"

	var w io.Writer = out
	if cfg.LogFormat == "console" {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	zl := zerolog.New(w).Level(level).With().Timestamp().Logger()

	return zerologr.New(&zl).WithName("path-flattener")
}

// SPDX-License-Identifier: MIT
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/fourcolor/api"
	"github.com/katalvlaran/fourcolor/coloring"
	"github.com/katalvlaran/fourcolor/config"
	"github.com/katalvlaran/fourcolor/matrix"
	"github.com/katalvlaran/fourcolor/mtxio"
	"github.com/katalvlaran/fourcolor/observability"
	"github.com/katalvlaran/fourcolor/pipeline"
	"github.com/katalvlaran/fourcolor/render"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

const menuPrompt = "If you want to read matrix from matrix.txt, enter 1, if from terminal manually, enter 0: "

var errNoChoice = errors.New("no input method chosen")

// flags mirrors the command line; only flags the user set override config.
type flags struct {
	configPath  string
	input       string
	interactive bool
	palette     string
	strategy    string
	timeLimit   time.Duration
	noPlanarity bool
	crossCheck  bool
	dot         string
	svg         string
	metricsOut  string
	logLevel    string
	serve       bool
	addr        string
}

func parseFlags(args []string, stderr io.Writer) (*flags, map[string]bool, error) {
	f := &flags{}
	fs := flag.NewFlagSet("fourcolor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configPath, "config", "", "YAML configuration file")
	fs.StringVar(&f.input, "input", "", "read the adjacency matrix from this file")
	fs.BoolVar(&f.interactive, "interactive", false, "type the matrix row by row on stdin")
	fs.StringVar(&f.palette, "palette", "", "comma separated color labels (default red,green,blue,yellow)")
	fs.StringVar(&f.strategy, "strategy", "", "search strategy: recursive or iterative")
	fs.DurationVar(&f.timeLimit, "time-limit", 0, "abort the search after this long (0 = no limit)")
	fs.BoolVar(&f.noPlanarity, "no-planarity", false, "search even when the graph is certainly non-planar")
	fs.BoolVar(&f.crossCheck, "cross-check", false, "confirm the verdict with a SAT solver")
	fs.StringVar(&f.dot, "dot", "", "write the colored graph as Graphviz DOT to this file")
	fs.StringVar(&f.svg, "svg", "", "write the colored graph as SVG to this file")
	fs.StringVar(&f.metricsOut, "metrics-out", "", "write Prometheus metrics in textfile format to this file")
	fs.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	fs.BoolVar(&f.serve, "serve", false, "run the HTTP service")
	fs.StringVar(&f.addr, "addr", "", "HTTP listen address for -serve")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() > 0 {
		return nil, nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	return f, set, nil
}

// apply overlays the flags the user set on cfg.
func (f *flags) apply(cfg *config.Config, set map[string]bool) {
	if set["input"] {
		cfg.Input.Path = f.input
	}
	if set["interactive"] {
		cfg.Input.Interactive = f.interactive
	}
	if set["palette"] {
		labels := strings.Split(f.palette, ",")
		for i := range labels {
			labels[i] = strings.TrimSpace(labels[i])
		}
		cfg.Palette = labels
	}
	if set["strategy"] {
		cfg.Search.Strategy = f.strategy
	}
	if set["time-limit"] {
		cfg.Search.TimeLimit = f.timeLimit
	}
	if set["no-planarity"] {
		cfg.Planarity.Gate = !f.noPlanarity
	}
	if set["cross-check"] {
		cfg.Search.CrossCheck = f.crossCheck
	}
	if set["dot"] {
		cfg.Output.DOT = f.dot
	}
	if set["svg"] {
		cfg.Output.SVG = f.svg
	}
	if set["metrics-out"] {
		cfg.Output.Metrics = f.metricsOut
	}
	if set["log-level"] {
		cfg.Log.Level = f.logLevel
	}
	if set["addr"] {
		cfg.Server.Addr = f.addr
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, lookup config.LookupFunc) int {
	f, set, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, "fourcolor:", err)
		return exitUsage
	}

	cfg, err := config.Load(f.configPath, lookup)
	if err != nil {
		fmt.Fprintln(stderr, "fourcolor:", err)
		return exitUsage
	}
	f.apply(cfg, set)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "fourcolor:", err)
		return exitUsage
	}

	log, err := observability.NewLogger(stderr, cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		fmt.Fprintln(stderr, "fourcolor:", err)
		return exitUsage
	}
	defer func() { _ = log.Sync() }()

	palette, err := coloring.NewPalette(cfg.Palette...)
	if err != nil {
		fmt.Fprintln(stderr, "fourcolor:", err)
		return exitUsage
	}
	strategy, err := coloring.ParseStrategy(cfg.Search.Strategy)
	if err != nil {
		fmt.Fprintln(stderr, "fourcolor:", err)
		return exitUsage
	}

	metrics := observability.NewCollector()
	runner := pipeline.New(pipeline.WithLogger(log), pipeline.WithObserver(metrics))

	if f.serve {
		srv := api.NewServer(api.Config{
			MaxVertices:    cfg.Server.MaxVertices,
			MaxBodyBytes:   cfg.Server.MaxBodyBytes,
			RequestTimeout: cfg.Server.RequestTimeout,
			Palette:        palette,
			Strategy:       strategy,
			PlanarityGate:  cfg.Planarity.Gate,
			CrossCheck:     cfg.Search.CrossCheck,
		}, runner, log, metrics)
		if err := srv.ListenAndServe(ctx, cfg.Server.Addr, cfg.Server.ReadTimeout, cfg.Server.WriteTimeout); err != nil {
			log.Error("server stopped", zap.Error(err))
			return exitError
		}
		return exitOK
	}

	g, err := readGraph(cfg, bufio.NewReader(stdin), stdout)
	if err != nil {
		fmt.Fprintln(stderr, "fourcolor:", err)
		return exitError
	}

	rep, err := runner.Run(ctx, pipeline.Request{
		Graph:         g,
		Palette:       palette,
		Strategy:      strategy,
		TimeLimit:     cfg.Search.TimeLimit,
		PlanarityGate: cfg.Planarity.Gate,
		CrossCheck:    cfg.Search.CrossCheck,
	})
	if err != nil {
		fmt.Fprintln(stderr, "fourcolor:", err)
		return exitError
	}

	if rep.Feasible {
		for v, c := range rep.Colors {
			fmt.Fprintf(stdout, "vertex %d: %s\n", v, c)
		}
	} else {
		fmt.Fprintf(stdout, "It is not possible to color the graph in %d colors\n", palette.Len())
	}

	if err := writeArtifacts(cfg.Output, g, rep.Colors); err != nil {
		fmt.Fprintln(stderr, "fourcolor:", err)
		return exitError
	}
	if cfg.Output.Metrics != "" {
		if err := metrics.WriteTextfile(cfg.Output.Metrics); err != nil {
			fmt.Fprintln(stderr, "fourcolor:", err)
			return exitError
		}
	}

	return exitOK
}

// readGraph picks the input source: a configured file, the terminal, or
// the menu that asks between matrix.txt and the terminal.
func readGraph(cfg *config.Config, in *bufio.Reader, out io.Writer) (*matrix.Adjacency, error) {
	opts := []mtxio.Option{mtxio.WithMaxVertices(cfg.Input.MaxVertices)}
	if cfg.Input.RequireSymmetric {
		opts = append(opts, mtxio.WithRequireSymmetric())
	}
	if cfg.Input.RequireZeroDiagonal {
		opts = append(opts, mtxio.WithRequireZeroDiagonal())
	}

	switch {
	case cfg.Input.Path != "":
		return mtxio.ReadFile(cfg.Input.Path, opts...)
	case cfg.Input.Interactive:
		return mtxio.ReadInteractive(in, out, opts...)
	}

	for {
		fmt.Fprint(out, menuPrompt)
		line, err := in.ReadString('\n')
		choice := strings.TrimSpace(line)
		switch choice {
		case "1":
			return mtxio.ReadFile(config.DefaultInputFile, opts...)
		case "0":
			return mtxio.ReadInteractive(in, out, opts...)
		}
		if err != nil {
			return nil, errNoChoice
		}
	}
}

// writeArtifacts renders the optional DOT and SVG files. Without a
// coloring the vertices are drawn uncolored.
func writeArtifacts(out config.Output, g *matrix.Adjacency, colors []coloring.Color) error {
	write := func(path string, fn func(io.Writer) error) error {
		if path == "" {
			return nil
		}
		fh, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := fn(fh); err != nil {
			fh.Close()
			return err
		}

		return fh.Close()
	}

	if err := write(out.DOT, func(w io.Writer) error { return render.WriteDOT(w, g, colors) }); err != nil {
		return fmt.Errorf("dot: %w", err)
	}
	if err := write(out.SVG, func(w io.Writer) error { return render.WriteSVG(w, g, colors) }); err != nil {
		return fmt.Errorf("svg: %w", err)
	}

	return nil
}

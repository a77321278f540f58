package main

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ot2d/sdot/domain"
	"github.com/ot2d/sdot/geom2d"
	"github.com/ot2d/sdot/laguerre/native"
	"github.com/ot2d/sdot/linsolve"
	"github.com/ot2d/sdot/sdotio"
	"github.com/ot2d/sdot/transport"
)

type solveFlags struct {
	domainSpec string
	seedsSpec  string
	shrink     bool
	solver     string
	tol        float64
	out        string
	verbose    bool
}

func newSolveCmd() *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "solve a semi-discrete optimal transport problem",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.domainSpec, "domain", "ngon:4", `domain to solve on: "square" or "ngon:N"`)
	flags.StringVar(&f.seedsSpec, "seeds", "random:100", `seeds to place: "random:N"`)
	flags.BoolVar(&f.shrink, "shrink", false, "cluster sampled seeds into a small zone around the domain centroid")
	flags.StringVar(&f.solver, "solver", "direct", `linear solve strategy: "direct" or "iterative"`)
	flags.Float64Var(&f.tol, "tol", 0.01, "relative convergence tolerance")
	flags.StringVar(&f.out, "out", "", "write the solved weights, seeds, and domain to this file")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "log per-iteration progress")
	return cmd
}

func runSolve(cmd *cobra.Command, f *solveFlags) error {
	omega, err := parseDomain(f.domainSpec)
	if err != nil {
		return inputError(err)
	}
	seeds, err := parseSeeds(f.seedsSpec, omega)
	if err != nil {
		return inputError(err)
	}
	if f.shrink {
		seeds = domain.Shrink(seeds, centroidOf(omega), 0.25)
	}
	method, err := parseMethod(f.solver)
	if err != nil {
		return inputError(err)
	}

	logger := zerolog.Nop()
	if f.verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).With().Timestamp().Logger()
	}

	opts := transport.NewOptions()
	opts.Solver = method
	opts.Tol = f.tol
	opts.Verbose = f.verbose
	opts.Logger = logger

	solver, err := transport.NewSolver(omega, seeds, nil, native.NewBuilder(), opts)
	if err != nil {
		if errors.Is(err, transport.ErrInputInvalid) {
			return inputError(err)
		}
		return fmt.Errorf("internal: constructing solver: %w", err)
	}

	psi, err := solver.Solve()
	if err != nil {
		var dnc *transport.ErrDidNotConverge
		if errors.As(err, &dnc) {
			return err
		}
		return fmt.Errorf("internal: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "converged: %d seeds, domain area %.6g\n", len(seeds), omega.Area())

	if f.out != "" {
		file, err := os.Create(f.out)
		if err != nil {
			return fmt.Errorf("internal: creating %s: %w", f.out, err)
		}
		defer file.Close()
		if _, err := sdotio.Write(file, sdotio.Blob{Psi: psi, Seeds: seeds, Omega: omega}); err != nil {
			return fmt.Errorf("internal: writing %s: %w", f.out, err)
		}
	}
	return nil
}

func parseDomain(spec string) (domain.Mesh, error) {
	switch {
	case spec == "square":
		return domain.UnitSquare(), nil
	case strings.HasPrefix(spec, "ngon:"):
		n, err := strconv.Atoi(strings.TrimPrefix(spec, "ngon:"))
		if err != nil || n < 3 {
			return domain.Mesh{}, fmt.Errorf("invalid --domain %q: want ngon:N with N >= 3", spec)
		}
		return domain.NewRegularNGon(n, 0.5), nil
	default:
		return domain.Mesh{}, fmt.Errorf("unrecognized --domain %q", spec)
	}
}

func parseSeeds(spec string, omega domain.Mesh) ([]geom2d.Point, error) {
	if !strings.HasPrefix(spec, "random:") {
		return nil, fmt.Errorf("unrecognized --seeds %q, want random:N", spec)
	}
	n, err := strconv.Atoi(strings.TrimPrefix(spec, "random:"))
	if err != nil || n < 2 {
		return nil, fmt.Errorf("invalid --seeds %q: want random:N with N >= 2", spec)
	}
	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(os.Getpid())))
	return domain.SampleUniform(rng, omega, n), nil
}

func parseMethod(s string) (linsolve.Method, error) {
	switch s {
	case "direct", "":
		return linsolve.Direct, nil
	case "iterative":
		return linsolve.Iterative, nil
	default:
		return 0, fmt.Errorf("unrecognized --solver %q, want direct or iterative", s)
	}
}

// centroidOf returns the center of the domain's bounding box, a
// reasonable clustering anchor for any of the meshes this module builds
// (the regular n-gon, whose actual centroid is the origin vertex, and
// the unit square, which has none).
func centroidOf(m domain.Mesh) geom2d.Point {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range m.Vertices {
		minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
		minY, maxY = math.Min(minY, v.Y), math.Max(maxY, v.Y)
	}
	return geom2d.Point{X: (minX + maxX) / 2, Y: (minY + maxY) / 2}
}

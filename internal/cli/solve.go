package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/knapsack/bnb"
	"github.com/katalvlaran/knapsack/instance"
)

var (
	errSourceConflict = errors.New("use either --file or --capacity/--item, not both")
	errNoSource       = errors.New("nothing to solve: pass --file or --capacity")
	errBadItemFlag    = errors.New("invalid --item: want WEIGHT:VALUE or NAME=WEIGHT:VALUE")
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	file     string   // instance file (.json, .yaml, .toml)
	capacity int64    // inline capacity
	items    []string // inline items, "W:V" or "NAME=W:V"
	strategy string   // frontier strategy name
	jobs     int      // instances solved concurrently
	quiet    bool     // one "name<TAB>value" line per instance
}

func (c *CLI) solveCommand() *cobra.Command {
	opts := solveOpts{strategy: bnb.BestFirst.String(), jobs: 1}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve an inline instance or every instance of a file",
		Example: `  knapsack solve -c 50 -i 10:60 -i 20:100 -i 30:120
  knapsack solve -f instances.yaml --strategy breadth-first --jobs 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "instance file (.json, .yaml, .yml, .toml)")
	cmd.Flags().Int64VarP(&opts.capacity, "capacity", "c", 0, "capacity of the inline instance")
	cmd.Flags().StringArrayVarP(&opts.items, "item", "i", nil, "inline item as WEIGHT:VALUE or NAME=WEIGHT:VALUE (repeatable)")
	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", opts.strategy, "frontier order: best-first, breadth-first, depth-first")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", opts.jobs, "instances solved concurrently")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "print only name and maximum value")

	return cmd
}

func runSolve(cmd *cobra.Command, opts solveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	strategy, err := bnb.ParseStrategy(opts.strategy)
	if err != nil {
		return err
	}
	if opts.jobs < 1 {
		return fmt.Errorf("--jobs must be at least 1, got %d", opts.jobs)
	}

	inline := cmd.Flags().Changed("capacity") || len(opts.items) > 0
	var instances []instance.Instance
	switch {
	case opts.file != "" && inline:
		return errSourceConflict
	case opts.file != "":
		file, err := instance.Load(opts.file)
		if err != nil {
			return err
		}
		instances = file.Instances
		logger.Debug("Loaded instances", "file", opts.file, "count", len(instances))
	case cmd.Flags().Changed("capacity"):
		in, err := inlineInstance(opts.capacity, opts.items)
		if err != nil {
			return err
		}
		instances = []instance.Instance{in}
	default:
		return errNoSource
	}

	reports, err := solveAll(ctx, instances, strategy, opts.jobs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range reports {
		if opts.quiet {
			printQuiet(out, r)
			continue
		}
		printReport(out, r)
	}
	return nil
}

// solveAll solves every instance with at most jobs searches in flight.
// Reports keep the input order. The first failure cancels the rest.
func solveAll(ctx context.Context, instances []instance.Instance, strategy bnb.Strategy, jobs int) ([]report, error) {
	logger := loggerFromContext(ctx)
	reports := make([]report, len(instances))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, in := range instances {
		i, in := i, in
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p := newProgress(logger)
			res, err := bnb.Knapsack(in.Capacity, in.BnbItems(), bnb.WithStrategy(strategy))
			if err != nil {
				return fmt.Errorf("instance %q: %w", in.Name, err)
			}
			reports[i] = report{inst: in, strategy: strategy, res: res, elapsed: p.elapsed()}
			p.done("Solved", "instance", in.Name, "value", res.Value, "explored", res.Explored, "pruned", res.Pruned)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// inlineInstance builds the instance described by --capacity and --item.
func inlineInstance(capacity int64, specs []string) (instance.Instance, error) {
	in := instance.Instance{Name: "inline", Capacity: capacity, Items: make([]instance.Entry, 0, len(specs))}
	for _, s := range specs {
		e, err := parseItem(s)
		if err != nil {
			return instance.Instance{}, err
		}
		in.Items = append(in.Items, e)
	}
	return in, nil
}

// parseItem parses "WEIGHT:VALUE" or "NAME=WEIGHT:VALUE".
func parseItem(s string) (instance.Entry, error) {
	var e instance.Entry
	spec := strings.TrimSpace(s)
	if name, rest, ok := strings.Cut(spec, "="); ok {
		e.Name = strings.TrimSpace(name)
		spec = rest
	}

	w, v, ok := strings.Cut(spec, ":")
	if !ok {
		return instance.Entry{}, fmt.Errorf("%w: %q", errBadItemFlag, s)
	}
	var err error
	if e.Weight, err = strconv.ParseInt(strings.TrimSpace(w), 10, 64); err != nil {
		return instance.Entry{}, fmt.Errorf("%w: %q: weight: %v", errBadItemFlag, s, err)
	}
	if e.Value, err = strconv.ParseInt(strings.TrimSpace(v), 10, 64); err != nil {
		return instance.Entry{}, fmt.Errorf("%w: %q: value: %v", errBadItemFlag, s, err)
	}
	return e, nil
}

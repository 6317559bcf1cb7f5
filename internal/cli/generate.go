package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/knapsack/instance"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	cfg    instance.GenConfig
	output string // output file; its extension picks the format
}

func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{cfg: instance.DefaultGenConfig()}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a seeded random instance file",
		Long: `Generate writes one random instance to a JSON, YAML or TOML file.
The same flags always produce the same instance; --seed 0 selects the default stream.`,
		Example: `  knapsack generate -n 25 --seed 7 -o random.yaml
  knapsack generate -n 40 --ratio 0.3 -o hard.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.cfg.N, "n", "n", opts.cfg.N, "number of items")
	f.Int64Var(&opts.cfg.Seed, "seed", 0, "random seed (0 = default stream)")
	f.Int64Var(&opts.cfg.MaxWeight, "max-weight", opts.cfg.MaxWeight, "item weights are drawn from [1, max-weight]")
	f.Int64Var(&opts.cfg.MaxValue, "max-value", opts.cfg.MaxValue, "item values are drawn from [0, max-value]")
	f.Float64Var(&opts.cfg.CapacityRatio, "ratio", opts.cfg.CapacityRatio, "capacity as a fraction of the total weight")
	f.StringVar(&opts.cfg.Name, "name", "", "instance name (default random-n<N>-s<seed>)")
	f.StringVarP(&opts.output, "output", "o", "", "output file (.json, .yaml, .yml, .toml)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts generateOpts) error {
	logger := loggerFromContext(cmd.Context())

	in, err := instance.Generate(opts.cfg)
	if err != nil {
		return err
	}
	if err := instance.Save(opts.output, instance.File{Instances: []instance.Instance{in}}); err != nil {
		return err
	}
	logger.Debug("Generated instance", "name", in.Name, "items", len(in.Items), "capacity", in.Capacity)

	out := cmd.OutOrStdout()
	printSuccess(out, "Generated %s (%d items, capacity %d)", in.Name, len(in.Items), in.Capacity)
	printFile(out, opts.output)
	return nil
}

package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/M4RKII11II/v10/internal/order"
	"github.com/M4RKII11II/v10/internal/workload"
)

func NewMedianCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "median",
		Short: "Select the median of a large shuffled sample",
		Long: `Generate a sample whose lower half lies below 1000 and whose upper half lies above it,
add 1000 itself, shuffle it and select the median with a partial ordering.

The selected median is printed to standard output and is always 1000.`,
		RunE: runMedian,
		Args: cobra.NoArgs,
	}

	flags := cmd.Flags()
	addLogFlags(flags)
	addMedianFlags(flags)
	cmd.PreRun = bindMedianFlagsFunc(flags)

	return cmd
}

func runMedian(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	seed := rand.Uint64()
	if cfg.Median.Seed != "" {
		seed = order.SeedFromString(cfg.Median.Seed)
	}
	log = log.With(zap.Uint64("seed", seed))

	res, err := workload.Run(cmd.Context(), log, cfg.Median.Size, cfg.Median.Workers, seed)
	if err != nil {
		return fmt.Errorf("median workload: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Median)
	return err
}

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/M4RKII11II/v10/internal/seq"
	"github.com/M4RKII11II/v10/internal/stats"
)

func NewStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Summarize whitespace-separated numbers",
		Long: `Summarize whitespace-separated numbers read from a file, or from standard input when no file is given.

The summary is printed as JSON to allow piping to other commands, e.g. jq.
Reading stops at the first token that is not a finite number and the command fails.
The command also fails when the summary of the numbers overflows float64.`,
		RunE: runStats,
		Args: cobra.MaximumNArgs(1),
	}

	flags := cmd.Flags()
	addLogFlags(flags)
	addStatsFlags(flags)
	cmd.PreRun = bindStatsFlagsFunc(flags)

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	source := "stdin"
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in, source = f, args[0]
	}

	scanner := seq.Floats(in)
	values := slices.Collect(scanner.All())
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read numbers from %s: %w", source, err)
	}
	log.Debug("read input", zap.String("source", source), zap.Int("count", len(values)))

	summary := stats.Summarize(values, cfg.Stats.Buckets)
	if !summary.Finite() {
		return fmt.Errorf("summarize numbers from %s: %w", source, stats.ErrOverflow)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("error printing summary: %w", err)
	}

	return nil
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cwbudde/algo-fmabench/internal/bench"
	"github.com/cwbudde/algo-fmabench/internal/kernel"
	"github.com/cwbudde/algo-fmabench/internal/report"
	"github.com/cwbudde/algo-fmabench/internal/suite"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetDefault("size", suite.DefaultSize)
	v.SetDefault("repeats", bench.DefaultRepeats)
	v.SetDefault("kernel", kernel.Auto)
	v.SetDefault("seed", suite.DefaultSeed)
	v.SetDefault("verbose", false)

	cmd := &cobra.Command{
		Use:   "fmabench",
		Short: "Compare scalar and batch multiply, add and fused multiply-add",
		Long: `fmabench times float32 multiply, add and fused multiply-add, once over
whole buffers and once element by element, and prints the mean times and
the speedup of the fused operation over a separate multiply and add.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd.ErrOrStderr(), v.GetBool("verbose"))
			return run(cmd.OutOrStdout(), configFrom(v), logger)
		},
	}

	flags := cmd.Flags()
	flags.Int("size", suite.DefaultSize, "number of elements in each benchmark array")
	flags.Int("repeats", bench.DefaultRepeats, "timing repetitions per measurement")
	flags.String("kernel", kernel.Auto,
		fmt.Sprintf("batch kernel: %s or one of %s", kernel.Auto, strings.Join(kernel.Names(), ", ")))
	flags.Uint64("seed", suite.DefaultSeed, "seed for the input generator")
	flags.BoolP("verbose", "v", false, "enable debug logging on stderr")

	// Binding only fails for a nil flag.
	_ = v.BindPFlags(flags)

	return cmd
}

func configFrom(v *viper.Viper) suite.Config {
	return suite.Config{
		Size:    v.GetInt("size"),
		Repeats: v.GetInt("repeats"),
		Seed:    v.GetUint64("seed"),
		Kernel:  v.GetString("kernel"),
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(stdout io.Writer, cfg suite.Config, logger *slog.Logger) error {
	logger.Debug("configuration",
		"size", cfg.Size,
		"repeats", cfg.Repeats,
		"seed", cfg.Seed,
		"kernel", cfg.Kernel,
		"cpu", kernel.DescribeFeatures(cpu.DetectFeatures()))

	s, err := suite.New(cfg, suite.WithLogger(logger))
	if err != nil {
		return err
	}

	res := s.Run()
	logger.Debug("run complete", "kernel", res.Kernel)

	return report.Render(stdout, res)
}

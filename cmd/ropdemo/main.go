package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ib-77/roptask/internal/config"
	"github.com/ib-77/roptask/internal/demo"
	"github.com/ib-77/roptask/internal/logger"
)

type cfgCtxKey struct{}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := createRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func createRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "ropdemo",
		Short: "Railway-oriented pipelines over lazy async tasks",
		Long: `ropdemo runs the bundled scenarios: a dependent user/posts/comments
lookup, two price sources combined concurrently, and a curried sum
over parsed inputs.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupGlobalConfig(cmd)
		},
	}

	root.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	root.AddCommand(postsCmd(), pricesCmd(), applyCmd(), allCmd())
	return root
}

func setupGlobalConfig(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		if cfg.Log.Level, err = flags.GetString("log-level"); err != nil {
			return err
		}
	}
	if flags.Changed("log-json") {
		if cfg.Log.JSON, err = flags.GetBool("log-json"); err != nil {
			return err
		}
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = logger.LogLevel(cfg.Log.Level)
	logCfg.JSON = cfg.Log.JSON
	logCfg.Output = cmd.ErrOrStderr()

	ctx = logger.ContextWithLogger(ctx, logger.NewLogger(logCfg))
	ctx = context.WithValue(ctx, cfgCtxKey{}, cfg)
	cmd.SetContext(ctx)
	return nil
}

func configFrom(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(cfgCtxKey{}).(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

func postsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "posts",
		Short: "Fetch the comments on a user's first post",
		RunE: func(cmd *cobra.Command, _ []string) error {
			runPosts(cmd)
			return nil
		},
	}
}

func pricesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prices",
		Short: "Combine a net price and a tax rate fetched concurrently",
		RunE: func(cmd *cobra.Command, _ []string) error {
			net, err := cmd.Flags().GetFloat64("net")
			if err != nil {
				return err
			}
			rate, err := cmd.Flags().GetFloat64("rate")
			if err != nil {
				return err
			}
			runPrices(cmd, net, rate)
			return nil
		},
	}
	cmd.Flags().Float64("net", 100, "Net price")
	cmd.Flags().Float64("rate", 20, "Tax rate in percent")
	return cmd
}

func applyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <a> <b> <c>",
		Short: "Sum three integers with a curried function",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			runApply(cmd, [3]string{args[0], args[1], args[2]})
			return nil
		},
	}
}

func allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every scenario",
		RunE: func(cmd *cobra.Command, _ []string) error {
			runPosts(cmd)
			runPrices(cmd, 100, 20)
			runApply(cmd, [3]string{"1", "2", "3"})
			runApply(cmd, [3]string{"1", "two", "3"})
			return nil
		},
	}
}

func runPosts(cmd *cobra.Command) {
	ctx := cmd.Context()
	cfg := configFrom(ctx)
	catalog := demo.NewCatalog(cfg.Demo.LookupDelay)
	fmt.Fprintln(cmd.OutOrStdout(), demo.Posts(ctx, catalog, cfg.Demo.UserID))
}

func runPrices(cmd *cobra.Command, net, rate float64) {
	ctx := cmd.Context()
	cfg := configFrom(ctx)
	report := demo.Prices(ctx, cfg.Demo.PriceDelay, cfg.Demo.TaxDelay, net, rate)
	logger.FromContext(ctx).Debug("Price events", "events", report.Events, "elapsed", report.Elapsed)
	fmt.Fprintln(cmd.OutOrStdout(), report.Summary)
}

func runApply(cmd *cobra.Command, inputs [3]string) {
	fmt.Fprintln(cmd.OutOrStdout(), demo.Apply(cmd.Context(), inputs))
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gseq/internal/config"
	"gseq/internal/logging"
	"gseq/internal/sequence"
)

// version is stamped at build time with -ldflags "-X main.version=..."
var version = "dev"

var (
	// Output flags
	separator  string
	terminator string
	equalWidth bool

	// Global flags
	configPath string
	verbose    bool

	// Resolved before RunE
	cfg    *config.Config
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "seq [OPTION]... [FIRST [INCREMENT]] LAST",
	Short: "Print numbers from FIRST to LAST, in steps of INCREMENT",
	Long: `Display numbers from FIRST to LAST, in steps of INCREMENT.

FIRST and INCREMENT default to 1. Operands may be integers of any size or
floating point numbers; negative numbers are accepted as operands.

Examples:
  seq 5            # 1 2 3 4 5, one per line
  seq -w 8 10      # 08 09 10
  seq -s, 0 0.5 2  # 0.0,0.5,1.0,1.5,2.0`,
	Version:       version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if verbose {
			loaded.Logging.DebugMode = true
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", configPath, err)
		}
		cfg = loaded

		if err := logging.Initialize(cfg.Logging); err != nil {
			return err
		}
		logger = logging.Get(logging.CategoryBoot)
		logging.Get(logging.CategoryConfig).Debug("configuration resolved",
			zap.String("path", configPath),
			zap.Bool("equal_width", cfg.Format.EqualWidth))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Sync()
	},
	RunE: runSeq,
}

func init() {
	rootCmd.Flags().StringVarP(&separator, "separator", "s", "\n", "use STRING to separate numbers")
	rootCmd.Flags().StringVarP(&terminator, "terminator", "t", "\n", "use STRING to terminate the sequence")
	rootCmd.Flags().BoolVarP(&equalWidth, "equal-width", "w", false, "equalize width by padding with leading zeroes")
	rootCmd.Flags().BoolVar(&equalWidth, "widths", false, "alias for --equal-width")
	_ = rootCmd.Flags().MarkHidden("widths")

	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML file with default options")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
}

func main() {
	// A closed stdout must surface as EPIPE from Write instead of killing
	// the process.
	signal.Ignore(syscall.SIGPIPE)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the root command and maps the outcome to an exit status.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(normalizeArgs(rootCmd.Flags(), args))
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	return report(stderr, err)
}

// report prints err the way seq does and returns the exit status.
func report(stderr io.Writer, err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	case sequence.IsUsageError(err):
		fmt.Fprintf(stderr, "seq: %v\nTry 'seq --help' for more information.\n", err)
	default:
		fmt.Fprintf(stderr, "seq: %v\n", err)
	}
	return 1
}

// runSeq plans the sequence from the operands and writes it to stdout.
func runSeq(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	opts := resolveOptions(cmd)
	plan, err := sequence.NewPlan(args)
	if err != nil {
		logger.Debug("rejected operands", zap.Strings("args", args), zap.Error(err))
		return err
	}
	logger.Debug("writing sequence", zap.Stringer("plan", plan))

	if err := sequence.WriteContext(ctx, cmd.OutOrStdout(), plan, opts); err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}

// resolveOptions layers flags set on the command line over the config file
// and environment.
func resolveOptions(cmd *cobra.Command) sequence.Options {
	opts := sequence.DefaultOptions()
	if cfg != nil {
		opts.Separator = cfg.Format.Separator
		opts.Terminator = cfg.Format.Terminator
		opts.EqualWidth = cfg.Format.EqualWidth
	}

	flags := cmd.Flags()
	if flags.Changed("separator") {
		opts.Separator = separator
	}
	if flags.Changed("terminator") {
		opts.Terminator = terminator
	}
	if flags.Changed("equal-width") || flags.Changed("widths") {
		opts.EqualWidth = equalWidth
	}
	return opts
}

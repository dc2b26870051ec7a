package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/kataras/barlib"
	"github.com/kataras/barlib/pkg/formatter"
	"github.com/kataras/barlib/pkg/ident"
	"github.com/kataras/barlib/pkg/notify"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = barlib.Version

var (
	verbose bool
	jsonLog bool

	dialog     bool
	uuidCount  int
	uuidCheck  string
	outputFile string
	radiiStr   string
	pairsStr   string

	// newLib builds the library for a command; tests swap it for fakes.
	newLib = barlib.New
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logger barlib.Logger
	var syncLog func()

	rootCmd := &cobra.Command{
		Use:           "barlib",
		Short:         "BAR scripting conveniences from the command line",
		Long:          "Loading acknowledgement, clipboard text, random identifiers, GCD and sphere metrics for macros running next to an image-processing host",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !jsonLog {
				logger = &cliLogger{verbose: verbose}
				syncLog = func() {}
				return nil
			}

			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			zl, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = &zapLogger{s: zl.Sugar()}
			syncLog = func() { _ = zl.Sync() }
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if syncLog != nil {
				syncLog()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print progress messages")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json-log", false, "Log as JSON to stderr instead of colored text")

	lib := func(cmd *cobra.Command) *barlib.Lib {
		opts := barlib.Options{
			Notifier: notify.NewConsole(cmd.OutOrStdout()),
			Logger:   logger,
		}
		if dialog {
			opts.Notifier = notify.NewDialog(cmd.OutOrStdout(), "BAR")
		}
		return newLib(opts)
	}

	confirmCmd := &cobra.Command{
		Use:   "confirm",
		Short: "Show the library loaded acknowledgement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return lib(cmd).ConfirmLoading()
		},
	}
	confirmCmd.Flags().BoolVar(&dialog, "dialog", false, "Show the message in a box")

	clipboardCmd := &cobra.Command{
		Use:   "clipboard",
		Short: "Print the clipboard text (empty if the clipboard holds no text)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := lib(cmd).ClipboardText()
			if err != nil {
				return fmt.Errorf("read clipboard: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}

	uuidCmd := &cobra.Command{
		Use:   "uuid",
		Short: "Print random identifiers or validate one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("check") {
				if !ident.Valid(uuidCheck) {
					return fmt.Errorf("%q is not a canonical UUID", uuidCheck)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "valid")
				return nil
			}
			if uuidCount < 1 {
				return fmt.Errorf("count must be positive, got %d", uuidCount)
			}
			for i := 0; i < uuidCount; i++ {
				fmt.Fprintln(cmd.OutOrStdout(), barlib.RandomString())
			}
			return nil
		},
	}
	uuidCmd.Flags().IntVarP(&uuidCount, "count", "n", 1, "Number of identifiers to print")
	uuidCmd.Flags().StringVar(&uuidCheck, "check", "", "Validate the given identifier instead of generating")

	gcdCmd := &cobra.Command{
		Use:   "gcd A B",
		Short: "Print the greatest common divisor of two integers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid integer %q: %w", args[0], err)
			}
			b, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid integer %q: %w", args[1], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), barlib.GCD(a, b))
			return nil
		},
	}

	sphereCmd := &cobra.Command{
		Use:   "sphere R",
		Short: "Print the surface area and volume of a sphere of radius R",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid radius %q: %w", args[0], err)
			}
			area, volume := barlib.SphereCalc(r)
			fmt.Fprintf(cmd.OutOrStdout(), "area: %g\nvolume: %g\n", area, volume)
			return nil
		},
	}

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Write a markdown report of every operation",
		Args:  cobra.NoArgs,
		RunE:  runReport(lib),
	}
	reportCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output markdown file (default stdout)")
	reportCmd.Flags().StringVar(&radiiStr, "radii", "1", "Comma-separated sphere radii (e.g. \"0,1,2.5\")")
	reportCmd.Flags().StringVar(&pairsStr, "pairs", "48:18", "Comma-separated GCD pairs (e.g. \"48:18,17:0\")")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "barlib version %s\n", version)
		},
	}

	rootCmd.AddCommand(confirmCmd, clipboardCmd, uuidCmd, gcdCmd, sphereCmd, reportCmd, versionCmd)
	return rootCmd
}

func runReport(lib func(*cobra.Command) *barlib.Lib) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		radii, err := barlib.ParseRadii(radiiStr)
		if err != nil {
			return err
		}
		pairs, err := barlib.ParsePairs(pairsStr)
		if err != nil {
			return err
		}

		report := lib(cmd).Report(pairs, radii)
		markdown := formatter.ToMarkdown(report, time.Now().Format("2006-01-02 15:04"))

		if outputFile == "" {
			fmt.Fprint(cmd.OutOrStdout(), markdown)
			return nil
		}

		if err := os.WriteFile(outputFile, []byte(markdown), 0644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "✨ Report written to %s\n", outputFile)
		return nil
	}
}

// cliLogger implements barlib.Logger with colored terminal output on stderr.
type cliLogger struct {
	verbose bool
}

func (l *cliLogger) Infof(format string, args ...any) {
	if l.verbose {
		color.New(color.FgYellow).Fprintf(os.Stderr, format+"\n", args...)
	}
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(os.Stderr, "⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Fprintf(os.Stderr, "✗ "+format+"\n", args...)
}

// zapLogger implements barlib.Logger on top of a zap SugaredLogger.
type zapLogger struct {
	s *zap.SugaredLogger
}

func (l *zapLogger) Infof(format string, args ...any)  { l.s.Infof(format, args...) }
func (l *zapLogger) Warnf(format string, args ...any)  { l.s.Warnf(format, args...) }
func (l *zapLogger) Errorf(format string, args ...any) { l.s.Errorf(format, args...) }

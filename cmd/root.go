package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/clems4ever/token-sorter/sorting"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// logLevelEnv names the variable that sets the trace level, e.g. "debug".
const logLevelEnv = "TOKEN_SORTER_LOG_LEVEL"

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token-sorter [-sortingType natural|count] [-dataType long|line|word] [-inputFile path] [-outputFile path]",
		Short: "Sort or count lines, words and integers",
		Long: `Token Sorter reads text from a file or standard input, splits it into 
lines, words or integers, and prints them either sorted in natural order 
or ranked by how often each value occurs.

Set ` + logLevelEnv + `=debug to trace the run on standard error.`,
		// Flags are single-dash and unknown ones are skipped with a warning,
		// which pflag cannot express, so the raw arguments go to the parser.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return sorting.Run(cmd.Context(), args, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// newLogger builds the trace logger. An empty or unknown level leaves
// tracing at warn, which the run never emits.
func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().Timestamp().Logger()
}

func Execute() {
	logger := newLogger(os.Stderr, os.Getenv(logLevelEnv))
	err := rootCmd.ExecuteContext(logger.WithContext(context.Background()))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Package main implements the pathutils CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	pathutils "github.com/gemini-testing/path-utils/internal"
	"github.com/gemini-testing/path-utils/internal/except"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNotAllMasks = errors.New("not all specifications are masks")

// isTerminal is swapped out for testing.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func main() {
	slog.SetDefault(pathutils.NewLogger(slog.LevelDebug))

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{Use: "pathutils", SilenceUsage: true}
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to configuration")
	rootCmd.AddCommand(newExpandCmd(&configPath), newClassifyCmd())
	return rootCmd
}

func newExpandCmd(configPath *string) *cobra.Command {
	var (
		root, policy    string
		formats, ignore []string
		filesOnly, null bool
		concurrency     int
	)

	cmd := &cobra.Command{
		Use:   "expand SPEC...",
		Short: "Expand files, directories and masks into absolute file paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(*configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("root") {
				opts.Root = root
			}
			if flags.Changed("format") {
				opts.Formats = formats
			}
			if flags.Changed("policy") {
				if opts.Policy, err = pathutils.MatchPolicyString(policy); err != nil {
					return err
				}
			}
			if flags.Changed("ignore") {
				opts.Glob.Ignore = ignore
			}
			if flags.Changed("files-only") {
				opts.Glob.FilesOnly = &filesOnly
			}
			if flags.Changed("concurrency") {
				opts.Concurrency = concurrency
			}

			files, err := pathutils.Expand(cmd.Context(), *opts, args...)
			if err != nil {
				return err
			}
			sep := "\n"
			if null {
				sep = "\x00"
			}
			out := cmd.OutOrStdout()
			for _, fp := range files {
				fmt.Fprint(out, fp, sep)
			}
			if isTerminal(out) {
				fmt.Fprintf(cmd.ErrOrStderr(), "Found %d file(s).\n", len(files))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&root, "root", "", "directory against which relative specifications are resolved")
	flags.StringSliceVar(&formats, "format", nil, "allowed file extension, including its leading dot")
	flags.StringVar(&policy, "policy", "strict", fmt.Sprintf(
		"handling of specifications matching nothing (%s)",
		strings.Join(pathutils.MatchPolicyStrings(), ", "),
	))
	except.Require(cmd.RegisterFlagCompletionFunc("policy", completePolicy))
	flags.StringSliceVar(&ignore, "ignore", nil, "mask of paths to exclude")
	flags.BoolVar(&filesOnly, "files-only", false, "never match directories")
	flags.IntVar(&concurrency, "concurrency", 0, "maximum number of concurrent tasks (0 is unbounded)")
	flags.BoolVarP(&null, "null", "0", false, "terminate paths with NUL instead of newlines")
	return cmd
}

func completePolicy(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return pathutils.MatchPolicyStrings(), cobra.ShellCompDirectiveNoFileComp
}

func newClassifyCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "classify SPEC...",
		Short: "Show whether specifications are masks or paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, spec := range args {
				kind := "path"
				if pathutils.IsMask(spec) {
					kind = "mask"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", kind, spec)
			}
			if all && !pathutils.IsAllMasks(args) {
				return errNotAllMasks
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "fail unless all specifications are masks")
	return cmd
}

// loadOptions reads the configuration at fp if set. Otherwise the working directory's
// configuration is used when present, and defaults when not.
func loadOptions(fp string) (*pathutils.Options, error) {
	if fp != "" {
		return pathutils.ParseConfig(fp)
	}
	opts, err := pathutils.ParseConfig(".")
	if errors.Is(err, pathutils.ErrMissingConfig) {
		return &pathutils.Options{}, nil
	}
	return opts, err
}

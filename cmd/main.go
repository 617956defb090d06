// Package main implements the typedpath CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	typedpath "github.com/mtth/typedpath/internal"
	"github.com/mtth/typedpath/platform"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	configPath   string
	platformName string
	logLevel     string

	labelColor = color.New(color.FgCyan)
	dirColor   = color.New(color.FgBlue, color.Bold)
	errColor   = color.New(color.FgRed)
)

func main() {
	ctx := context.Background()
	color.NoColor = color.NoColor || !term.IsTerminal(int(os.Stdout.Fd()))

	joinCmd := &cobra.Command{
		Use:   "join SEGMENT...",
		Short: "Join segments without resolving them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			fmt.Println(s.Join(args...)) //nolint:forbidigo
			return nil
		},
	}

	combineCmd := &cobra.Command{
		Use:   "combine BASE [SEGMENT...]",
		Short: "Append segments to a path and resolve the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			p, err := s.Combine(args[0], args[1:]...)
			if err != nil {
				return err
			}
			fmt.Println(p) //nolint:forbidigo
			return nil
		},
	}

	resolveCmd := &cobra.Command{
		Use:   "resolve BASE RELATIVE",
		Short: "Resolve a relative path against a path",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			p, err := s.Resolve(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Println(p) //nolint:forbidigo
			return nil
		},
	}

	relativeCmd := &cobra.Command{
		Use:   "relative SOURCE DESTINATION",
		Short: "Show the relative path from a file to another",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			p, err := s.Relative(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Println(p) //nolint:forbidigo
			return nil
		},
	}

	detectCmd := &cobra.Command{
		Use:   "detect PATH...",
		Short: "Show the platform paths were written for",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			for _, arg := range args {
				p, err := typedpath.Detect(arg)
				if err != nil {
					return err
				}
				fmt.Printf("%s\t%s\n", labelColor.Sprint(p), arg) //nolint:forbidigo
			}
			return nil
		},
	}

	var listOpts typedpath.ListOptions
	listCmd := &cobra.Command{
		Use:   "list [DIRECTORY]",
		Short: "List files or directories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			seq, err := s.List(dir, listOpts)
			if err != nil {
				return err
			}
			for p, err := range seq {
				if err != nil {
					return err
				}
				if listOpts.Directories {
					p = dirColor.Sprint(p)
				}
				fmt.Println(p) //nolint:forbidigo
			}
			return nil
		},
	}
	listFlags := listCmd.Flags()
	listFlags.StringVarP((*string)(&listOpts.Pattern), "pattern", "p", "*", "glob matched against names")
	listFlags.StringVarP(&listOpts.Regexp, "regexp", "e", "", "regular expression matched against names")
	listFlags.BoolVarP(&listOpts.Directories, "directories", "d", false, "list directories instead of files")
	listFlags.BoolVarP(&listOpts.Recursive, "recursive", "r", false, "descend into subdirectories")

	var recursiveDelete bool
	deleteCmd := &cobra.Command{
		Use:   "delete PATH",
		Short: "Delete a file or directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := newSession()
			if err != nil {
				return err
			}
			return s.Delete(args[0], recursiveDelete)
		},
	}
	deleteCmd.Flags().BoolVarP(&recursiveDelete, "recursive", "r", false, "delete non-empty directories")

	var humanize bool
	describeCmd := &cobra.Command{
		Use:       "describe KIND VALUE",
		Short:     "Label a value with its type",
		Long:      "Label a value with its type. Kinds: " + strings.Join(typedpath.Kinds(), ", ") + ".",
		Args:      cobra.ExactArgs(2),
		ValidArgs: typedpath.Kinds(),
		RunE: func(_ *cobra.Command, args []string) error {
			label, err := typedpath.Describe(args[0], args[1], humanize)
			if err != nil {
				return err
			}
			name, value, _ := strings.Cut(label, ": ")
			fmt.Printf("%s: %s\n", labelColor.Sprint(name), value) //nolint:forbidigo
			return nil
		},
	}
	describeCmd.Flags().BoolVarP(&humanize, "humanize", "H", false, "show readable type names")

	var release func()
	rootCmd := &cobra.Command{
		Use:           "typedpath",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(logLevel)); err != nil {
				return err
			}
			release = typedpath.SetupLogging(level)
			return nil
		},
	}
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootFlags := rootCmd.PersistentFlags()
	rootFlags.StringVarP(&configPath, "config", "c", "", "path to configuration")
	rootFlags.StringVar(&platformName, "platform", "", "platform overriding the configured one")
	rootFlags.StringVar(&logLevel, "log-level", "info", "minimum level of logged records")
	rootCmd.AddCommand(
		joinCmd,
		combineCmd,
		resolveCmd,
		relativeCmd,
		detectCmd,
		listCmd,
		deleteCmd,
		describeCmd,
	)

	err := rootCmd.ExecuteContext(ctx)
	if release != nil {
		release()
	}
	if err != nil {
		errColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newSession() (*typedpath.Session, error) {
	cfg, err := typedpath.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if platformName != "" {
		p, err := platform.PlatformString(platformName)
		if err != nil {
			return nil, err
		}
		cfg.Platform = &p
	}
	return typedpath.NewSession(cfg)
}

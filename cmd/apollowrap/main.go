package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/go-logr/stdr"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/vvakame/apollowrap/internal/codegen"
	ilog "github.com/vvakame/apollowrap/internal/log"
)

// version is overwritten at release build time.
var version = "dev"

func main() {
	err := realMain()
	if err != nil {
		os.Exit(1)
	}
}

func realMain() error {
	logger := stdr.New(log.New(os.Stderr, "", log.LstdFlags))
	ctx := ilog.WithLogger(context.Background(), logger)

	cmd := newRootCmd(afero.NewOsFs(), os.Stdout)
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		logger.Error(err, "apollowrap failed")
		return err
	}

	return nil
}

type rootOptions struct {
	config  string
	dryRun  bool
	verbose bool
}

func newRootCmd(fs afero.Fs, stdout io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "apollowrap",
		Short: "Generate typed Apollo client wrappers for GraphQL operations",
		Long: heredoc.Doc(`
			apollowrap reads a codegen configuration and writes, for every target that lists
			the apollo-client-wrappers plugin, one wrapper function per named operation.

			Targets must also list the typescript and typescript-operations plugins, which
			provide the result, variables and document symbols the wrappers refer to.
		`),
		Example:       "apollowrap --config codegen.yml --dry-run",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if opts.verbose {
				stdr.SetVerbosity(1)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := newRunner(fs, opts)
			if err != nil {
				return err
			}
			if opts.dryRun {
				r.DryRun = stdout
			}
			return r.Run(cmd.Context())
		},
	}
	cmd.SetOut(stdout)

	cmd.PersistentFlags().StringVarP(&opts.config, "config", "c", "codegen.yml", "Path to the codegen configuration file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Output debug logging")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print generated files instead of writing them")

	cmd.AddCommand(newValidateCmd(fs, opts), newVersionCmd())

	return cmd
}

func newRunner(fs afero.Fs, opts *rootOptions) (*codegen.Runner, error) {
	cfg, err := codegen.LoadConfig(fs, opts.config)
	if err != nil {
		return nil, err
	}
	return &codegen.Runner{Fs: fs, Config: cfg}, nil
}

func newValidateCmd(fs afero.Fs, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the plugin configuration of every wrapper target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := newRunner(fs, opts)
			if err != nil {
				return err
			}
			if err := r.Validate(cmd.Context()); err != nil {
				return err
			}

			cmd.Println("configuration is valid")
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("apollowrap %s\n", version)
		},
	}
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/janolinej/internal/buildinfo"
	"github.com/dmitrijs2005/janolinej/internal/cli"
	"github.com/dmitrijs2005/janolinej/internal/config"
	"github.com/dmitrijs2005/janolinej/internal/filex"
	"github.com/dmitrijs2005/janolinej/internal/logging"
	"github.com/dmitrijs2005/janolinej/internal/store"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// newRootCmd builds the janol command tree bound to the given streams.
func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "janol",
		Short: "Janol.Inej - records for an electrical contracting business",
		Long: `Janol.Inej keeps users, clients and projects of an electrical contracting
business in an in-memory store that is created and seeded on every launch.

Run without arguments to start the interactive session.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, in, out, errOut, func(ctx context.Context, app *cli.App) error {
				return app.Run(ctx)
			})
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	config.RegisterFlags(root.PersistentFlags())

	report := &cobra.Command{
		Use:   "report",
		Short: "Print the reports screen for a freshly seeded store and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, in, out, errOut, func(ctx context.Context, app *cli.App) error {
				return app.PrintReport(ctx)
			})
		},
	}

	version := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			buildinfo.PrintBuildData(cmd.OutOrStdout())
		},
	}

	root.AddCommand(report, version)
	return root
}

// withSession loads the configuration, builds the logger, opens a fresh
// store and hands an App over it to fn.
func withSession(cmd *cobra.Command, in io.Reader, out, errOut io.Writer, fn func(context.Context, *cli.App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, closeLog, err := newLogger(cfg, errOut)
	if err != nil {
		return err
	}
	defer closeLog()

	log = log.With("session", uuid.NewString())

	st, err := store.Open(ctx)
	if err != nil {
		log.Error(ctx, "store initialization failed", "err", err)
		return err
	}
	defer st.Close()
	log.Debug(ctx, "store ready", "name", st.Name())

	return fn(ctx, cli.NewApp(st, cfg, log, in, out))
}

// newLogger builds the configured logger. The returned func flushes it and
// closes the log file, if any.
func newLogger(cfg *config.Config, errOut io.Writer) (logging.Logger, func(), error) {
	w := errOut
	var f *os.File
	if cfg.LogFile != "" {
		var err error
		f, err = filex.OpenAppend(cfg.LogFile)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
	}

	log, err := logging.New(logging.Options{
		Backend: cfg.LogBackend,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Output:  w,
	})
	if err != nil {
		if f != nil {
			_ = f.Close()
		}
		return nil, nil, err
	}

	closeFn := func() {
		if z, ok := log.(*logging.ZapLogger); ok {
			_ = z.Sync()
		}
		if f != nil {
			_ = f.Close()
		}
	}
	return log, closeFn, nil
}

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/cookbook/internal/editor"
	"github.com/roach88/cookbook/internal/store"
)

// StoreOptions holds flags for commands backed by the recipe database.
type StoreOptions struct {
	*RootOptions
	Database string
}

func addDatabaseFlag(cmd *cobra.Command, opts *StoreOptions) {
	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	_ = cmd.MarkFlagRequired("db")
}

// withStore opens the database, runs fn and closes it.
func withStore(opts *StoreOptions, cmd *cobra.Command, formatter *OutputFormatter, fn func(context.Context, *store.Store) error) error {
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())

	st, err := store.Open(opts.Database, store.WithLogger(logger))
	if err != nil {
		return fail(formatter, ErrCodeStoreFailed, fmt.Sprintf("opening database %s: %v", opts.Database, err), err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx, st)
}

// storeError maps store failures onto CLI error codes.
func storeError(formatter *OutputFormatter, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return fail(formatter, ErrCodeNotFound, err.Error(), err)
	}
	return fail(formatter, ErrCodeStoreFailed, err.Error(), err)
}

// SaveResult is the payload of the save command.
type SaveResult struct {
	ID      string `json:"id"`
	Version int    `json:"version"`
}

// NewSaveCommand creates the save command.
func NewSaveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StoreOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "save <document>",
		Short: "Repair, validate and store a recipe",
		Long: `Store a recipe document as the next version of its id.

Positions are repaired first. If the document then fails validation the
errors are printed and nothing is written.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSave(opts, args[0], cmd)
		},
	}
	addDatabaseFlag(cmd, opts)

	return cmd
}

func runSave(opts *StoreOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	session, err := openSession(opts.RootOptions, path, cmd)
	if err != nil {
		return outputLoadError(formatter, err)
	}

	return withStore(opts, cmd, formatter, func(ctx context.Context, st *store.Store) error {
		version, err := session.Save(ctx, st)
		var invalid *editor.InvalidError
		if errors.As(err, &invalid) {
			return outputValidationErrors(formatter, invalid.Errors)
		}
		if err != nil {
			return storeError(formatter, err)
		}

		if formatter.Format == "json" {
			return formatter.Success(SaveResult{ID: session.ID(), Version: version})
		}
		fmt.Fprintf(formatter.Writer, "✓ Saved %s version %d\n", session.ID(), version)
		return nil
	})
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StoreOptions{RootOptions: rootOpts}
	var (
		version int
		output  string
	)

	cmd := &cobra.Command{
		Use:           "show <recipe-id>",
		Short:         "Print a stored recipe",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(opts.RootOptions, cmd)
			return withStore(opts, cmd, formatter, func(ctx context.Context, st *store.Store) error {
				if version > 0 {
					doc, err := st.LoadVersion(ctx, args[0], version)
					if err != nil {
						return storeError(formatter, err)
					}
					return outputDocument(formatter, doc, output)
				}
				rec, err := st.Load(ctx, args[0])
				if err != nil {
					return storeError(formatter, err)
				}
				formatter.VerboseLog("Loaded %s version %d", rec.ID, rec.Version)
				return outputDocument(formatter, rec.Document, output)
			})
		},
	}
	addDatabaseFlag(cmd, opts)
	cmd.Flags().IntVar(&version, "version", 0, "show this saved version instead of the latest")
	cmd.Flags().StringVarP(&output, "output", "o", "", "also write the document to this file")

	return cmd
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StoreOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List stored recipes",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(opts.RootOptions, cmd)
			return withStore(opts, cmd, formatter, func(ctx context.Context, st *store.Store) error {
				summaries, err := st.List(ctx)
				if err != nil {
					return storeError(formatter, err)
				}
				if formatter.Format == "json" {
					return formatter.Success(summaries)
				}
				renderSummaries(formatter.Writer, summaries)
				return nil
			})
		},
	}
	addDatabaseFlag(cmd, opts)

	return cmd
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StoreOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "history <recipe-id>",
		Short:         "List the saved versions of a recipe",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(opts.RootOptions, cmd)
			return withStore(opts, cmd, formatter, func(ctx context.Context, st *store.Store) error {
				revisions, err := st.History(ctx, args[0])
				if err != nil {
					return storeError(formatter, err)
				}
				if formatter.Format == "json" {
					return formatter.Success(revisions)
				}
				for _, rev := range revisions {
					fmt.Fprintf(formatter.Writer, "v%d  seq %d\n", rev.Version, rev.Seq)
				}
				return nil
			})
		},
	}
	addDatabaseFlag(cmd, opts)

	return cmd
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StoreOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "delete <recipe-id>",
		Short:         "Delete a stored recipe and its history",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(opts.RootOptions, cmd)
			return withStore(opts, cmd, formatter, func(ctx context.Context, st *store.Store) error {
				if err := st.Delete(ctx, args[0]); err != nil {
					return storeError(formatter, err)
				}
				if formatter.Format == "json" {
					return formatter.Success(SaveResult{ID: args[0]})
				}
				fmt.Fprintf(formatter.Writer, "✓ Deleted %s\n", args[0])
				return nil
			})
		},
	}
	addDatabaseFlag(cmd, opts)

	return cmd
}

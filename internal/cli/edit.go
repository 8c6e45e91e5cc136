package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/cookbook/internal/editor"
	"github.com/roach88/cookbook/internal/recipe"
)

// EditOptions are shared by every command that rewrites a document.
type EditOptions struct {
	*RootOptions
	List   string
	Output string
}

func addEditFlags(cmd *cobra.Command, opts *EditOptions) {
	cmd.Flags().StringVarP(&opts.List, "list", "l", string(editor.Ingredients), "list to edit (ingredients|instructions)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write the result to this file instead of only printing it")
}

// parseList checks a --list value.
func parseList(s string) (editor.List, error) {
	switch l := editor.List(s); l {
	case editor.Ingredients, editor.Instructions:
		return l, nil
	default:
		return "", fmt.Errorf("invalid list %q: must be ingredients or instructions", s)
	}
}

// runEdit loads path into a session, applies fn and reports the result.
func runEdit(opts *EditOptions, path string, cmd *cobra.Command, fn func(*editor.Session, editor.List) error) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	list, err := parseList(opts.List)
	if err != nil {
		return fail(formatter, ErrCodeBadArgument, err.Error(), err)
	}

	session, err := openSession(opts.RootOptions, path, cmd)
	if err != nil {
		return outputLoadError(formatter, err)
	}

	if err := fn(session, list); err != nil {
		return fail(formatter, ErrCodeEditRejected, err.Error(), err)
	}

	return outputDocument(formatter, session.Document(), opts.Output)
}

// openSession loads a document and opens it for editing.
func openSession(opts *RootOptions, path string, cmd *cobra.Command) (*editor.Session, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return editor.NewSession(doc,
		editor.WithIDGenerator(newGenerator(opts)),
		editor.WithLogger(newLogger(opts, cmd.ErrOrStderr())),
	), nil
}

// outputDocument optionally writes doc to a file, then prints it.
func outputDocument(formatter *OutputFormatter, doc recipe.Document, output string) error {
	if output != "" {
		if err := WriteDocument(output, doc); err != nil {
			return fail(formatter, ErrCodeWriteFailed, err.Error(), err)
		}
		formatter.VerboseLog("Wrote %s", output)
	}

	if formatter.Format == "json" {
		return formatter.Success(doc)
	}
	renderDocument(formatter.Writer, doc)
	return nil
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EditOptions{RootOptions: rootOpts}
	var to string

	cmd := &cobra.Command{
		Use:   "convert <document>",
		Short: "Switch a list between flat and sectioned",
		Long: `Switch one list of a recipe between a flat list and named sections.

Converting to sections wraps every item into one default section.
Converting to flat concatenates sections in order; an empty result gets
one blank placeholder item.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(opts, args[0], cmd, func(s *editor.Session, list editor.List) error {
				switch recipe.Mode(to) {
				case recipe.ModeSectioned:
					return s.OrganizeIntoSections(list)
				case recipe.ModeFlat:
					return s.UseSimpleList(list)
				default:
					return fmt.Errorf("invalid --to %q: must be flat or sectioned", to)
				}
			})
		},
	}
	addEditFlags(cmd, opts)
	cmd.Flags().StringVar(&to, "to", string(recipe.ModeSectioned), "target mode (flat|sectioned)")

	return cmd
}

// NewReorderCommand creates the reorder command.
func NewReorderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EditOptions{RootOptions: rootOpts}
	var (
		scope    string
		from, to int
	)

	cmd := &cobra.Command{
		Use:   "reorder <document>",
		Short: "Move an item within one scope",
		Long: `Move the item at --from to --to within one scope and renumber the scope.

--scope is "flat" for a flat list, a section id for items of that section,
or "sections" to reorder whole sections. Both indexes must exist.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(opts, args[0], cmd, func(s *editor.Session, list editor.List) error {
				return s.Drop(list, editor.DropEvent{
					SourceIndex: from,
					DestIndex:   to,
					SourceScope: scope,
					DestScope:   scope,
				})
			})
		},
	}
	addEditFlags(cmd, opts)
	cmd.Flags().StringVar(&scope, "scope", editor.FlatScope, "scope to reorder (flat|sections|<section id>)")
	cmd.Flags().IntVar(&from, "from", 0, "current index")
	cmd.Flags().IntVar(&to, "to", 0, "new index")

	return cmd
}

// NewMoveCommand creates the move command.
func NewMoveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EditOptions{RootOptions: rootOpts}
	var ev editor.DropEvent

	cmd := &cobra.Command{
		Use:   "move <document>",
		Short: "Move an item from one section to another",
		Long: `Move the item at --from of section --from-section to index --to of
section --to-section. The destination index is clamped to the section
length; both sections are renumbered from 0.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(opts, args[0], cmd, func(s *editor.Session, list editor.List) error {
				if ev.SourceScope == editor.NoTarget || ev.DestScope == editor.NoTarget {
					return fmt.Errorf("--from-section and --to-section are required")
				}
				return s.Drop(list, ev)
			})
		},
	}
	addEditFlags(cmd, opts)
	cmd.Flags().StringVar(&ev.SourceScope, "from-section", "", "source section id")
	cmd.Flags().StringVar(&ev.DestScope, "to-section", "", "destination section id")
	cmd.Flags().IntVar(&ev.SourceIndex, "from", 0, "index in the source section")
	cmd.Flags().IntVar(&ev.DestIndex, "to", 0, "index in the destination section")

	return cmd
}

// NewRepairCommand creates the repair command.
func NewRepairCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EditOptions{RootOptions: rootOpts}
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "repair <document>",
		Short: "Detect and fix duplicate, missing or negative positions",
		Long: `Report every scope whose positions are not exactly 0..n-1 in list order,
then renumber them keeping the current item order. With --dry-run only the
report is printed.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepair(opts, args[0], dryRun, cmd)
		},
	}
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write the repaired document to this file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report problems without repairing")

	return cmd
}

// RepairResult is the JSON payload of the repair command.
type RepairResult struct {
	Report   editor.RepairReport `json:"report"`
	Document *recipe.Document    `json:"document,omitempty"`
}

func runRepair(opts *EditOptions, path string, dryRun bool, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	session, err := openSession(opts.RootOptions, path, cmd)
	if err != nil {
		return outputLoadError(formatter, err)
	}

	if dryRun {
		report := session.Diagnose()
		if formatter.Format == "json" {
			return formatter.Success(RepairResult{Report: report})
		}
		renderRepair(formatter.Writer, report)
		return nil
	}

	report := session.Repair()
	doc := session.Document()
	if opts.Output != "" {
		if err := WriteDocument(opts.Output, doc); err != nil {
			return fail(formatter, ErrCodeWriteFailed, err.Error(), err)
		}
		formatter.VerboseLog("Wrote %s", opts.Output)
	}

	if formatter.Format == "json" {
		return formatter.Success(RepairResult{Report: report, Document: &doc})
	}
	renderRepair(formatter.Writer, report)
	fmt.Fprintln(formatter.Writer)
	renderDocument(formatter.Writer, doc)
	return nil
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/cookbook/internal/editor"
)

// NewSectionCommand creates the section command group.
func NewSectionCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "section",
		Short: "Add, remove or rename sections",
	}

	cmd.AddCommand(newSectionAddCommand(rootOpts))
	cmd.AddCommand(newSectionRemoveCommand(rootOpts))
	cmd.AddCommand(newSectionRenameCommand(rootOpts))

	return cmd
}

func newSectionAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EditOptions{RootOptions: rootOpts}
	var name string

	cmd := &cobra.Command{
		Use:           "add <document>",
		Short:         "Append an empty section",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(opts, args[0], cmd, func(s *editor.Session, list editor.List) error {
				_, err := s.AddSection(list, name)
				return err
			})
		},
	}
	addEditFlags(cmd, opts)
	cmd.Flags().StringVar(&name, "name", "", "section name")

	return cmd
}

func newSectionRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EditOptions{RootOptions: rootOpts}
	var id string

	cmd := &cobra.Command{
		Use:           "remove <document>",
		Short:         "Remove a section and its items",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(opts, args[0], cmd, func(s *editor.Session, list editor.List) error {
				return s.RemoveSection(list, id)
			})
		},
	}
	addEditFlags(cmd, opts)
	cmd.Flags().StringVar(&id, "id", "", "section id")

	return cmd
}

func newSectionRenameCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EditOptions{RootOptions: rootOpts}
	var id, name string

	cmd := &cobra.Command{
		Use:           "rename <document>",
		Short:         "Rename a section",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(opts, args[0], cmd, func(s *editor.Session, list editor.List) error {
				return s.RenameSection(list, id, name)
			})
		},
	}
	addEditFlags(cmd, opts)
	cmd.Flags().StringVar(&id, "id", "", "section id")
	cmd.Flags().StringVar(&name, "name", "", "new section name")

	return cmd
}

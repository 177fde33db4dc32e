package app

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/bjaus/datagrid"
	"github.com/bjaus/datagrid/internal/pages"
)

func newPagesCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "List the available pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.resolve(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return writePages(cmd, s)
		},
	}
}

func writePages(cmd *cobra.Command, s *settings) error {
	g, err := datagrid.New(
		[]datagrid.Column[pages.Page]{
			{ID: "name", Header: "Page", Render: pages.Page.Name},
			{ID: "title", Header: "Title", Render: pages.Page.Title},
			{ID: "statuses", Header: "Statuses", Render: func(p pages.Page) string { return strings.Join(p.Statuses(), ", ") }},
			{ID: "sort", Header: "Sort fields", Render: func(p pages.Page) string { return strings.Join(p.SortFields(), ", ") }},
		},
		pages.Page.Name,
		datagrid.WithBorder[pages.Page](s.border),
		datagrid.WithEmptyMessage[pages.Page](s.emptyMessage),
	)
	if err != nil {
		return err
	}
	return g.Render(pages.All(), datagrid.Selection{}).Write(cmd.OutOrStdout(), s.format)
}

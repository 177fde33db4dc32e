package app

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bjaus/datagrid"
	"github.com/bjaus/datagrid/internal/pages"
)

type showOptions struct {
	search     string
	status     string
	sort       string
	descending bool
	page       int
	limit      int
	selected   []string
	toggle     []string
	toggleAll  bool
	clearAll   bool
	prune      bool
	click      string
	open       string
}

func newShowCommand(global *globalOptions) *cobra.Command {
	o := &showOptions{}
	cmd := &cobra.Command{
		Use:   "show <page>",
		Short: "Render one page",
		Example: `  gridview show invoices --status overdue
  gridview show contacts --search lee --sort score --desc --format markdown
  gridview show bookings --select BK-2201 --toggle BK-2202
  gridview show shipments --click SHP-77003`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := global.resolve(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return o.run(cmd, s, args[0])
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&o.search, "search", "s", "", "case-insensitive search term")
	fs.StringVar(&o.status, "status", "", `status filter ("all" for every status)`)
	fs.StringVar(&o.sort, "sort", "", "sort field (see gridview pages)")
	fs.BoolVar(&o.descending, "desc", false, "sort descending")
	fs.IntVar(&o.page, "page", 1, "1-based page number")
	fs.IntVar(&o.limit, "limit", 0, "rows per page (default from config page_size; 0 shows all)")
	fs.StringSliceVar(&o.selected, "select", nil, "keys selected before any interaction")
	fs.StringSliceVar(&o.toggle, "toggle", nil, "keys whose row checkbox is clicked, in order")
	fs.BoolVar(&o.toggleAll, "toggle-all", false, "click the header checkbox")
	fs.BoolVar(&o.clearAll, "clear", false, "clear the selection")
	fs.BoolVar(&o.prune, "prune", false, "drop selected keys that are not visible")
	fs.StringVar(&o.click, "click", "", "click a row as KEY or a cell as KEY:COLUMN")
	fs.StringVar(&o.open, "open", "", "open the detail view of KEY (same as --click KEY)")
	return cmd
}

// session holds the caller-owned state a grid reports changes to.
type session struct {
	page   pages.Page
	params pages.Params
	log    *logrus.Logger
	opened string
	screen *pages.Screen
}

func (o *showOptions) run(cmd *cobra.Command, s *settings, name string) error {
	p, err := pages.Lookup(name)
	if err != nil {
		return err
	}

	limit := s.pageSize
	if cmd.Flags().Changed("limit") {
		limit = o.limit
	}
	sess := &session{
		page: p,
		log:  s.log,
		params: pages.Params{
			Search:       o.search,
			Status:       o.status,
			Sort:         o.sort,
			Descending:   o.descending,
			Page:         o.page,
			Limit:        limit,
			Selected:     datagrid.NewSelection(o.selected...),
			EmptyMessage: s.emptyMessage,
			Border:       s.border,
		},
	}
	if err := sess.render(); err != nil {
		return err
	}

	for _, key := range o.toggle {
		sess.screen.View.Toggle(key)
		if err := sess.render(); err != nil {
			return err
		}
	}
	if o.toggleAll {
		sess.screen.View.ToggleAll()
		if err := sess.render(); err != nil {
			return err
		}
	}
	if o.clearAll {
		sess.screen.View.ClearAll()
		if err := sess.render(); err != nil {
			return err
		}
	}
	if o.prune {
		sess.setSelection(sess.params.Selected.Retain(sess.screen.View.Keys()...))
		if err := sess.render(); err != nil {
			return err
		}
	}
	click := o.click
	if o.open != "" {
		click = o.open
	}
	if click != "" {
		key, column, _ := strings.Cut(click, ":")
		if !sess.screen.View.ClickKey(key, column) {
			s.log.WithFields(logrus.Fields{"page": p.Name(), "key": key, "column": column}).Debug("click did not navigate")
		}
	}

	out := cmd.OutOrStdout()
	if sess.opened != "" {
		detail, err := p.Detail(sess.opened, s.border)
		if err != nil {
			return err
		}
		return detail.Write(out, s.format)
	}
	return sess.screen.View.Write(out, s.format)
}

func (s *session) render() error {
	screen, err := s.page.Render(s.params, pages.Events{
		Open:   s.open,
		Action: s.action,
		Select: func(_ string, next datagrid.Selection) { s.setSelection(next) },
	})
	if err != nil {
		return fmt.Errorf("render %s: %w", s.page.Name(), err)
	}
	s.screen = screen
	s.log.WithFields(logrus.Fields{
		"page":     s.page.Name(),
		"total":    screen.Total,
		"pages":    screen.Pages,
		"selected": s.params.Selected.Len(),
	}).Debug("rendered")
	return nil
}

func (s *session) open(page, key string) {
	s.opened = key
	s.log.WithFields(logrus.Fields{"page": page, "key": key}).Info("navigate")
}

func (s *session) action(page, action, key string) {
	s.log.WithFields(logrus.Fields{"page": page, "action": action, "key": key}).Info("action")
}

func (s *session) setSelection(next datagrid.Selection) {
	s.params.Selected = next
	s.log.WithFields(logrus.Fields{"page": s.page.Name(), "keys": next.Keys()}).Info("selection changed")
}

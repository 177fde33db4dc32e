package pages

import (
	"strconv"

	"github.com/bjaus/datagrid"
	"github.com/bjaus/datagrid/internal/mock"
	"github.com/bjaus/datagrid/query"
)

func contactKey(c mock.Contact) string { return c.ID }

var contacts = &page[mock.Contact]{
	name:     "contacts",
	title:    "Contacts",
	load:     mock.Contacts,
	key:      contactKey,
	columns:  contactColumns,
	statuses: []string{"lead", "qualified", "customer"},
	search: []func(mock.Contact) string{
		func(c mock.Contact) string { return c.Name },
		func(c mock.Contact) string { return c.Company },
		func(c mock.Contact) string { return c.Email },
	},
	status: func(c mock.Contact) string { return c.Stage },
	sorter: query.Sorter[mock.Contact]{
		"name":    query.ByFold(func(c mock.Contact) string { return c.Name }),
		"company": query.ByFold(func(c mock.Contact) string { return c.Company }),
		"score":   query.By(func(c mock.Contact) int { return c.Score }),
	},
	defaultSort: "name",
	detail: func(c mock.Contact) []Field {
		return []Field{
			{Label: "Name", Value: c.Name},
			{Label: "Company", Value: c.Company},
			{Label: "Email", Value: c.Email},
			{Label: "Stage", Value: c.Stage},
			{Label: "Owner", Value: c.Owner},
			{Label: "Score", Value: strconv.Itoa(c.Score)},
		}
	},
}

func contactColumns(name string, ev Events) []datagrid.Column[mock.Contact] {
	return []datagrid.Column[mock.Contact]{
		{ID: "name", Header: "Name"},
		{ID: "company", Header: "Company", WidthHint: "18", Wrap: true},
		{ID: "email", Header: "Email"},
		{ID: "stage", Header: "Stage", Style: statusStyle},
		{ID: "owner", Header: "Owner"},
		{ID: "score", Header: "Score", Align: datagrid.AlignRight, Footer: averageScore},
		actionColumn[mock.Contact](name, "assign", "Assign", contactKey, ev),
	}
}

func averageScore(rows []mock.Contact) string {
	if len(rows) == 0 {
		return ""
	}
	sum := 0
	for _, c := range rows {
		sum += c.Score
	}
	return "avg " + strconv.Itoa(sum/len(rows))
}

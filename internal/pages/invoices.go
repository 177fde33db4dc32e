package pages

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bjaus/datagrid"
	"github.com/bjaus/datagrid/internal/mock"
	"github.com/bjaus/datagrid/query"
)

const dateLayout = "2006-01-02"

func invoiceKey(i mock.Invoice) string { return i.Number }

var invoices = &page[mock.Invoice]{
	name:     "invoices",
	title:    "Invoices",
	load:     mock.Invoices,
	key:      invoiceKey,
	columns:  invoiceColumns,
	statuses: []string{"draft", "sent", "paid", "overdue"},
	search: []func(mock.Invoice) string{
		func(i mock.Invoice) string { return i.Number },
		func(i mock.Invoice) string { return i.Customer },
	},
	status: func(i mock.Invoice) string { return i.Status },
	sorter: query.Sorter[mock.Invoice]{
		"number":   query.By(func(i mock.Invoice) string { return i.Number }),
		"customer": query.ByFold(func(i mock.Invoice) string { return i.Customer }),
		"due":      func(a, b mock.Invoice) int { return a.Due.Compare(b.Due) },
		"amount":   func(a, b mock.Invoice) int { return a.Amount.Cmp(b.Amount) },
	},
	defaultSort: "number",
	detail: func(i mock.Invoice) []Field {
		return []Field{
			{Label: "Number", Value: i.Number},
			{Label: "Customer", Value: i.Customer},
			{Label: "Issued", Value: i.Issued.Format(dateLayout)},
			{Label: "Due", Value: i.Due.Format(dateLayout)},
			{Label: "Amount", Value: i.Amount.StringFixed(2) + " " + i.Currency},
			{Label: "Status", Value: i.Status},
		}
	},
}

func invoiceColumns(name string, ev Events) []datagrid.Column[mock.Invoice] {
	return []datagrid.Column[mock.Invoice]{
		{ID: "number", Header: "Number", Footer: countFooter[mock.Invoice]("invoice")},
		{ID: "customer", Header: "Customer", WidthHint: "20"},
		{ID: "due", Header: "Due", Render: func(i mock.Invoice) string { return i.Due.Format(dateLayout) }},
		{
			ID:     "amount",
			Header: "Amount",
			Align:  datagrid.AlignRight,
			Render: func(i mock.Invoice) string { return i.Amount.StringFixed(2) + " " + i.Currency },
			Footer: invoiceTotal,
		},
		{ID: "status", Header: "Status", Style: statusStyle},
		actionColumn[mock.Invoice](name, "remind", "Remind", invoiceKey, ev),
	}
}

// invoiceTotal sums the amounts when every invoice shares a currency.
func invoiceTotal(rows []mock.Invoice) string {
	if len(rows) == 0 {
		return ""
	}
	currency := rows[0].Currency
	total := decimal.Zero
	for _, i := range rows {
		if !strings.EqualFold(i.Currency, currency) {
			return "mixed currencies"
		}
		total = total.Add(i.Amount)
	}
	return total.StringFixed(2) + " " + currency
}

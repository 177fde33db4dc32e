package pages

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/bjaus/datagrid"
	"github.com/bjaus/datagrid/internal/mock"
	"github.com/bjaus/datagrid/query"
)

func bookingKey(b mock.Booking) string { return b.Reference }

func bookingTotal(b mock.Booking) decimal.Decimal {
	return b.Rate.Mul(decimal.NewFromInt(int64(b.Nights)))
}

var bookings = &page[mock.Booking]{
	name:     "bookings",
	title:    "Bookings",
	load:     mock.Bookings,
	key:      bookingKey,
	columns:  bookingColumns,
	statuses: []string{"pending", "confirmed", "checked-in", "cancelled"},
	search: []func(mock.Booking) string{
		func(b mock.Booking) string { return b.Reference },
		func(b mock.Booking) string { return b.Guest },
		func(b mock.Booking) string { return b.Room },
	},
	status: func(b mock.Booking) string { return b.Status },
	sorter: query.Sorter[mock.Booking]{
		"reference": query.By(func(b mock.Booking) string { return b.Reference }),
		"guest":     query.ByFold(func(b mock.Booking) string { return b.Guest }),
		"checkin": query.Compare[mock.Booking](func(a, b mock.Booking) int {
			return a.CheckIn.Compare(b.CheckIn)
		}).Then(query.By(func(b mock.Booking) string { return b.Reference })),
		"total": func(a, b mock.Booking) int { return bookingTotal(a).Cmp(bookingTotal(b)) },
	},
	defaultSort: "checkin",
	detail: func(b mock.Booking) []Field {
		return []Field{
			{Label: "Reference", Value: b.Reference},
			{Label: "Guest", Value: b.Guest},
			{Label: "Room", Value: b.Room},
			{Label: "Check-in", Value: b.CheckIn.Format(dateLayout)},
			{Label: "Nights", Value: strconv.Itoa(b.Nights)},
			{Label: "Rate", Value: b.Rate.StringFixed(2)},
			{Label: "Total", Value: bookingTotal(b).StringFixed(2)},
			{Label: "Status", Value: b.Status},
		}
	},
}

func bookingColumns(name string, ev Events) []datagrid.Column[mock.Booking] {
	return []datagrid.Column[mock.Booking]{
		{ID: "reference", Header: "Reference", Footer: countFooter[mock.Booking]("booking")},
		{ID: "guest", Header: "Guest"},
		{ID: "room", Header: "Room", Align: datagrid.AlignCenter},
		{ID: "checkin", Header: "Check-in", Render: func(b mock.Booking) string { return b.CheckIn.Format(dateLayout) }},
		{
			ID:     "nights",
			Header: "Nights",
			Align:  datagrid.AlignRight,
			Footer: func(rows []mock.Booking) string {
				n := 0
				for _, b := range rows {
					n += b.Nights
				}
				return strconv.Itoa(n)
			},
		},
		{
			ID:     "total",
			Header: "Total",
			Align:  datagrid.AlignRight,
			Render: func(b mock.Booking) string { return bookingTotal(b).StringFixed(2) },
			Footer: func(rows []mock.Booking) string {
				sum := decimal.Zero
				for _, b := range rows {
					sum = sum.Add(bookingTotal(b))
				}
				return sum.StringFixed(2)
			},
		},
		{ID: "status", Header: "Status", Style: statusStyle},
		actionColumn[mock.Booking](name, "cancel", "Cancel", bookingKey, ev),
	}
}

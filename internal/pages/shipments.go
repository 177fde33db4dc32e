package pages

import (
	"github.com/dustin/go-humanize"

	"github.com/bjaus/datagrid"
	"github.com/bjaus/datagrid/internal/mock"
	"github.com/bjaus/datagrid/query"
)

func shipmentKey(s mock.Shipment) string { return s.Tracking }

func weight(kg int64) string { return humanize.Comma(kg) + " kg" }

var shipments = &page[mock.Shipment]{
	name:     "shipments",
	title:    "Shipments",
	load:     mock.Shipments,
	key:      shipmentKey,
	columns:  shipmentColumns,
	statuses: []string{"in-transit", "delayed", "delivered"},
	search: []func(mock.Shipment) string{
		func(s mock.Shipment) string { return s.Tracking },
		func(s mock.Shipment) string { return s.Origin },
		func(s mock.Shipment) string { return s.Destination },
		func(s mock.Shipment) string { return s.Carrier },
	},
	status: func(s mock.Shipment) string { return s.Status },
	sorter: query.Sorter[mock.Shipment]{
		"tracking": query.By(func(s mock.Shipment) string { return s.Tracking }),
		"carrier": query.ByFold(func(s mock.Shipment) string { return s.Carrier }).
			Then(query.By(func(s mock.Shipment) string { return s.Tracking })),
		"weight": query.By(func(s mock.Shipment) int64 { return s.WeightKg }),
	},
	defaultSort: "tracking",
	detail: func(s mock.Shipment) []Field {
		return []Field{
			{Label: "Tracking", Value: s.Tracking},
			{Label: "Origin", Value: s.Origin},
			{Label: "Destination", Value: s.Destination},
			{Label: "Carrier", Value: s.Carrier},
			{Label: "Weight", Value: weight(s.WeightKg)},
			{Label: "Status", Value: s.Status},
		}
	},
}

// routeColumn is built from a constant template, so a parse failure is a
// programming error.
var routeColumn = must(datagrid.TemplateColumn[mock.Shipment]("route", "Route", "{{.Origin}} → {{.Destination}}"))

func shipmentColumns(name string, ev Events) []datagrid.Column[mock.Shipment] {
	return []datagrid.Column[mock.Shipment]{
		{ID: "tracking", Header: "Tracking", Footer: countFooter[mock.Shipment]("shipment")},
		routeColumn,
		{ID: "carrier", Header: "Carrier"},
		{
			ID:     "weight",
			Header: "Weight",
			Align:  datagrid.AlignRight,
			Render: func(s mock.Shipment) string { return weight(s.WeightKg) },
			Footer: func(rows []mock.Shipment) string {
				var kg int64
				for _, s := range rows {
					kg += s.WeightKg
				}
				return weight(kg)
			},
		},
		{ID: "status", Header: "Status", Style: statusStyle},
		actionColumn[mock.Shipment](name, "track", "Track", shipmentKey, ev),
	}
}

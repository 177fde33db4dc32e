// Package mock holds the static datasets rendered by the demo pages.
// Every accessor returns a fresh copy so callers may reorder freely.
package mock

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is an accounts-receivable document.
type Invoice struct {
	Number   string
	Customer string
	Issued   time.Time
	Due      time.Time
	Amount   decimal.Decimal
	Currency string
	Status   string
}

// Contact is a CRM lead or customer contact.
type Contact struct {
	ID      string
	Name    string
	Company string
	Email   string
	Stage   string
	Owner   string
	Score   int
}

// Booking is a hotel reservation.
type Booking struct {
	Reference string
	Guest     string
	Room      string
	CheckIn   time.Time
	Nights    int
	Rate      decimal.Decimal
	Status    string
}

// Shipment is a logistics consignment.
type Shipment struct {
	Tracking    string
	Origin      string
	Destination string
	Carrier     string
	WeightKg    int64
	Status      string
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var invoices = []Invoice{
	{Number: "INV-1001", Customer: "Northwind Traders", Issued: day(2025, 1, 6), Due: day(2025, 2, 5), Amount: decimal.RequireFromString("1250.00"), Currency: "USD", Status: "paid"},
	{Number: "INV-1002", Customer: "Contoso Ltd", Issued: day(2025, 1, 9), Due: day(2025, 2, 8), Amount: decimal.RequireFromString("980.50"), Currency: "USD", Status: "overdue"},
	{Number: "INV-1003", Customer: "Fabrikam Inc", Issued: day(2025, 1, 14), Due: day(2025, 2, 13), Amount: decimal.RequireFromString("4310.75"), Currency: "EUR", Status: "sent"},
	{Number: "INV-1004", Customer: "Northwind Traders", Issued: day(2025, 1, 20), Due: day(2025, 2, 19), Amount: decimal.RequireFromString("310.00"), Currency: "USD", Status: "draft"},
	{Number: "INV-1005", Customer: "Tailspin Toys", Issued: day(2025, 1, 27), Due: day(2025, 2, 26), Amount: decimal.RequireFromString("2200.00"), Currency: "USD", Status: "sent"},
	{Number: "INV-1006", Customer: "Adventure Works", Issued: day(2025, 2, 2), Due: day(2025, 3, 4), Amount: decimal.RequireFromString("760.20"), Currency: "GBP", Status: "paid"},
}

var contacts = []Contact{
	{ID: "c-01", Name: "Maria Anders", Company: "Alfreds Futterkiste", Email: "maria@alfreds.example", Stage: "customer", Owner: "jlee", Score: 82},
	{ID: "c-02", Name: "Ana Trujillo", Company: "Emparedados y helados", Email: "ana@emparedados.example", Stage: "lead", Owner: "kpatel", Score: 45},
	{ID: "c-03", Name: "Thomas Hardy", Company: "Around the Horn", Email: "thomas@horn.example", Stage: "qualified", Owner: "jlee", Score: 67},
	{ID: "c-04", Name: "Christina Berglund", Company: "Berglunds snabbköp", Email: "christina@berglunds.example", Stage: "lead", Owner: "mgarcia", Score: 30},
	{ID: "c-05", Name: "Hanna Moos", Company: "Blauer See Delikatessen", Email: "hanna@blauersee.example", Stage: "customer", Owner: "kpatel", Score: 91},
}

var bookings = []Booking{
	{Reference: "BK-2201", Guest: "Alice Moreau", Room: "101", CheckIn: day(2025, 3, 1), Nights: 3, Rate: decimal.RequireFromString("129.00"), Status: "confirmed"},
	{Reference: "BK-2202", Guest: "Bob Tanaka", Room: "205", CheckIn: day(2025, 3, 2), Nights: 1, Rate: decimal.RequireFromString("189.00"), Status: "pending"},
	{Reference: "BK-2203", Guest: "Carol Diaz", Room: "102", CheckIn: day(2025, 3, 2), Nights: 5, Rate: decimal.RequireFromString("129.00"), Status: "checked-in"},
	{Reference: "BK-2204", Guest: "Dan Okafor", Room: "310", CheckIn: day(2025, 3, 5), Nights: 2, Rate: decimal.RequireFromString("249.00"), Status: "cancelled"},
	{Reference: "BK-2205", Guest: "Eve Lindqvist", Room: "204", CheckIn: day(2025, 3, 7), Nights: 4, Rate: decimal.RequireFromString("189.00"), Status: "confirmed"},
}

var shipments = []Shipment{
	{Tracking: "SHP-77001", Origin: "Rotterdam", Destination: "Hamburg", Carrier: "Maersk", WeightKg: 12400, Status: "in-transit"},
	{Tracking: "SHP-77002", Origin: "Shenzhen", Destination: "Los Angeles", Carrier: "COSCO", WeightKg: 28750, Status: "delivered"},
	{Tracking: "SHP-77003", Origin: "Antwerp", Destination: "Felixstowe", Carrier: "MSC", WeightKg: 3200, Status: "delayed"},
	{Tracking: "SHP-77004", Origin: "Singapore", Destination: "Sydney", Carrier: "Maersk", WeightKg: 1045000, Status: "in-transit"},
}

// Invoices returns the accounting dataset.
func Invoices() []Invoice { return slices.Clone(invoices) }

// Contacts returns the CRM dataset.
func Contacts() []Contact { return slices.Clone(contacts) }

// Bookings returns the hotel dataset.
func Bookings() []Booking { return slices.Clone(bookings) }

// Shipments returns the logistics dataset.
func Shipments() []Shipment { return slices.Clone(shipments) }

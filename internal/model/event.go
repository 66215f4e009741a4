package model

import "time"

// Event is a ticketed event listed by a member.  TotalTickets is the fixed
// capacity; TicketsSold counts sales and starts at zero.  The remaining
// inventory is always derived as TotalTickets-TicketsSold at read time and
// never stored.  ImagePath holds the generated filename of the uploaded
// poster inside the image store, or "" when no image was attached.
//
// Fields:
//  ID             – primary key identifier.
//  Title          – event title.
//  Description    – free-form description.
//  Category       – category label used for filtering.
//  DateTime       – when the event takes place (must be in the future at creation).
//  Location       – venue; (DateTime, Location) is unique across events.
//  TotalTickets   – fixed ticket capacity.
//  TicketsSold    – tickets sold so far.
//  PricePerTicket – price of a single ticket, strictly positive.
//  ImagePath      – stored image filename, "" when absent.
//  MemberID       – owning member.
//  CreatedAt      – creation timestamp.
type Event struct {
	ID             int       // events.event_id
	Title          string    // events.title
	Description    string    // events.description
	Category       string    // events.category
	DateTime       time.Time // events.date_time
	Location       string    // events.location
	TotalTickets   int       // events.total_tickets
	TicketsSold    int       // events.tickets_sold
	PricePerTicket float64   // events.price_per_ticket
	ImagePath      string    // events.image_path (nullable in DB)
	MemberID       int       // events.member_id
	CreatedAt      time.Time // events.created_at
}

// Package calendar turns reservations into RFC 5545 calendar invites:
// Builder maps a reservation to an Event descriptor, Encoder renders it
// as iCalendar text and FileStore persists the result.
package calendar

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/stpnv0/ResortDesk/internal/domain"
)

type Status string

const StatusConfirmed Status = "confirmed"

// DateTriple is a calendar date with a 1-indexed month.
type DateTriple struct {
	Year  int
	Month int
	Day   int
}

func NewDateTriple(t time.Time) DateTriple {
	return DateTriple{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// Time returns midnight UTC of the date. Triples that do not name a real
// calendar day (month 13, February 30, year 0) are rejected rather than
// normalized.
func (d DateTriple) Time() (time.Time, error) {
	if d.Year < 1 || d.Year > 9999 {
		return time.Time{}, fmt.Errorf("year %d out of range", d.Year)
	}
	if d.Month < 1 || d.Month > 12 {
		return time.Time{}, fmt.Errorf("month %d out of range", d.Month)
	}
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	if t.Day() != d.Day || int(t.Month()) != d.Month {
		return time.Time{}, fmt.Errorf("day %d out of range for %04d-%02d", d.Day, d.Year, d.Month)
	}
	return t, nil
}

func (d DateTriple) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

type Organizer struct {
	Name  string
	Email string
}

// Event is the pre-serialization form of a reservation invite. It is built
// per call and never stored.
type Event struct {
	UID         string
	Start       DateTriple
	End         DateTriple
	Title       string
	Description string
	Location    string
	Status      Status
	Organizer   Organizer
}

type Options struct {
	TitlePrefix string
	Location    string
	Organizer   Organizer
	UIDDomain   string
}

func DefaultOptions() Options {
	return Options{
		TitlePrefix: "Lagoon Resort Stay",
		Location:    "Lagoon Resort & Waterpark",
		Organizer: Organizer{
			Name:  "Lagoon Resort Reservations",
			Email: "reservations@lagoonresort.example",
		},
		UIDDomain: "lagoonresort.example",
	}
}

type Builder struct {
	opts Options
}

func NewBuilder(opts Options) *Builder {
	return &Builder{opts: opts}
}

// Build maps a reservation to an invite descriptor. Check-in/check-out order
// is not checked here; it is validated when the reservation is created.
func (b *Builder) Build(r *domain.Reservation) (*Event, error) {
	start, err := parseDate(r.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("check-in date: %w", err)
	}
	end, err := parseDate(r.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("check-out date: %w", err)
	}

	room := capitalize(string(r.RoomType))

	return &Event{
		UID:         fmt.Sprintf("reservation-%s@%s", r.ID, b.opts.UIDDomain),
		Start:       start,
		End:         end,
		Title:       b.title(room),
		Description: description(r, room),
		Location:    b.opts.Location,
		Status:      StatusConfirmed,
		Organizer:   b.opts.Organizer,
	}, nil
}

func (b *Builder) title(room string) string {
	if b.opts.TitlePrefix == "" {
		return room + " Room"
	}
	return fmt.Sprintf("%s: %s Room", b.opts.TitlePrefix, room)
}

func description(r *domain.Reservation, room string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Reservation for: %s\n", r.FullName)
	fmt.Fprintf(&sb, "Room: %s\n", room)
	fmt.Fprintf(&sb, "Guests: %d adults, %d children", r.Adults, r.Children)
	if req := strings.TrimSpace(r.SpecialRequests); req != "" {
		fmt.Fprintf(&sb, "\nSpecial Requests: %s", req)
	}
	return sb.String()
}

func parseDate(s string) (DateTriple, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return DateTriple{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, s)
	}
	return NewDateTriple(t), nil
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

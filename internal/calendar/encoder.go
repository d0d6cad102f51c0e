package calendar

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stpnv0/ResortDesk/internal/domain"
)

const DefaultProductID = "-//Lagoon Resort//ResortDesk//EN"

// Encoder renders Event descriptors as iCalendar (RFC 5545) text.
type Encoder struct {
	productID string
	now       func() time.Time
}

func NewEncoder(productID string) *Encoder {
	if productID == "" {
		productID = DefaultProductID
	}
	return &Encoder{productID: productID, now: time.Now}
}

// Encode returns the serialized VCALENDAR. Descriptor faults are reported
// as domain.ErrInviteEncoding.
func (e *Encoder) Encode(ctx context.Context, ev *Event) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start, err := ev.Start.Time()
	if err != nil {
		return nil, fmt.Errorf("%w: start: %v", domain.ErrInviteEncoding, err)
	}
	end, err := ev.End.Time()
	if err != nil {
		return nil, fmt.Errorf("%w: end: %v", domain.ErrInviteEncoding, err)
	}
	if ev.UID == "" {
		return nil, fmt.Errorf("%w: missing uid", domain.ErrInviteEncoding)
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, e.productID)
	cal.Props.SetText(ical.PropMethod, "PUBLISH")

	vevent := ical.NewEvent()
	vevent.Props.SetText(ical.PropUID, ev.UID)
	vevent.Props.SetDateTime(ical.PropDateTimeStamp, e.now().UTC())
	vevent.Props.SetDate(ical.PropDateTimeStart, start)
	vevent.Props.SetDate(ical.PropDateTimeEnd, end)
	vevent.Props.SetText(ical.PropSummary, ev.Title)
	vevent.Props.SetText(ical.PropDescription, ev.Description)
	if ev.Location != "" {
		vevent.Props.SetText(ical.PropLocation, ev.Location)
	}
	if ev.Status != "" {
		vevent.Props.SetText(ical.PropStatus, strings.ToUpper(string(ev.Status)))
	}
	if ev.Organizer.Email != "" {
		org := ical.NewProp(ical.PropOrganizer)
		org.Value = "mailto:" + ev.Organizer.Email
		if ev.Organizer.Name != "" {
			org.Params.Set(ical.ParamCommonName, ev.Organizer.Name)
		}
		vevent.Props.Set(org)
	}
	cal.Children = append(cal.Children, vevent.Component)

	var buf bytes.Buffer
	if err = ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInviteEncoding, err)
	}

	return buf.Bytes(), nil
}

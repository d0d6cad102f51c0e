package calendar

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stpnv0/ResortDesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func janeDoe() *domain.Reservation {
	return &domain.Reservation{
		ID:              "42",
		CheckInDate:     "2025-06-01",
		CheckOutDate:    "2025-06-05",
		FullName:        "Jane Doe",
		RoomType:        domain.RoomTypeTwin,
		Adults:          2,
		Children:        1,
		SpecialRequests: "Late checkout",
	}
}

func TestBuilder_Build_Dates(t *testing.T) {
	ev, err := NewBuilder(DefaultOptions()).Build(janeDoe())

	require.NoError(t, err)
	assert.Equal(t, DateTriple{Year: 2025, Month: 6, Day: 1}, ev.Start)
	assert.Equal(t, DateTriple{Year: 2025, Month: 6, Day: 5}, ev.End)
}

func TestBuilder_Build_MonthIsOneIndexed(t *testing.T) {
	r := janeDoe()
	r.CheckInDate = "2024-01-31"
	r.CheckOutDate = "2024-12-01"

	ev, err := NewBuilder(DefaultOptions()).Build(r)

	require.NoError(t, err)
	assert.Equal(t, DateTriple{Year: 2024, Month: 1, Day: 31}, ev.Start)
	assert.Equal(t, DateTriple{Year: 2024, Month: 12, Day: 1}, ev.End)
}

func TestBuilder_Build_TitleAndDescription(t *testing.T) {
	ev, err := NewBuilder(DefaultOptions()).Build(janeDoe())

	require.NoError(t, err)
	assert.Contains(t, ev.Title, "Twin Room")
	assert.Contains(t, ev.Description, "Jane Doe")
	assert.Contains(t, ev.Description, "Twin")
	assert.Contains(t, ev.Description, "2 adults, 1 children")
	assert.Contains(t, ev.Description, "Special Requests: Late checkout")
	assert.Equal(t, StatusConfirmed, ev.Status)
	assert.Equal(t, DefaultOptions().Location, ev.Location)
	assert.Equal(t, DefaultOptions().Organizer, ev.Organizer)
	assert.Equal(t, "reservation-42@lagoonresort.example", ev.UID)
}

func TestBuilder_Build_NoSpecialRequests(t *testing.T) {
	for _, requests := range []string{"", "   "} {
		r := janeDoe()
		r.RoomType = domain.RoomTypeAmbassador
		r.SpecialRequests = requests

		ev, err := NewBuilder(DefaultOptions()).Build(r)

		require.NoError(t, err)
		assert.Contains(t, ev.Title, "Ambassador Room")
		assert.NotContains(t, ev.Description, "Special Requests")
	}
}

func TestBuilder_Build_EmptyPrefix(t *testing.T) {
	ev, err := NewBuilder(Options{}).Build(janeDoe())

	require.NoError(t, err)
	assert.Equal(t, "Twin Room", ev.Title)
}

func TestBuilder_Build_InvalidDate(t *testing.T) {
	r := janeDoe()
	r.CheckInDate = "not-a-date"

	_, err := NewBuilder(DefaultOptions()).Build(r)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)

	r = janeDoe()
	r.CheckOutDate = "2025-02-30"

	_, err = NewBuilder(DefaultOptions()).Build(r)

	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestDateTriple_Time(t *testing.T) {
	tm, err := DateTriple{Year: 2024, Month: 2, Day: 29}.Time()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), tm)

	for _, d := range []DateTriple{
		{Year: 2025, Month: 13, Day: 1},
		{Year: 2025, Month: 0, Day: 1},
		{Year: 2025, Month: 2, Day: 29},
		{Year: 2025, Month: 4, Day: 31},
		{Year: 0, Month: 1, Day: 1},
	} {
		_, err = d.Time()
		assert.Error(t, err, d.String())
	}
}

func decode(t *testing.T, data []byte) *ical.Event {
	t.Helper()
	cal, err := ical.NewDecoder(bytes.NewReader(data)).Decode()
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 1)
	return &events[0]
}

func TestEncoder_Encode(t *testing.T) {
	ev, err := NewBuilder(DefaultOptions()).Build(janeDoe())
	require.NoError(t, err)

	enc := NewEncoder("")
	enc.now = func() time.Time { return time.Date(2025, 5, 20, 10, 30, 0, 0, time.UTC) }

	data, err := enc.Encode(context.Background(), ev)
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, "BEGIN:VCALENDAR")
	assert.Contains(t, text, "VERSION:2.0")
	assert.Contains(t, text, "PRODID:"+DefaultProductID)
	assert.Contains(t, text, "DTSTAMP:20250520T103000Z")
	assert.Contains(t, text, "STATUS:CONFIRMED")

	vevent := decode(t, data)
	assert.Equal(t, "20250601", vevent.Props.Get(ical.PropDateTimeStart).Value)
	assert.Equal(t, ical.ValueDate, vevent.Props.Get(ical.PropDateTimeStart).ValueType())
	assert.Equal(t, "20250605", vevent.Props.Get(ical.PropDateTimeEnd).Value)

	summary, err := vevent.Props.Text(ical.PropSummary)
	require.NoError(t, err)
	assert.Equal(t, ev.Title, summary)

	desc, err := vevent.Props.Text(ical.PropDescription)
	require.NoError(t, err)
	assert.Equal(t, ev.Description, desc)

	org := vevent.Props.Get(ical.PropOrganizer)
	require.NotNil(t, org)
	assert.Equal(t, "mailto:"+DefaultOptions().Organizer.Email, org.Value)
	assert.Equal(t, DefaultOptions().Organizer.Name, org.Params.Get(ical.ParamCommonName))
}

func TestEncoder_Encode_BadTriple(t *testing.T) {
	ev, err := NewBuilder(DefaultOptions()).Build(janeDoe())
	require.NoError(t, err)
	ev.End = DateTriple{Year: 2025, Month: 13, Day: 1}

	_, err = NewEncoder("").Encode(context.Background(), ev)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInviteEncoding)
}

func TestEncoder_Encode_CancelledContext(t *testing.T) {
	ev, err := NewBuilder(DefaultOptions()).Build(janeDoe())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = NewEncoder("").Encode(ctx, ev)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileStore_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "events")
	store := NewFileStore(dir, newTestLogger(t))

	name, err := store.Save(context.Background(), "42", []byte("BEGIN:VCALENDAR"))

	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^reservation_42_\d+\.ics$`), name)

	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "BEGIN:VCALENDAR", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}

func TestFileStore_Save_DistinctIDs(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, newTestLogger(t))

	a, err := store.Save(context.Background(), "1", []byte("a"))
	require.NoError(t, err)
	b, err := store.Save(context.Background(), "2", []byte("b"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)

	dataA, err := store.Open(a)
	require.NoError(t, err)
	assert.Equal(t, "a", string(dataA))
	dataB, err := store.Open(b)
	require.NoError(t, err)
	assert.Equal(t, "b", string(dataB))
}

func TestFileStore_Save_SameMillisecond(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, newTestLogger(t))
	frozen := time.UnixMilli(1748736000000)
	store.now = func() time.Time { return frozen }

	first, err := store.Save(context.Background(), "42", []byte("first"))
	require.NoError(t, err)
	second, err := store.Save(context.Background(), "42", []byte("second"))
	require.NoError(t, err)

	assert.Equal(t, "reservation_42_1748736000000.ics", first)
	assert.Equal(t, "reservation_42_1748736000001.ics", second)

	data, err := store.Open(first)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
}

func TestFileStore_Save_NeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	frozen := time.UnixMilli(1748736000000)
	existing := FileName("42", frozen.UnixMilli())
	require.NoError(t, os.WriteFile(filepath.Join(dir, existing), []byte("old"), 0o644))

	store := NewFileStore(dir, newTestLogger(t))
	store.now = func() time.Time { return frozen }

	name, err := store.Save(context.Background(), "42", []byte("new"))

	require.NoError(t, err)
	assert.NotEqual(t, existing, name)

	old, err := os.ReadFile(filepath.Join(dir, existing))
	require.NoError(t, err)
	assert.Equal(t, "old", string(old))
}

func TestFileStore_Save_DirError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	store := NewFileStore(filepath.Join(blocker, "events"), newTestLogger(t))

	_, err := store.Save(context.Background(), "42", []byte("x"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInviteStorage)
}

func TestFileStore_Save_UnsafeID(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, newTestLogger(t))

	_, err := store.Save(context.Background(), "../escape", []byte("x"))

	assert.ErrorIs(t, err, domain.ErrValidation)
	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

func TestFileStore_Open(t *testing.T) {
	store := NewFileStore(t.TempDir(), newTestLogger(t))

	_, err := store.Open("reservation_42_1.ics")
	assert.ErrorIs(t, err, domain.ErrInviteNotFound)

	_, err = store.Open("../../etc/passwd")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

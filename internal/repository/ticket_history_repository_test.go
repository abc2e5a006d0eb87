package repository

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/incubtek-portal/internal/domain"
)

type fakeRow struct {
	id  int64
	err error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int64)) = r.id
	return nil
}

// fakeRows serves history rows in the column order of ListByTicket.
type fakeRows struct {
	entries []domain.TicketHistory
	pos     int
	closed  bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.entries) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	e := r.entries[r.pos-1]
	*(dest[0].(*int64)) = e.ID
	*(dest[1].(*string)) = e.TicketID
	*(dest[2].(*string)) = e.ChangedByID
	*(dest[3].(*string)) = string(e.ChangeType)
	*(dest[4].(**string)) = e.OldValue
	*(dest[5].(**string)) = e.NewValue
	*(dest[6].(*time.Time)) = e.CreatedAt
	return nil
}

type fakeQuerier struct {
	sql  string
	args []any
	row  fakeRow
	rows *fakeRows
	err  error
}

func (q *fakeQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.sql = sql
	q.args = args
	return q.row
}

func (q *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.sql = sql
	q.args = args
	if q.err != nil {
		return nil, q.err
	}
	return q.rows, nil
}

func TestHistoryCreateReturnsID(t *testing.T) {
	db := &fakeQuerier{row: fakeRow{id: 42}}
	repo := &ticketHistoryRepository{db: db}
	newValue := "support-1"
	entry := &domain.TicketHistory{
		TicketID:    "tick-1",
		ChangedByID: "admin-1",
		ChangeType:  domain.TicketChangeAssignee,
		NewValue:    &newValue,
		CreatedAt:   time.Date(2024, 7, 22, 9, 0, 0, 0, time.UTC),
	}
	if err := repo.Create(context.Background(), entry); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if entry.ID != 42 {
		t.Fatalf("expected id 42, got %d", entry.ID)
	}
	if !strings.Contains(db.sql, "INSERT INTO ticket_history") {
		t.Fatalf("unexpected sql %q", db.sql)
	}
	if db.args[2] != "assignee" {
		t.Fatalf("change type must bind as text, got %#v", db.args[2])
	}
}

func TestHistoryCreatePropagatesError(t *testing.T) {
	repo := &ticketHistoryRepository{db: &fakeQuerier{row: fakeRow{err: errors.New("boom")}}}
	if err := repo.Create(context.Background(), &domain.TicketHistory{}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestHistoryListByTicket(t *testing.T) {
	oldValue, newValue := "Nouveau", "En cours"
	rows := &fakeRows{entries: []domain.TicketHistory{{
		ID: 1, TicketID: "tick-1", ChangedByID: "support-1", ChangeType: domain.TicketChangeStatus,
		OldValue: &oldValue, NewValue: &newValue,
	}}}
	db := &fakeQuerier{rows: rows}
	repo := &ticketHistoryRepository{db: db}

	entries, err := repo.ListByTicket(context.Background(), "tick-1")
	if err != nil {
		t.Fatalf("ListByTicket: %v", err)
	}
	if len(entries) != 1 || entries[0].ChangeType != domain.TicketChangeStatus || *entries[0].NewValue != "En cours" {
		t.Fatalf("unexpected entries %+v", entries)
	}
	if !rows.closed {
		t.Fatalf("rows must be closed")
	}
	if db.args[0] != "tick-1" {
		t.Fatalf("unexpected args %v", db.args)
	}
}

func TestHistoryListEmpty(t *testing.T) {
	repo := &ticketHistoryRepository{db: &fakeQuerier{rows: &fakeRows{}}}
	entries, err := repo.ListByTicket(context.Background(), "tick-9")
	if err != nil || entries == nil || len(entries) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v %v", entries, err)
	}
}

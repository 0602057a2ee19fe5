package repositories

import (
	"errors"
	"testing"

	"github.com/lib/pq"
)

type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

func TestCheckAffectedRows(t *testing.T) {
	notFound := errors.New("not found")
	if err := checkAffectedRows(fakeResult{rows: 1}, notFound); err != nil {
		t.Errorf("one row: %v", err)
	}
	if err := checkAffectedRows(fakeResult{rows: 0}, notFound); !errors.Is(err, notFound) {
		t.Errorf("no rows: %v", err)
	}
	if err := checkAffectedRows(fakeResult{err: errors.New("driver")}, notFound); err == nil || errors.Is(err, notFound) {
		t.Errorf("driver failure: %v", err)
	}
}

func TestMapUniqueViolation(t *testing.T) {
	conflict := errors.New("conflict")
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"matching constraint", &pq.Error{Code: "23505", Constraint: "draws_pkey"}, conflict},
		{"other constraint", &pq.Error{Code: "23505", Constraint: "other"}, nil},
		{"other code", &pq.Error{Code: "23503", Constraint: "draws_pkey"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapUniqueViolation(tt.err, "draws_pkey", conflict)
			want := tt.want
			if want == nil {
				want = tt.err
			}
			if got != want {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

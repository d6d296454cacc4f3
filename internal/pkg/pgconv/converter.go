package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const civilDateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date value")

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func UUIDFromPgtype(pu pgtype.UUID) uuid.UUID {
	if !pu.Valid {
		return uuid.Nil
	}
	return uuid.UUID(pu.Bytes)
}

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// DateStringFromPgtype renders a DATE column as YYYY-MM-DD. NULL becomes "".
func DateStringFromPgtype(pd pgtype.Date) string {
	if !pd.Valid {
		return ""
	}
	return pd.Time.Format(civilDateLayout)
}

func DateStringToPgtype(s string) (pgtype.Date, error) {
	t, err := time.Parse(civilDateLayout, s)
	if err != nil {
		return pgtype.Date{}, ErrInvalidDate
	}
	return pgtype.Date{Time: t, Valid: true}, nil
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// fechaLayout is the wire format for every date in the API: "YYYY-MM-DD".
// All timestamps in this system are calendar dates without time-of-day.
const fechaLayout = "2006-01-02"

// Fecha is a date-only value. It wraps time.Time so the usual comparison
// helpers remain available, but it serializes to JSON as "YYYY-MM-DD" and
// maps to a DATE column instead of a full timestamp.
type Fecha struct {
	time.Time
}

// NewFecha truncates t to midnight UTC, discarding the time-of-day.
func NewFecha(t time.Time) Fecha {
	return Fecha{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// Hoy returns today's date.
func Hoy() Fecha {
	return NewFecha(time.Now())
}

// ParseFecha parses a "YYYY-MM-DD" string.
func ParseFecha(s string) (Fecha, error) {
	t, err := time.Parse(fechaLayout, s)
	if err != nil {
		return Fecha{}, err
	}
	return Fecha{t}, nil
}

func (f Fecha) String() string {
	return f.Format(fechaLayout)
}

// MarshalJSON renders the date as a quoted "YYYY-MM-DD" string, or null when unset.
func (f Fecha) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + f.Format(fechaLayout) + `"`), nil
}

// UnmarshalJSON accepts "YYYY-MM-DD" or null.
func (f *Fecha) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		*f = Fecha{}
		return nil
	}
	t, err := time.Parse(`"`+fechaLayout+`"`, s)
	if err != nil {
		return fmt.Errorf("fecha inválida %s: se espera el formato YYYY-MM-DD", s)
	}
	*f = Fecha{t}
	return nil
}

// Value implements driver.Valuer so GORM can persist the date.
func (f Fecha) Value() (driver.Value, error) {
	if f.IsZero() {
		return nil, nil
	}
	return f.Time, nil
}

// Scan implements sql.Scanner. Postgres returns DATE columns as time.Time;
// the sqlite driver used in tests may hand back a string.
func (f *Fecha) Scan(v interface{}) error {
	switch value := v.(type) {
	case nil:
		*f = Fecha{}
		return nil
	case time.Time:
		*f = NewFecha(value)
		return nil
	case string:
		return f.scanString(value)
	case []byte:
		return f.scanString(string(value))
	default:
		return fmt.Errorf("no se puede convertir %T a Fecha", v)
	}
}

func (f *Fecha) scanString(s string) error {
	if s == "" {
		*f = Fecha{}
		return nil
	}
	// Date-only first, then the timestamp forms sqlite stores.
	for _, layout := range []string{fechaLayout, time.RFC3339, "2006-01-02 15:04:05-07:00", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			*f = NewFecha(t)
			return nil
		}
	}
	return fmt.Errorf("no se puede interpretar %q como Fecha", s)
}

// GormDataType tells GORM to create a DATE column for this type.
func (Fecha) GormDataType() string {
	return "date"
}

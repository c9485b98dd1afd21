// Package localtime carries timestamps across the API boundary as ISO-8601
// local date-time without a timezone offset, e.g. "2000-10-10T10:01:00".
package localtime

import (
	"database/sql/driver"
	"time"

	"gearshare/internal/pkg/errs"
)

const Layout = "2006-01-02T15:04:05"

var ErrBadFormat = errs.New("timestamp must be ISO-8601 local date-time")

type LocalDateTime struct {
	t time.Time
}

func Of(t time.Time) LocalDateTime {
	return LocalDateTime{t: t}
}

func Parse(s string) (LocalDateTime, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return LocalDateTime{}, errs.Mark(err, ErrBadFormat)
	}
	return LocalDateTime{t: t}, nil
}

func (l LocalDateTime) Time() time.Time {
	return l.t
}

func (l LocalDateTime) IsZero() bool {
	return l.t.IsZero()
}

func (l LocalDateTime) String() string {
	return l.t.Format(Layout)
}

func (l LocalDateTime) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, len(Layout)+2)
	b = append(b, '"')
	b = l.t.AppendFormat(b, Layout)
	b = append(b, '"')
	return b, nil
}

func (l *LocalDateTime) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return ErrBadFormat
	}
	parsed, err := Parse(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// Value lets pgx bind the wrapped time directly as a query argument.
func (l LocalDateTime) Value() (driver.Value, error) {
	return l.t, nil
}

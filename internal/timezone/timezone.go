package timezone

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

const DefaultTimezone = "America/Sao_Paulo"

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid_date")

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

// ParseDate aceita "2006-01-02" no fuso padrão (datas de nascimento, lançamento).
func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.ParseInLocation(DateLayout, s, Location(DefaultTimezone))
	if err != nil {
		return datatypes.Date{}, ErrInvalidDate
	}
	return datatypes.Date(t), nil
}

// ParseTimestamp aceita RFC3339 ou só a data; sem fuso explícito vale o padrão.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02 15:04:05", DateLayout} {
		if t, err := time.ParseInLocation(layout, s, Location(DefaultTimezone)); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}

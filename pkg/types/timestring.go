// Package types содержит общие типы данных, используемые сервисом.
package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const (
	timeLayout        = "15:04"
	timeLayoutSeconds = "15:04:05"
)

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате времени
	ErrInvalidTimeFormat = errors.New("types: invalid time string format, expected HH:MM")

	// ErrInvalidMinutes возвращается при некорректном количестве минут
	ErrInvalidMinutes = errors.New("types: invalid minutes value")
)

// TimeString время суток в формате "HH:MM" (без даты и часового пояса).
// Используется для временных слотов бронирования.
// Значения из БД могут приходить в формате "HH:MM:SS" - суффикс секунд
// отбрасывается при парсинге, каноническое представление всегда "HH:MM".
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывая дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString создает TimeString из строки с валидацией.
// Принимает "HH:MM" и "HH:MM:SS", всегда нормализует к "HH:MM".
func NewTimeStringFromString(s string) (TimeString, error) {
	if t, err := time.Parse(timeLayout, s); err == nil {
		return TimeString(t.Format(timeLayout)), nil
	}
	if t, err := time.Parse(timeLayoutSeconds, s); err == nil {
		return TimeString(t.Format(timeLayout)), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
}

// String возвращает каноническое строковое представление "HH:MM"
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero возвращает true, если значение не задано
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate проверяет, что значение соответствует формату "HH:MM"
func (ts TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(ts)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(ts))
	}
	return nil
}

// Equal сравнивает два значения с нормализацией.
// "09:00" и "09:00:00" считаются равными.
func (ts TimeString) Equal(other TimeString) bool {
	a, errA := ts.toTime()
	b, errB := other.toTime()
	if errA != nil || errB != nil {
		return ts == other
	}
	return a.Equal(b)
}

// IsBefore возвращает true, если ts строго раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	a, errA := ts.toTime()
	b, errB := other.toTime()
	if errA != nil || errB != nil {
		return false
	}
	return a.Before(b)
}

// IsAfter возвращает true, если ts строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	a, errA := ts.toTime()
	b, errB := other.toTime()
	if errA != nil || errB != nil {
		return false
	}
	return a.After(b)
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед.
// Результат не может выходить за границы суток.
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	if minutes < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidMinutes, minutes)
	}

	t, err := ts.toTime()
	if err != nil {
		return "", err
	}

	shifted := t.Add(time.Duration(minutes) * time.Minute)
	if shifted.Day() != t.Day() {
		return "", fmt.Errorf("%w: %s + %d minutes crosses midnight", ErrInvalidMinutes, ts, minutes)
	}

	return TimeString(shifted.Format(timeLayout)), nil
}

// Scan реализует sql.Scanner.
// Postgres возвращает колонки TIME как строку "HH:MM:SS" или time.Time.
func (ts *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*ts = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*ts = parsed
		return nil
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeFormat, value)
	}
}

// Value реализует driver.Valuer
func (ts TimeString) Value() (driver.Value, error) {
	if ts.IsZero() {
		return nil, nil
	}
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return string(ts), nil
}

func (ts TimeString) toTime() (time.Time, error) {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		// Допускаем суффикс секунд из БД
		t, err = time.Parse(timeLayoutSeconds, string(ts))
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(ts))
		}
	}
	return t, nil
}

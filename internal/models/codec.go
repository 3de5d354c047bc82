package models

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	compactDateLayout     = "20060102"
	compactDateTimeLayout = "20060102T1504"
)

// ParseCompactDate разбирает дату в компактном формате YYYYMMDD.
func ParseCompactDate(s string) (time.Time, error) {
	t, err := time.Parse(compactDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	return t, nil
}

// ParseCompactDateTime разбирает метку времени в формате YYYYMMDDTHHMM.
// Точность до минуты, без секунд и смещения часового пояса: пояс
// передаётся отдельным полем документа.
func ParseCompactDateTime(s string) (time.Time, error) {
	t, err := time.Parse(compactDateTimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDateTime, s)
	}
	return t, nil
}

// Date - календарная дата в компактной кодировке YYYYMMDD.
// Литерал разбирается на этапе валидации, чтобы ошибка несла полный
// путь до поля, а не смещение в потоке JSON.
type Date struct {
	raw string
	t   time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		s = string(b)
	}
	d.raw = s
	return nil
}

// Time возвращает разобранную дату.
func (d Date) Time() time.Time {
	return d.t
}

// IsZero сообщает, что поле отсутствовало во входном документе.
func (d Date) IsZero() bool {
	return d.raw == ""
}

func (d *Date) parse() error {
	t, err := ParseCompactDate(d.raw)
	if err != nil {
		return err
	}
	d.t = t
	return nil
}

// DateTime - метка времени в компактной кодировке YYYYMMDDTHHMM.
type DateTime struct {
	raw string
	t   time.Time
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		s = string(b)
	}
	d.raw = s
	return nil
}

// Time возвращает разобранную метку времени.
func (d DateTime) Time() time.Time {
	return d.t
}

// IsZero сообщает, что поле отсутствовало во входном документе.
func (d DateTime) IsZero() bool {
	return d.raw == ""
}

func (d *DateTime) parse() error {
	t, err := ParseCompactDateTime(d.raw)
	if err != nil {
		return err
	}
	d.t = t
	return nil
}

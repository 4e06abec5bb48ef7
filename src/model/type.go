package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Accepted layouts for textual dates. Layouts without a zone are read as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	var strValue string
	err := json.Unmarshal(b, &strValue)
	if err == nil {
		floatValue, err := strconv.ParseFloat(strings.TrimSpace(strValue), 64)
		if err != nil {
			return errors.New(fmt.Sprintf("Amount: invalid number %q", strValue))
		}
		if !IsFinite(floatValue) {
			return errors.New(fmt.Sprintf("Amount: non-finite number %q", strValue))
		}
		*a = Amount(floatValue)
		return nil
	}

	var floatValue float64
	err = json.Unmarshal(b, &floatValue)

	if err == nil {
		*a = Amount(floatValue)
		return nil
	}

	return errors.New(fmt.Sprintf("Amount: unsupported data type given, %s", err.Error()))
}

func (a Amount) Value() float64 {
	return float64(a)
}

func (a Amount) IsFinite() bool {
	return IsFinite(a.Value())
}

// IsFinite is false for NaN and both infinities.
func IsFinite(value float64) bool {
	return !math.IsNaN(value) && !math.IsInf(value, 0)
}

type TimestampMilli int64

func NewTimestampMilli(t time.Time) TimestampMilli {
	return TimestampMilli(t.UnixMilli())
}

// ParseTimestampMilli reads unix milliseconds or any of the supported date layouts.
func ParseTimestampMilli(value string) (TimestampMilli, error) {
	value = strings.TrimSpace(value)
	if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
		return TimestampMilli(intValue), nil
	}

	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return NewTimestampMilli(parsed), nil
		}
	}

	return 0, errors.New(fmt.Sprintf("TimestampMilli: unsupported date format %q", value))
}

func (t *TimestampMilli) UnmarshalJSON(b []byte) error {
	var strValue string
	err := json.Unmarshal(b, &strValue)
	if err == nil {
		parsed, err := ParseTimestampMilli(strValue)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	}

	var intValue int64
	err = json.Unmarshal(b, &intValue)

	if err == nil {
		*t = TimestampMilli(intValue)
		return nil
	}

	return errors.New(fmt.Sprintf("TimestampMilli: unsupported data type given, %s", err.Error()))
}

func (t TimestampMilli) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Value())
}

func (t TimestampMilli) Value() int64 {
	return int64(t)
}

func (t TimestampMilli) Time() time.Time {
	return time.UnixMilli(t.Value())
}

func (t TimestampMilli) Add(milli int64) TimestampMilli {
	return TimestampMilli(t.Value() + milli)
}

func (t TimestampMilli) Eq(milli TimestampMilli) bool {
	return t.Value() == milli.Value()
}

func (t TimestampMilli) Gt(milli TimestampMilli) bool {
	return t.Value() > milli.Value()
}

func (t TimestampMilli) Gte(milli TimestampMilli) bool {
	return t.Value() >= milli.Value()
}

func (t TimestampMilli) Lt(milli TimestampMilli) bool {
	return t.Value() < milli.Value()
}

func (t TimestampMilli) Lte(milli TimestampMilli) bool {
	return t.Value() <= milli.Value()
}

package utils

import "time"

type TimeServiceInterface interface {
	WaitSeconds(seconds int64)
	Now() time.Time
	GetNowDateTimeString() string
}

// TimeHelper reports wall-clock time in Location, or local time when unset.
type TimeHelper struct {
	Location *time.Location
}

func (t *TimeHelper) WaitSeconds(seconds int64) {
	time.Sleep(time.Second * time.Duration(seconds))
}

func (t *TimeHelper) Now() time.Time {
	if t.Location == nil {
		return time.Now()
	}

	return time.Now().In(t.Location)
}

func (t *TimeHelper) GetNowDateTimeString() string {
	return t.Now().Format("2006-01-02 15:04:05")
}

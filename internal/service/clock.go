package service

import (
	"time"
)

const dateLayout = "2006-01-02"

// Clock 给出 "今天"，按配置时区计算
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return Clock{loc: loc, now: time.Now}
}

// FixedClock 测试用，固定时间
func FixedClock(t time.Time) Clock {
	return Clock{loc: t.Location(), now: func() time.Time { return t }}
}

func (c Clock) Today() string {
	now := time.Now
	if c.now != nil {
		now = c.now
	}
	loc := c.loc
	if loc == nil {
		loc = time.Local
	}
	return now().In(loc).Format(dateLayout)
}

// ResolveDate 空值取今天；非空时必须是 YYYY-MM-DD
func (c Clock) ResolveDate(date string) (string, error) {
	if date == "" {
		return c.Today(), nil
	}
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", ErrInvalidDate
	}
	return t.Format(dateLayout), nil
}

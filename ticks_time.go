package eidoplot

import (
	"time"

	"github.com/aclements/go-moremath/scale"
)

// TimeUnit is the calendar unit of a time tick step.
type TimeUnit int

const (
	UnitNone TimeUnit = iota
	UnitSecond
	UnitMinute
	UnitHour
	UnitDay
	UnitWeek
	UnitMonth
	UnitYear
)

// String returns the unit name.
func (u TimeUnit) String() string {
	return []string{"none", "second", "minute", "hour", "day", "week", "month", "year"}[int(u)]
}

// A timeLevel is one entry of the calendar step ladder: mult units
// per tick. Higher levels have fewer, wider ticks.
type timeLevel struct {
	unit TimeUnit
	mult int
}

var timeLevels = []timeLevel{
	{UnitSecond, 1}, {UnitSecond, 2}, {UnitSecond, 5},
	{UnitSecond, 10}, {UnitSecond, 15}, {UnitSecond, 30},
	{UnitMinute, 1}, {UnitMinute, 2}, {UnitMinute, 5},
	{UnitMinute, 10}, {UnitMinute, 15}, {UnitMinute, 30},
	{UnitHour, 1}, {UnitHour, 2}, {UnitHour, 3},
	{UnitHour, 6}, {UnitHour, 12},
	{UnitDay, 1}, {UnitDay, 2},
	{UnitWeek, 1}, {UnitWeek, 2},
	{UnitMonth, 1}, {UnitMonth, 2}, {UnitMonth, 3}, {UnitMonth, 6},
}

// levelAt extends the ladder beyond months with 1, 2, 5 × 10ᵏ years.
func levelAt(l int) timeLevel {
	if l < len(timeLevels) {
		return timeLevels[l]
	}
	i := l - len(timeLevels)
	mult := []int{1, 2, 5}[i%3]
	for k := 0; k < i/3; k++ {
		mult *= 10
	}
	return timeLevel{UnitYear, mult}
}

// approxSec is the nominal duration of one step at lv, used only to
// seed the level search.
func (lv timeLevel) approxSec() float64 {
	var unit float64
	switch lv.unit {
	case UnitSecond:
		unit = 1
	case UnitMinute:
		unit = 60
	case UnitHour:
		unit = 3600
	case UnitDay:
		unit = 86400
	case UnitWeek:
		unit = 7 * 86400
	case UnitMonth:
		unit = 30.44 * 86400
	case UnitYear:
		unit = 365.25 * 86400
	default:
		panic(lv.unit)
	}
	return unit * float64(lv.mult)
}

// anchor returns the latest calendar origin of lv at or before t:
// the start of the containing minute, hour, day, week (Monday),
// year, or the mult-aligned unit start. Walking forward from the
// anchor in exact calendar steps keeps ticks free of drift over
// variable month and day lengths.
func (lv timeLevel) anchor(t time.Time) time.Time {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	switch lv.unit {
	case UnitSecond:
		s = (s / lv.mult) * lv.mult
		return time.Date(y, mo, d, h, mi, s, 0, t.Location())
	case UnitMinute:
		mi = (mi / lv.mult) * lv.mult
		return time.Date(y, mo, d, h, mi, 0, 0, t.Location())
	case UnitHour:
		h = (h / lv.mult) * lv.mult
		return time.Date(y, mo, d, h, 0, 0, 0, t.Location())
	case UnitDay:
		return time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
	case UnitWeek:
		day := time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
		wd := (int(day.Weekday()) + 6) % 7 // Monday = 0
		return day.AddDate(0, 0, -wd)
	case UnitMonth:
		m := (int(mo) - 1) / lv.mult * lv.mult
		return time.Date(y, time.Month(m+1), 1, 0, 0, 0, 0, t.Location())
	case UnitYear:
		y = y / lv.mult * lv.mult
		return time.Date(y, time.January, 1, 0, 0, 0, 0, t.Location())
	default:
		panic(lv.unit)
	}
}

// next advances t by one step of lv with calendar arithmetic.
func (lv timeLevel) next(t time.Time) time.Time {
	switch lv.unit {
	case UnitSecond:
		return t.Add(time.Duration(lv.mult) * time.Second)
	case UnitMinute:
		return t.Add(time.Duration(lv.mult) * time.Minute)
	case UnitHour:
		return t.Add(time.Duration(lv.mult) * time.Hour)
	case UnitDay:
		return t.AddDate(0, 0, lv.mult)
	case UnitWeek:
		return t.AddDate(0, 0, 7*lv.mult)
	case UnitMonth:
		return t.AddDate(0, lv.mult, 0)
	case UnitYear:
		return t.AddDate(lv.mult, 0, 0)
	default:
		panic(lv.unit)
	}
}

// walk returns the ticks of lv inside [min, max].
func (lv timeLevel) walk(min, max time.Time) []time.Time {
	var ticks []time.Time
	for t := lv.anchor(min); !t.After(max); t = lv.next(t) {
		if t.Before(min) {
			continue
		}
		ticks = append(ticks, t)
	}
	return ticks
}

// levelTicker adapts the calendar ladder to moremath's Ticker
// contract over a fixed time range. Levels are 1-based so that the
// zero Min/MaxLevel convention of TickOptions stays available.
type levelTicker struct {
	min, max time.Time
}

func (lt levelTicker) CountTicks(level int) int {
	return len(levelAt(level - 1).walk(lt.min, lt.max))
}

func (lt levelTicker) TicksAtLevel(level int) interface{} {
	ws := levelAt(level - 1).walk(lt.min, lt.max)
	vs := make([]float64, len(ws))
	for i, w := range ws {
		vs[i] = timeToSec(w)
	}
	return vs
}

// TimeTicks locates calendar aware ticks on time bounds. The step is
// chosen from a ladder of calendar units (seconds up to multiples of
// years) as the narrowest step producing at most Max ticks, anchored
// at calendar origins and advanced with exact calendar arithmetic.
type TimeTicks struct {
	// Max is the tick count target. Zero means 10.
	Max int

	// Location is the timezone ticks are anchored in. Nil means UTC.
	Location *time.Location
}

func (l TimeTicks) Locate(b Bounds) (TickSet, error) {
	if b.Kind() != TimeBounds {
		return TickSet{}, &UnsupportedScaleError{Scale: "time ticks", Bounds: b.Kind()}
	}
	max := l.Max
	if max == 0 {
		max = 10
	}
	loc := l.Location
	if loc == nil {
		loc = time.UTC
	}
	tmin, tmax := b.TimeMin().In(loc), b.TimeMax().In(loc)
	span := b.Max() - b.Min()
	if span <= tinySpan {
		return TickSet{}, &TinySpanError{Span: span}
	}

	// Seed the search with the level whose nominal step first
	// reaches span/max.
	guess := 0
	for levelAt(guess).approxSec() < span/float64(max) {
		guess++
	}

	lt := levelTicker{min: tmin, max: tmax}
	opts := scale.TickOptions{Max: max, MinLevel: 1, MaxLevel: 1 << 20}
	level, ok := opts.FindLevel(lt, guess+1)
	if !ok {
		return TickSet{}, &TinySpanError{Span: span}
	}
	lv := levelAt(level - 1)
	return TickSet{Major: lt.TicksAtLevel(level).([]float64), Unit: lv.unit}, nil
}

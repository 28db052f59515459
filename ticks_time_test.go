package eidoplot

import (
	"strconv"
	"testing"
	"time"

	"github.com/aclements/go-moremath/scale"
)

func tm(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t
}

var timeTicksTests = []struct {
	min, max string
	n        int
	unit     TimeUnit
	first    string
	last     string
	count    int
}{
	// 40 seconds: 5 s steps.
	{"2021-03-01 10:00:02", "2021-03-01 10:00:42", 10, UnitSecond,
		"2021-03-01 10:00:05", "2021-03-01 10:00:40", 8},
	// One hour: 10 min steps.
	{"2021-03-01 10:00:00", "2021-03-01 11:00:00", 10, UnitMinute,
		"2021-03-01 10:00:00", "2021-03-01 11:00:00", 7},
	// One day: 3 h steps.
	{"2021-03-01 00:00:00", "2021-03-02 00:00:00", 10, UnitHour,
		"2021-03-01 00:00:00", "2021-03-02 00:00:00", 9},
	// Two weeks: 2 day steps anchored at day starts. The anchor
	// itself falls before the lower bound and is dropped.
	{"2021-03-01 12:00:00", "2021-03-15 12:00:00", 10, UnitDay,
		"2021-03-03 00:00:00", "2021-03-15 00:00:00", 7},
	// Half a year: month steps.
	{"2021-01-15 00:00:00", "2021-07-15 00:00:00", 10, UnitMonth,
		"2021-02-01 00:00:00", "2021-07-01 00:00:00", 6},
	// A decade: single year steps fill the target exactly.
	{"2011-06-01 00:00:00", "2021-06-01 00:00:00", 10, UnitYear,
		"2012-01-01 00:00:00", "2021-01-01 00:00:00", 10},
}

func TestTimeTicks(t *testing.T) {
	for i, tc := range timeTicksTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			b := TimeSpan(tm(tc.min), tm(tc.max))
			got, err := TimeTicks{Max: tc.n}.Locate(b)
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if got.Unit != tc.unit {
				t.Errorf("unit = %v, want %v", got.Unit, tc.unit)
			}
			if len(got.Major) != tc.count {
				t.Fatalf("%d ticks %v, want %d", len(got.Major), got.Major, tc.count)
			}
			if len(got.Major) > tc.n {
				t.Errorf("%d ticks exceed the target %d", len(got.Major), tc.n)
			}
			first := secToTime(got.Major[0])
			last := secToTime(got.Major[len(got.Major)-1])
			if !first.Equal(tm(tc.first)) {
				t.Errorf("first tick %v, want %v", first, tm(tc.first))
			}
			if !last.Equal(tm(tc.last)) {
				t.Errorf("last tick %v, want %v", last, tm(tc.last))
			}
			for _, v := range got.Major {
				if v < b.Min()-edgeTol || v > b.Max()+edgeTol {
					t.Errorf("tick %v outside bounds", secToTime(v))
				}
			}
		})
	}
}

func TestTimeTicksKind(t *testing.T) {
	_, err := TimeTicks{}.Locate(Numeric(0, 1))
	var serr *UnsupportedScaleError
	if !asErr(err, &serr) {
		t.Fatalf("got %v, want UnsupportedScaleError", err)
	}
}

var _ scale.Ticker = levelTicker{}

func TestLevelTicker(t *testing.T) {
	lt := levelTicker{min: tm("2012-03-01 00:00:00"), max: tm("2012-03-15 00:00:00")}
	prev := -1
	for level := 1; level <= 14; level++ {
		n := lt.CountTicks(level)
		vs := lt.TicksAtLevel(level).([]float64)
		if len(vs) != n {
			t.Errorf("level %d: CountTicks=%d, TicksAtLevel len=%d", level, n, len(vs))
		}
		if prev >= 0 && n > prev {
			t.Errorf("level %d: count %d rose above level %d count %d", level, n, level-1, prev)
		}
		prev = n
	}
}

func TestWeekAnchorMonday(t *testing.T) {
	// 2021-03-04 is a Thursday; the containing week starts Monday
	// the 1st.
	lv := timeLevel{UnitWeek, 1}
	got := lv.anchor(tm("2021-03-04 13:00:00"))
	want := tm("2021-03-01 00:00:00")
	if !got.Equal(want) {
		t.Errorf("week anchor = %v, want %v", got, want)
	}
}

func TestMonthWalkNoDrift(t *testing.T) {
	// Month steps land on the 1st even across short months.
	lv := timeLevel{UnitMonth, 1}
	ticks := lv.walk(tm("2021-01-01 00:00:00"), tm("2021-06-01 00:00:00"))
	for _, tick := range ticks {
		if tick.Day() != 1 || tick.Hour() != 0 {
			t.Errorf("month tick %v is not a month start", tick)
		}
	}
	if len(ticks) != 6 {
		t.Errorf("%d month ticks, want 6", len(ticks))
	}
}

func TestLevelAtYears(t *testing.T) {
	base := len(timeLevels)
	tests := []struct {
		l    int
		mult int
	}{
		{base, 1}, {base + 1, 2}, {base + 2, 5},
		{base + 3, 10}, {base + 4, 20}, {base + 5, 50},
		{base + 6, 100},
	}
	for _, tc := range tests {
		lv := levelAt(tc.l)
		if lv.unit != UnitYear || lv.mult != tc.mult {
			t.Errorf("levelAt(%d) = %v×%d, want year×%d",
				tc.l, lv.unit, lv.mult, tc.mult)
		}
	}
}

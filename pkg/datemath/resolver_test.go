package datemath_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"nextact/pkg/datemath"
)

// 2024-06-10 is a Monday.
var monday = datemath.NewDate(2024, time.June, 10)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		today    datemath.Date
		wantRule string
		want     datemath.Date
	}{
		{
			name:     "Today",
			text:     "hôm nay đi chợ",
			today:    monday,
			wantRule: "today",
			want:     monday,
		},
		{
			name:     "Tomorrow",
			text:     "ngày mai nộp hồ sơ",
			today:    monday,
			wantRule: "tomorrow",
			want:     datemath.NewDate(2024, time.June, 11),
		},
		{
			name:     "Day after tomorrow",
			text:     "ngày kia họp nhóm",
			today:    monday,
			wantRule: "day_after_tomorrow",
			want:     datemath.NewDate(2024, time.June, 12),
		},
		{
			name:     "Friday next week",
			text:     "làm báo cáo vào thứ 6 tuần sau",
			today:    monday,
			wantRule: "friday",
			want:     datemath.NewDate(2024, time.June, 21),
		},
		{
			name:     "Friday spelled out",
			text:     "gọi điện cho khách thứ sáu",
			today:    monday,
			wantRule: "friday",
			want:     datemath.NewDate(2024, time.June, 14),
		},
		{
			name:     "Monday unspecified on a Monday is next Monday",
			text:     "thứ hai nộp bài",
			today:    monday,
			wantRule: "monday",
			want:     datemath.NewDate(2024, time.June, 17),
		},
		{
			name:     "Monday this week on a Monday is today",
			text:     "thứ 2 tuần này họp",
			today:    monday,
			wantRule: "monday",
			want:     monday,
		},
		{
			name:     "Sunday",
			text:     "dọn nhà chủ nhật",
			today:    monday,
			wantRule: "sunday",
			want:     datemath.NewDate(2024, time.June, 16),
		},
		{
			name:     "Sunday southern spelling",
			text:     "đi chơi chủ nhựt",
			today:    monday,
			wantRule: "sunday",
			want:     datemath.NewDate(2024, time.June, 16),
		},
		{
			name:     "Weekend from Monday",
			text:     "nộp bài cuối tuần",
			today:    monday,
			wantRule: "weekend",
			want:     datemath.NewDate(2024, time.June, 15),
		},
		{
			name:     "Weekend on Saturday stays today",
			text:     "dọn dẹp cuối tuần",
			today:    datemath.NewDate(2024, time.June, 15),
			wantRule: "weekend",
			want:     datemath.NewDate(2024, time.June, 15),
		},
		{
			name:     "Weekend on Sunday stays today",
			text:     "dọn dẹp cuối tuần",
			today:    datemath.NewDate(2024, time.June, 16),
			wantRule: "weekend",
			want:     datemath.NewDate(2024, time.June, 16),
		},
		{
			name:     "Today wins over weekday",
			text:     "hôm nay thứ 2",
			today:    datemath.NewDate(2024, time.June, 12),
			wantRule: "today",
			want:     datemath.NewDate(2024, time.June, 12),
		},
		{
			name:     "Weekday wins over weekend",
			text:     "thứ 7 cuối tuần đi cắm trại",
			today:    monday,
			wantRule: "saturday",
			want:     datemath.NewDate(2024, time.June, 15),
		},
		{
			name:     "Upper case input",
			text:     "HỌP THỨ BA TUẦN SAU",
			today:    monday,
			wantRule: "tuesday",
			want:     datemath.NewDate(2024, time.June, 18),
		},
		{
			name:     "Decomposed diacritics",
			text:     "th\u01b0\u0301 6 n\u00f4\u0323p ba\u0301o ca\u0301o",
			today:    monday,
			wantRule: "friday",
			want:     datemath.NewDate(2024, time.June, 14),
		},
		{
			name:     "Crosses month end",
			text:     "ngày kia",
			today:    datemath.NewDate(2024, time.June, 30),
			wantRule: "day_after_tomorrow",
			want:     datemath.NewDate(2024, time.July, 2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := datemath.Resolve(tt.text, tt.today)
			if !got.Found() {
				t.Fatalf("Resolve(%q) found nothing", tt.text)
			}
			if got.Rule != tt.wantRule {
				t.Errorf("Resolve(%q) rule = %s, want %s", tt.text, got.Rule, tt.wantRule)
			}
			if !got.Date.Equal(tt.want) {
				t.Errorf("Resolve(%q) = %s, want %s", tt.text, got.Date, tt.want)
			}
		})
	}
}

func TestResolve_NotFound(t *testing.T) {
	for _, text := range []string{"", "mua sữa", "học tiếng anh", "tuần sau"} {
		got := datemath.Resolve(text, monday)
		if got.Found() {
			t.Errorf("Resolve(%q) = %s via %s, want not found", text, got.Date, got.Rule)
		}
		if got.Status != datemath.StatusNotFound {
			t.Errorf("Resolve(%q) status = %s", text, got.Status)
		}
	}
}

func TestResolve_ScopeConflict(t *testing.T) {
	got := datemath.Resolve("thứ 6 tuần này hay tuần sau", monday)
	if !got.ScopeConflict {
		t.Error("expected scope conflict")
	}
	if got.Scope != datemath.ScopeNextWeek {
		t.Errorf("scope = %s, want next_week", got.Scope)
	}
	if want := datemath.NewDate(2024, time.June, 21); !got.Date.Equal(want) {
		t.Errorf("date = %s, want %s", got.Date, want)
	}
}

func TestResolve_TodayAlwaysWins(t *testing.T) {
	for i := 0; i < 14; i++ {
		today := monday.AddDays(i)
		for _, text := range []string{"hôm nay thứ 2", "hôm nay", "Hôm nay chủ nhật tuần sau"} {
			if got := datemath.Resolve(text, today); !got.Date.Equal(today) {
				t.Errorf("Resolve(%q, %s) = %s, want today", text, today, got.Date)
			}
		}
		if got := datemath.Resolve("ngày mai", today); !got.Date.Equal(today.AddDays(1)) {
			t.Errorf("Resolve(ngày mai, %s) = %s", today, got.Date)
		}
	}
}

func TestResolver_RulesOrder(t *testing.T) {
	want := []string{
		"today", "tomorrow", "day_after_tomorrow",
		"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
		"weekend",
	}

	rules := datemath.NewResolver().Rules()
	if len(rules) != len(want) {
		t.Fatalf("got %d rules, want %d", len(rules), len(want))
	}
	for i, r := range rules {
		if r.Name != want[i] {
			t.Errorf("rule %d = %s, want %s", i, r.Name, want[i])
		}
	}
}

func TestResolve_Concurrent(t *testing.T) {
	r := datemath.NewResolver()
	want := datemath.NewDate(2024, time.June, 21)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := r.Resolve("thứ 6 tuần sau", monday); !got.Date.Equal(want) {
					t.Errorf("got %s, want %s", got.Date, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestResolve_InvalidUTF8(t *testing.T) {
	res := datemath.Resolve("h\xffm nay", monday)
	if !res.Failed() {
		t.Fatalf("Resolve(invalid) status = %v, want failed", res.Status)
	}
	if !errors.Is(res.Err, datemath.ErrInvalidText) {
		t.Errorf("Resolve(invalid) err = %v, want ErrInvalidText", res.Err)
	}
	if res.Found() {
		t.Error("failed resolution must not report a date")
	}
}

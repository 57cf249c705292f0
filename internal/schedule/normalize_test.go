package schedule

import (
	"errors"
	"testing"
)

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"10:00am-12:00pm", "10:00 AM - 12:00 PM"},
		{"10:00-12:00", "10:00 AM - 12:00 PM"},
		{"2:00pm-4:00", "2:00 PM - 4:00 PM"},
		{"10pm-1", "10:00 PM - 1:00 AM"},
		{"8:00 - 9:00", "8:00 AM - 9:00 AM"},
		{"8:00 to 10:00", "8:00 AM - 10:00 AM"},
		{"10:00-1:00", "10:00 AM - 1:00 PM"},
		{"11:00-1:00", "11:00 AM - 1:00 PM"},
		{"3:00-5:00", "3:00 PM - 5:00 PM"},
		{"12:00-2:00", "12:00 PM - 2:00 PM"},
		{"2pm-12", "2:00 PM - 12:00 AM"},
		{"09:05", "9:05 AM"},
		{"7:5-8", "7:05 AM - 8:00 AM"},
		{"10:00 am - 12:00 pm", "10:00 AM - 12:00 PM"},
		{"10:00AM TO 11:30AM", "10:00 AM - 11:30 AM"},
		{"9:00a-10:30a", "9:00 AM - 10:30 AM"},
		{"1:00p-2:00p", "1:00 PM - 2:00 PM"},
		{"10:00-", "10:00 AM"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := NormalizeTime(tt.raw); got != tt.want {
				t.Errorf("NormalizeTime(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeTime_Idempotent(t *testing.T) {
	for _, raw := range []string{"10:00am-12:00pm", "10pm-1", "2:00pm-4:00", "8:00-9:00", "12:30-1:15"} {
		once := NormalizeTime(raw)
		if twice := NormalizeTime(once); twice != once {
			t.Errorf("NormalizeTime(%q) = %q, want %q", once, twice, once)
		}
	}
}

func TestNormalizeTime_Malformed(t *testing.T) {
	for _, raw := range []string{"", "  noon ", "ab:cd-ef", "10:xy"} {
		want := trimmed(raw)
		if got := NormalizeTime(raw); got != want {
			t.Errorf("NormalizeTime(%q) = %q, want %q", raw, got, want)
		}
		if _, err := ParseTimeRange(raw); !errors.Is(err, ErrMalformedTime) {
			t.Errorf("ParseTimeRange(%q) error = %v, want ErrMalformedTime", raw, err)
		}
	}
}

func trimmed(s string) string {
	for len(s) > 0 && s[0] == ' ' {
		s = s[1:]
	}
	for len(s) > 0 && s[len(s)-1] == ' ' {
		s = s[:len(s)-1]
	}
	return s
}

func TestParseTimeRange(t *testing.T) {
	r, err := ParseTimeRange("10pm-1")
	if err != nil {
		t.Fatalf("ParseTimeRange() error = %v", err)
	}
	if !r.HasEnd {
		t.Fatal("expected an end time")
	}
	if r.Start.Hour24() != 22 {
		t.Errorf("Start.Hour24() = %d, want 22", r.Start.Hour24())
	}
	if r.End.Hour24() != 1 {
		t.Errorf("End.Hour24() = %d, want 1", r.End.Hour24())
	}
}

func TestClock_Hour24(t *testing.T) {
	tests := []struct {
		clock Clock
		want  int
	}{
		{Clock{Hour: 12, Meridiem: AM}, 0},
		{Clock{Hour: 12, Meridiem: PM}, 12},
		{Clock{Hour: 1, Meridiem: PM}, 13},
		{Clock{Hour: 9, Meridiem: AM}, 9},
	}
	for _, tt := range tests {
		if got := tt.clock.Hour24(); got != tt.want {
			t.Errorf("%v Hour24() = %d, want %d", tt.clock, got, tt.want)
		}
	}
}

func TestStartMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"10:00 AM - 12:00 PM", 600},
		{"12:00 AM - 1:00 AM", 0},
		{"12:30 PM - 1:00 PM", 750},
		{"2:15 PM - 4:00 PM", 855},
		{"8:00 AM", 480},
		{"8:00am", 480},
		{"garbage", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := StartMinutes(tt.in); got != tt.want {
			t.Errorf("StartMinutes(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

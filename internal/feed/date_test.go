package feed

import "testing"

func TestParseDateKey(t *testing.T) {
	valid := []string{
		"2024-01-01",
		"2024-01-01T10:20:30Z",
		"2024-01-01T10:20:30+09:00",
		"2024-01-01 10:20:30",
		"2024-06-01T10:00",
		"2024-06",
		"2024",
		"2024/06/01",
	}
	for _, s := range valid {
		if !parseDateKey(s).valid {
			t.Errorf("parseDateKey(%q) invalid", s)
		}
	}
	invalid := []string{"", "   ", "soon", "2024-13-45", "3:04PM", "15:04:05"}
	for _, s := range invalid {
		if parseDateKey(s).valid {
			t.Errorf("parseDateKey(%q) should be invalid", s)
		}
	}
}

func TestParseDateKey_PartialDatesOrder(t *testing.T) {
	ordered := []string{"2024-06-01T10:00", "2024-06-01", "2024-06", "2024", "2023/12/31"}
	for i := 1; i < len(ordered); i++ {
		a, b := parseDateKey(ordered[i-1]), parseDateKey(ordered[i])
		if compareDesc(a, b) > 0 {
			t.Errorf("%q should not sort after %q", ordered[i-1], ordered[i])
		}
	}
	if compareDesc(parseDateKey("3:04PM"), parseDateKey("1999")) <= 0 {
		t.Error("time-only value should sort after a dated one")
	}
}

func TestCompareDesc(t *testing.T) {
	older := parseDateKey("2020-01-01")
	newer := parseDateKey("2021-01-01")
	none := dateKey{}

	if compareDesc(newer, older) >= 0 {
		t.Error("newer should sort before older")
	}
	if compareDesc(older, none) >= 0 {
		t.Error("dated should sort before undated")
	}
	if compareDesc(none, older) <= 0 {
		t.Error("undated should sort after dated")
	}
	if compareDesc(none, none) != 0 {
		t.Error("undated keys should tie")
	}
}

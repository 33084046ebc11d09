package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		input string
		ok    bool
	}{
		{"07:00:00", true},
		{"23:59:59", true},
		{"07:30", true}, // HH:mm normalized to HH:mm:00
		{"7:00:00", false},
		{"24:00:00", false},
		{"07:60:00", false},
		{"not-a-time", false},
		{"", false},
	}
	for _, c := range cases {
		_, ok := ParseTimeOfDay(c.input)
		if ok != c.ok {
			t.Errorf("ParseTimeOfDay(%q) ok = %v, want %v", c.input, ok, c.ok)
		}
	}
}

func TestParseTimeOfDay_NormalizesShortForm(t *testing.T) {
	parsed, ok := ParseTimeOfDay("07:30")
	if !ok {
		t.Fatal("ParseTimeOfDay(07:30) failed")
	}
	if parsed.Hour() != 7 || parsed.Minute() != 30 || parsed.Second() != 0 {
		t.Errorf("ParseTimeOfDay(07:30) = %v, want 07:30:00", parsed)
	}
}

func TestIsNumeric(t *testing.T) {
	valid := []string{"123", "0", "9876543210"}
	invalid := []string{"abc", "123a", "", "-123"}
	for _, s := range valid {
		if !IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsValidNIS(t *testing.T) {
	valid := []string{"1234", "20240012", "12345678901234567890"}
	invalid := []string{"123", "123456789012345678901", "12a4", ""}
	for _, nis := range valid {
		if !IsValidNIS(nis) {
			t.Errorf("IsValidNIS(%q) = false, want true", nis)
		}
	}
	for _, nis := range invalid {
		if IsValidNIS(nis) {
			t.Errorf("IsValidNIS(%q) = true, want false", nis)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"budi.santoso", "guru_01", "admin-smk"}
	invalid := []string{"ab", "with space", "héllo", ""}
	for _, u := range valid {
		if !IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = false, want true", u)
		}
	}
	for _, u := range invalid {
		if IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = true, want false", u)
		}
	}
}

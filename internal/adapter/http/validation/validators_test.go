package validation

import "testing"

func TestMobilePattern(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"9876543210", true},
		{"6000000000", true},
		{"5876543210", false},
		{"98765432100", false},
		{"987654321", false},
		{"98765abcde", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := mobilePattern.MatchString(tc.value); got != tc.ok {
			t.Errorf("mobile %q: expected %v, got %v", tc.value, tc.ok, got)
		}
	}
}

func TestAadharPattern(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"123456789012", true},
		{"12345678901", false},
		{"1234567890123", false},
		{"12345678901a", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := aadharPattern.MatchString(tc.value); got != tc.ok {
			t.Errorf("aadhar %q: expected %v, got %v", tc.value, tc.ok, got)
		}
	}
}

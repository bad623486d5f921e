package tracker

import "testing"

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		input  string
		want   Money
		wantOk bool
	}{
		{"$1,234.50", USD(1234.5), true},
		{" 42 ", USD(42), true},
		{"", USD(0), true},
		{"-12.5", USD(-12.5), true},
		{"n/a", USD(0), false},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := ParseAmount(tc.input, "USD")
			if ok != tc.wantOk || !got.Equal(tc.want) {
				t.Errorf("ParseAmount(%q) = %v, %v, want %v, %v", tc.input, got, ok, tc.want, tc.wantOk)
			}
		})
	}
}

func TestMoneyString(t *testing.T) {
	testCases := []struct {
		m    Money
		want string
	}{
		{USD(1234.5), "$1,234.50"},
		{USD(-300), "-$300.00"},
		{USD(0.005), "$0.01"},
		{M(12.5, ""), "12.50"},
	}
	for _, tc := range testCases {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestMoneyWeakCurrency(t *testing.T) {
	var zero Money
	if got := zero.Add(USD(10)); got.Currency() != "USD" {
		t.Errorf("zero.Add(USD) currency = %q, want USD", got.Currency())
	}
}

package listing

import "testing"

func TestStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusActive, StatusSold, true},
		{StatusActive, StatusCancelled, true},
		{StatusActive, StatusActive, true},
		{StatusSold, StatusSold, true},
		{StatusSold, StatusActive, false},
		{StatusSold, StatusCancelled, false},
		{StatusCancelled, StatusActive, false},
		{StatusCancelled, StatusSold, false},
		{StatusActive, Status("archived"), false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%s.CanTransitionTo(%s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestStatusIsTerminal(t *testing.T) {
	tests := []struct {
		s    Status
		want bool
	}{
		{StatusActive, false},
		{StatusSold, true},
		{StatusCancelled, true},
	}
	for _, tt := range tests {
		if got := tt.s.IsTerminal(); got != tt.want {
			t.Errorf("%s.IsTerminal() = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestCurrencyIsValid(t *testing.T) {
	tests := []struct {
		c    Currency
		want bool
	}{
		{CurrencyEth, true},
		{CurrencyUsdt, true},
		{CurrencyDai, true},
		{Currency("eth"), false},
		{Currency(""), false},
	}
	for _, tt := range tests {
		if got := tt.c.IsValid(); got != tt.want {
			t.Errorf("%s.IsValid() = %v, want %v", tt.c, got, tt.want)
		}
	}
}

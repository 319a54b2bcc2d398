package service

import (
	"strings"
	"testing"
)

func TestBalanceInWords(t *testing.T) {
	if got := BalanceInWords(0); got != "zero" {
		t.Fatalf("BalanceInWords(0) = %q, want zero", got)
	}
	if got := BalanceInWords(1); got != "one" {
		t.Fatalf("BalanceInWords(1) = %q, want one", got)
	}
	got := BalanceInWords(1050)
	if got == "" || !strings.Contains(got, "thousand") {
		t.Fatalf("BalanceInWords(1050) = %q, harus menyebut thousand", got)
	}
}

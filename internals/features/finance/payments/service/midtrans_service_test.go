package service

import "testing"

func TestSettlementStatus(t *testing.T) {
	cases := []struct {
		txStatus    string
		fraudStatus string
		want        string
	}{
		{"settlement", "", "completed"},
		{"capture", "accept", "completed"},
		{"capture", "challenge", "pending"},
		{"deny", "", "failed"},
		{"cancel", "", "failed"},
		{"expire", "", "failed"},
		{"failure", "", "failed"},
		{"pending", "", "pending"},
		{"SETTLEMENT", "", "completed"},
		{"", "", "pending"},
	}
	for _, tc := range cases {
		if got := SettlementStatus(tc.txStatus, tc.fraudStatus); got != tc.want {
			t.Fatalf("SettlementStatus(%q, %q) = %s, want %s", tc.txStatus, tc.fraudStatus, got, tc.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 3); got != "abc" {
		t.Fatalf("truncate = %s", got)
	}
	if got := truncate("ab", 3); got != "ab" {
		t.Fatalf("truncate pendek = %s", got)
	}
}

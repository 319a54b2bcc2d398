package service

import (
	"strings"
	"testing"
)

func TestNewReceiptNoFormat(t *testing.T) {
	no := NewReceiptNo()
	if !strings.HasPrefix(no, "RCPT-") {
		t.Fatalf("prefix salah: %s", no)
	}
	body := strings.TrimPrefix(no, "RCPT-")
	if len(body) != 24 {
		t.Fatalf("panjang body = %d, want 24 (%s)", len(body), no)
	}
	for _, r := range body {
		if !strings.ContainsRune("0123456789ABCDEF", r) {
			t.Fatalf("karakter non-hex %q di %s", r, no)
		}
	}
}

func TestNewReceiptNoUnique(t *testing.T) {
	seen := make(map[string]bool, 10000)
	for i := 0; i < 10000; i++ {
		no := NewReceiptNo()
		if seen[no] {
			t.Fatalf("receipt no duplikat: %s", no)
		}
		seen[no] = true
	}
}

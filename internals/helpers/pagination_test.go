package helper

import "testing"

func TestParamsLimitOffset(t *testing.T) {
	p := Params{Page: 3, PerPage: 25}
	if p.Limit() != 25 {
		t.Fatalf("Limit = %d", p.Limit())
	}
	if p.Offset() != 50 {
		t.Fatalf("Offset = %d, want 50", p.Offset())
	}
}

func TestOrderClauseWhitelist(t *testing.T) {
	allowed := map[string]string{
		"created_at": "fee_created_at",
		"amount":     "fee_amount",
	}

	p := Params{SortBy: "amount", SortOrder: "asc"}
	if got := p.OrderClause(allowed, "created_at"); got != "fee_amount ASC" {
		t.Fatalf("OrderClause = %q", got)
	}

	// kolom di luar whitelist jatuh ke default — bukan injeksi
	p = Params{SortBy: "fee_amount; DROP TABLE fees", SortOrder: "desc"}
	if got := p.OrderClause(allowed, "created_at"); got != "fee_created_at DESC" {
		t.Fatalf("OrderClause injeksi = %q", got)
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	pg := BuildPaginationFromPage(101, 2, 25)
	if pg.TotalPages != 5 {
		t.Fatalf("TotalPages = %d, want 5", pg.TotalPages)
	}
	if !pg.HasNext || !pg.HasPrev {
		t.Fatalf("HasNext/HasPrev salah: %+v", pg)
	}

	pg = BuildPaginationFromPage(10, 1, 25)
	if pg.TotalPages != 1 || pg.HasNext || pg.HasPrev {
		t.Fatalf("single page salah: %+v", pg)
	}
}

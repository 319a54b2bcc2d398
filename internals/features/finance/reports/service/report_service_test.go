package service

import (
	"testing"
	"time"
)

func TestEfficiencyPct(t *testing.T) {
	cases := []struct {
		paid, due int64
		want      float64
	}{
		{500, 1000, 50},
		{1000, 1000, 100},
		{0, 1000, 0},
		{0, 0, 0},
		{100, 0, 0},
	}
	for _, tc := range cases {
		if got := EfficiencyPct(tc.paid, tc.due); got != tc.want {
			t.Fatalf("EfficiencyPct(%d, %d) = %f, want %f", tc.paid, tc.due, got, tc.want)
		}
	}
}

func TestExportOutstandingXLSX(t *testing.T) {
	due := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	rows := []OutstandingRow{
		{StudentName: "Budi", AdmissionNo: "ADM-001", FeeTypeName: "SPP", AcademicYear: "2026/2027", Term: "term_1", Status: "overdue", DueDate: &due, Remaining: 150000},
		{StudentName: "Sari", AdmissionNo: "ADM-002", FeeTypeName: "Ujian", Status: "partial", Remaining: 50000},
	}
	buf, err := ExportOutstandingXLSX(rows)
	if err != nil {
		t.Fatalf("export gagal: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("workbook kosong")
	}
}

// Dua pembayaran 100 dan 200 di hari yang sama, beda metode, harus
// jadi SATU baris: total 300, dua transaksi.
func TestGroupCollectionsByDay(t *testing.T) {
	day1 := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	rows := GroupCollectionsByDay([]CollectionMethodRow{
		{Day: day1, Method: "cash", TxCount: 1, TotalAmount: 100},
		{Day: day1, Method: "online", TxCount: 1, TotalAmount: 200},
		{Day: day2, Method: "cash", TxCount: 2, TotalAmount: 450},
	})
	if len(rows) != 2 {
		t.Fatalf("dapat %d baris, harusnya 2 (satu per tanggal)", len(rows))
	}
	if rows[0].TotalAmount != 300 || rows[0].TxCount != 2 {
		t.Fatalf("hari pertama: total=%d count=%d, want 300/2", rows[0].TotalAmount, rows[0].TxCount)
	}
	if len(rows[0].Methods) != 2 {
		t.Fatalf("rincian metode hari pertama = %d, want 2", len(rows[0].Methods))
	}
	if rows[1].TotalAmount != 450 || rows[1].TxCount != 2 {
		t.Fatalf("hari kedua: total=%d count=%d, want 450/2", rows[1].TotalAmount, rows[1].TxCount)
	}

	if got := GroupCollectionsByDay(nil); len(got) != 0 {
		t.Fatalf("input kosong menghasilkan %d baris", len(got))
	}
}

func TestExportCollectionXLSX(t *testing.T) {
	day1 := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	rows := GroupCollectionsByDay([]CollectionMethodRow{
		{Day: day1, Method: "cash", TxCount: 3, TotalAmount: 450000},
		{Day: day2, Method: "online", TxCount: 1, TotalAmount: 150000},
	})
	buf, err := ExportCollectionXLSX(rows)
	if err != nil {
		t.Fatalf("export gagal: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("workbook kosong")
	}
}

func TestExportFilename(t *testing.T) {
	if got := ExportFilename("outstanding", "2026-09-01"); got != "outstanding-2026-09-01.xlsx" {
		t.Fatalf("filename = %s", got)
	}
}

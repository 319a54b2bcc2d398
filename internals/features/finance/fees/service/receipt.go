// file: internals/features/finance/fees/service/receipt.go
package service

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

const receiptPrefix = "RCPT-"

// NewReceiptNo: nomor kwitansi unik dari UUID v4 — tanpa counter di DB,
// aman dipanggil paralel. Format: RCPT-<24 hex uppercase>.
func NewReceiptNo() string {
	u := uuid.New()
	raw := hex.EncodeToString(u[:])
	return receiptPrefix + strings.ToUpper(raw[:24])
}

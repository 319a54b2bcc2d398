// file: internals/features/finance/payments/service/midtrans_service.go
package service

import (
	"errors"
	"log"
	"strings"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var snapClient snap.Client

// InitMidtrans: inisialisasi snap client sekali saat boot.
func InitMidtrans(serverKey string, production bool) {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	snapClient.New(serverKey, env)
	log.Println("✅ Midtrans snap client siap")
}

type CheckoutInput struct {
	OrderID     string
	Amount      int64
	StudentName string
	FeeLabel    string
}

// CreateSnapTransaction: buat transaksi Snap untuk pembayaran online.
// Mengembalikan token + redirect URL untuk frontend.
func CreateSnapTransaction(in CheckoutInput) (token string, redirectURL string, err error) {
	if in.Amount <= 0 {
		return "", "", errors.New("amount harus > 0")
	}
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  in.OrderID,
			GrossAmt: in.Amount,
		},
		Items: &[]midtrans.ItemDetails{{
			ID:    in.OrderID,
			Name:  truncate(in.FeeLabel, 50),
			Price: in.Amount,
			Qty:   1,
		}},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: truncate(in.StudentName, 50),
		},
	}
	resp, snapErr := snapClient.CreateTransaction(req)
	if snapErr != nil {
		return "", "", snapErr
	}
	return resp.Token, resp.RedirectURL, nil
}

// SettlementStatus: terjemahkan transaction_status midtrans ke status
// internal. fraud_status dicek untuk kartu.
func SettlementStatus(transactionStatus, fraudStatus string) string {
	switch strings.ToLower(transactionStatus) {
	case "capture":
		if strings.ToLower(fraudStatus) == "accept" {
			return "completed"
		}
		return "pending"
	case "settlement":
		return "completed"
	case "deny", "cancel", "expire", "failure":
		return "failed"
	default:
		return "pending"
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

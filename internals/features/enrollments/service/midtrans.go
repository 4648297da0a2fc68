package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"gradus_backend/internals/features/enrollments/model"
)

var SnapClient snap.Client

// InitMidtrans must run at bootstrap before any checkout.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken creates a Snap transaction for one enrollment and
// returns the token plus the hosted payment page URL.
func GenerateSnapToken(e model.EnrollmentModel, name, email string) (string, string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  e.OrderID,
			GrossAmt: e.PriceTotal,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

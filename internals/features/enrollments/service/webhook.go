package service

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"gradus_backend/internals/features/enrollments/model"
)

// MapTransactionStatus translates a gateway transaction status into the
// enrollment payment status; empty means "leave unchanged".
func MapTransactionStatus(status string) string {
	switch status {
	case "capture", "settlement":
		return model.PaymentPaid
	case "deny", "cancel", "expire", "failure":
		return model.PaymentFailed
	case "refund", "partial_refund", "chargeback":
		return model.PaymentRefunded
	default:
		return ""
	}
}

// HandlePaymentWebhook applies one gateway notification to the matching
// enrollment row.
func HandlePaymentWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[ERROR] incomplete webhook payload:", body)
		return fmt.Errorf("invalid payload")
	}

	var enrollment model.EnrollmentModel
	if err := db.Where("order_id = ?", orderID).First(&enrollment).Error; err != nil {
		return fmt.Errorf("enrollment with order_id %s not found", orderID)
	}

	next := MapTransactionStatus(status)
	if next == "" {
		log.Println("[INFO] webhook status ignored:", status)
		return nil
	}

	enrollment.PaymentStatus = next
	if next == model.PaymentPaid && enrollment.PaidAt == nil {
		now := time.Now()
		enrollment.PaidAt = &now
	}
	if ref, ok := body["transaction_id"].(string); ok && ref != "" {
		enrollment.PaymentReference = ref
	}

	return db.Save(&enrollment).Error
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gradus_backend/internals/features/enrollments/model"
)

func TestMapTransactionStatus(t *testing.T) {
	assert.Equal(t, model.PaymentPaid, MapTransactionStatus("capture"))
	assert.Equal(t, model.PaymentPaid, MapTransactionStatus("settlement"))
	assert.Equal(t, model.PaymentFailed, MapTransactionStatus("expire"))
	assert.Equal(t, model.PaymentFailed, MapTransactionStatus("cancel"))
	assert.Equal(t, model.PaymentRefunded, MapTransactionStatus("refund"))
	assert.Equal(t, "", MapTransactionStatus("pending"))
	assert.Equal(t, "", MapTransactionStatus(""))
}

package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ems_backend/internals/constants"
	"ems_backend/internals/databases/testdb"
	model "ems_backend/internals/features/billing/model"
)

func TestMapTransactionStatus(t *testing.T) {
	cases := map[string]string{
		"settlement":   constants.SubscriptionActive,
		"capture":      constants.SubscriptionActive,
		"success":      constants.SubscriptionActive,
		"expire":       constants.SubscriptionExpired,
		"cancel":       constants.SubscriptionCanceled,
		"deny":         constants.SubscriptionCanceled,
		"failure":      constants.SubscriptionCanceled,
		"pending":      constants.SubscriptionPendingPayment,
		"authorize":    constants.SubscriptionPendingPayment,
		"made-up-gibberish": constants.SubscriptionPendingPayment,
	}
	for in, want := range cases {
		assert.Equal(t, want, MapTransactionStatus(in), "transaction_status %q", in)
	}
}

func TestApplyWebhookActivationStampsPeriodEnd(t *testing.T) {
	db := testdb.Open(t)
	svc := NewBillingService(db)

	sub := model.SubscriptionModel{
		SubscriptionCompanyID: uuid.New(),
		SubscriptionPlanID:    uuid.New(),
		SubscriptionOrderID:   "sub-" + uuid.NewString(),
		SubscriptionStatus:    constants.SubscriptionPendingPayment,
	}
	require.NoError(t, db.Create(&sub).Error)

	require.NoError(t, svc.ApplyWebhook(context.Background(), sub.SubscriptionOrderID, "settlement"))

	var got model.SubscriptionModel
	require.NoError(t, db.First(&got, "subscription_id = ?", sub.SubscriptionID).Error)
	assert.Equal(t, constants.SubscriptionActive, got.SubscriptionStatus)
	require.NotNil(t, got.SubscriptionCurrentPeriodEnd)

	// Expiry clears activity but keeps the period end already granted.
	require.NoError(t, svc.ApplyWebhook(context.Background(), sub.SubscriptionOrderID, "expire"))
	require.NoError(t, db.First(&got, "subscription_id = ?", sub.SubscriptionID).Error)
	assert.Equal(t, constants.SubscriptionExpired, got.SubscriptionStatus)
	assert.NotNil(t, got.SubscriptionCurrentPeriodEnd)
}

func TestApplyWebhookUnknownOrder(t *testing.T) {
	db := testdb.Open(t)
	svc := NewBillingService(db)

	err := svc.ApplyWebhook(context.Background(), "sub-does-not-exist", "settlement")
	assert.Error(t, err)
}

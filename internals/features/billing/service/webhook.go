package service

import (
	"context"
	"fmt"
	"time"

	"ems_backend/internals/constants"
	model "ems_backend/internals/features/billing/model"
)

// MapTransactionStatus translates a Midtrans transaction_status into our
// subscription status. Unknown statuses stay PENDING_PAYMENT.
func MapTransactionStatus(transactionStatus string) string {
	switch transactionStatus {
	case "settlement", "capture", "success":
		return constants.SubscriptionActive
	case "expire":
		return constants.SubscriptionExpired
	case "cancel", "deny", "failure":
		return constants.SubscriptionCanceled
	default:
		return constants.SubscriptionPendingPayment
	}
}

// ApplyWebhook resolves the subscription by order id and applies the status
// from the notification payload. Activation stamps a fresh 30-day period.
func (s *BillingService) ApplyWebhook(ctx context.Context, orderID, transactionStatus string) error {
	var sub model.SubscriptionModel
	if err := s.DB.WithContext(ctx).
		Where("subscription_order_id = ?", orderID).
		First(&sub).Error; err != nil {
		return fmt.Errorf("subscription not found for order %s: %w", orderID, err)
	}

	status := MapTransactionStatus(transactionStatus)

	updates := map[string]interface{}{
		"subscription_status": status,
	}
	if status == constants.SubscriptionActive {
		periodEnd := time.Now().AddDate(0, 0, 30)
		updates["subscription_current_period_end"] = periodEnd
	}

	if err := s.DB.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("subscription_id = ?", sub.SubscriptionID).
		Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update subscription %s: %w", sub.SubscriptionID, err)
	}
	return nil
}

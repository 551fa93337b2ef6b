package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ems_backend/internals/constants"
)

// ServiceError is the structured 400-class error vocabulary this service
// exposes (the rest of the codebase throws plain fiber errors; moderation is
// wired into external review tooling that keys on the code).
type ServiceError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *ServiceError) Error() string { return e.Message }

func errInvalidType(kind string) *ServiceError {
	return &ServiceError{
		Code:    "INVALID_TYPE",
		Message: fmt.Sprintf("unknown content type %q", kind),
		Status:  fiber.StatusBadRequest,
	}
}

func errEmptyReason() *ServiceError {
	return &ServiceError{
		Code:    "VALIDATION_ERROR",
		Message: "rejection reason is required",
		Status:  fiber.StatusBadRequest,
	}
}

// PendingItem is one row of the moderation queue, tagged with its type and
// enriched with the parent course name where one exists.
type PendingItem struct {
	EntityType string     `json:"entity_type" gorm:"-"`
	ID         uuid.UUID  `json:"id"`
	CompanyID  uuid.UUID  `json:"company_id"`
	Title      *string    `json:"title,omitempty"`
	CourseName *string    `json:"course_name,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type ApprovalService struct {
	DB *gorm.DB
}

func NewApprovalService(db *gorm.DB) *ApprovalService {
	return &ApprovalService{DB: db}
}

// ApproveItem transitions the row to APPROVED, stamps the reviewer, clears
// any prior rejection, and forces the row visible again. Re-review is
// allowed: a previously rejected row simply flips back.
func (s *ApprovalService) ApproveItem(ctx context.Context, kind string, id, companyID, approvedBy uuid.UUID) error {
	k, ok := contentKinds[kind]
	if !ok {
		return errInvalidType(kind)
	}

	now := time.Now().UTC()
	res := s.DB.WithContext(ctx).
		Table(k.Table).
		Where(k.Prefix+"_id = ? AND "+k.Prefix+"_company_id = ? AND "+k.Prefix+"_deleted_at IS NULL", id, companyID).
		Updates(map[string]any{
			k.Prefix + "_approval_status":  constants.ApprovalApproved,
			k.Prefix + "_approved_at":      now,
			k.Prefix + "_approved_by":      approvedBy,
			k.Prefix + "_rejection_reason": nil,
			k.Prefix + "_is_active":        true,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RejectItem transitions the row to REJECTED with a mandatory reason. The
// reason check runs before any update is issued.
func (s *ApprovalService) RejectItem(ctx context.Context, kind string, id, companyID, rejectedBy uuid.UUID, reason string) error {
	k, ok := contentKinds[kind]
	if !ok {
		return errInvalidType(kind)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errEmptyReason()
	}

	res := s.DB.WithContext(ctx).
		Table(k.Table).
		Where(k.Prefix+"_id = ? AND "+k.Prefix+"_company_id = ? AND "+k.Prefix+"_deleted_at IS NULL", id, companyID).
		Updates(map[string]any{
			k.Prefix + "_approval_status":  constants.ApprovalRejected,
			k.Prefix + "_rejection_reason": reason,
			k.Prefix + "_approved_at":      nil,
			k.Prefix + "_approved_by":      nil,
			k.Prefix + "_is_active":        false,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetPendingItems fans out one read per content type, newest-first within
// each type. A failing branch degrades to an empty list (logged) instead of
// failing the whole aggregate; branches are independent and share nothing,
// so bare goroutines + WaitGroup are enough.
func (s *ApprovalService) GetPendingItems(ctx context.Context, companyID uuid.UUID) ([]PendingItem, error) {
	perKind := make([][]PendingItem, len(kindOrder))

	var wg sync.WaitGroup
	for i, kind := range kindOrder {
		wg.Add(1)
		go func(i int, kind string) {
			defer wg.Done()
			items, err := s.pendingForKind(ctx, kind, companyID)
			if err != nil {
				log.Printf("[WARN] pending fan-out: %s query failed, degrading to empty: %v", kind, err)
				return
			}
			perKind[i] = items
		}(i, kind)
	}
	wg.Wait()

	out := make([]PendingItem, 0)
	for _, items := range perKind {
		out = append(out, items...)
	}
	return out, nil
}

func (s *ApprovalService) pendingForKind(ctx context.Context, kind string, companyID uuid.UUID) ([]PendingItem, error) {
	k := contentKinds[kind]

	sel := fmt.Sprintf(
		"t.%s_id AS id, t.%s_company_id AS company_id, t.%s AS title, t.%s_created_at AS created_at",
		k.Prefix, k.Prefix, k.TitleCol, k.Prefix,
	)

	q := s.DB.WithContext(ctx).
		Table(k.Table+" AS t").
		Where("t."+k.Prefix+"_company_id = ?", companyID).
		Where("t." + k.Prefix + "_approval_status = 'PENDING'").
		Where("t." + k.Prefix + "_deleted_at IS NULL").
		Order("t." + k.Prefix + "_created_at DESC")

	if k.CourseCol != "" {
		sel += ", c.course_title AS course_name"
		q = q.Joins(fmt.Sprintf("LEFT JOIN courses c ON c.course_id = t.%s AND c.course_deleted_at IS NULL", k.CourseCol))
	}

	var rows []PendingItem
	if err := q.Select(sel).Scan(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].EntityType = kind
	}
	return rows, nil
}

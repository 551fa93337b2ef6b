package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "ems_backend/internals/features/attendance/dto"
	model "ems_backend/internals/features/attendance/model"
)

type AttendanceService struct {
	DB *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{DB: db}
}

func (s *AttendanceService) CreateBatch(ctx context.Context, companyID uuid.UUID, req dto.CreateBatchRequest) (*model.BatchModel, error) {
	batch := model.BatchModel{
		BatchCompanyID: companyID,
		BatchCourseID:  req.CourseID,
		BatchName:      req.Name,
		BatchStartDate: req.StartDate,
		BatchEndDate:   req.EndDate,
	}
	if err := s.DB.WithContext(ctx).Create(&batch).Error; err != nil {
		return nil, err
	}
	return &batch, nil
}

// CreateSession opens a SCHEDULED session under a batch. The course id is
// denormalized off the batch so approval listings can join in one hop.
func (s *AttendanceService) CreateSession(ctx context.Context, companyID uuid.UUID, req dto.CreateSessionRequest) (*model.AttendanceSessionModel, error) {
	var batch model.BatchModel
	err := s.DB.WithContext(ctx).
		Where("batch_id = ? AND batch_company_id = ?", req.BatchID, companyID).
		First(&batch).Error
	if err != nil {
		return nil, err
	}

	session := model.AttendanceSessionModel{
		AttendanceSessionCompanyID: companyID,
		AttendanceSessionBatchID:   batch.BatchID,
		AttendanceSessionCourseID:  batch.BatchCourseID,
		AttendanceSessionTitle:     req.Title,
		AttendanceSessionDate:      req.Date,
	}
	if err := s.DB.WithContext(ctx).Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *AttendanceService) CreateLiveClass(ctx context.Context, companyID uuid.UUID, req dto.CreateLiveClassRequest) (*model.LiveClassModel, error) {
	lc := model.LiveClassModel{
		LiveClassCompanyID:   companyID,
		LiveClassCourseID:    req.CourseID,
		LiveClassBatchID:     req.BatchID,
		LiveClassTitle:       req.Title,
		LiveClassScheduledAt: req.ScheduledAt,
		LiveClassMeetingURL:  req.MeetingURL,
	}
	if err := s.DB.WithContext(ctx).Create(&lc).Error; err != nil {
		return nil, err
	}
	return &lc, nil
}

// AdvanceSession moves the session exactly one step along the status chain
// and returns the updated row.
func (s *AttendanceService) AdvanceSession(ctx context.Context, companyID, sessionID uuid.UUID) (*model.AttendanceSessionModel, error) {
	var session model.AttendanceSessionModel
	err := s.DB.WithContext(ctx).
		Where("attendance_session_id = ? AND attendance_session_company_id = ?", sessionID, companyID).
		First(&session).Error
	if err != nil {
		return nil, err
	}

	next, err := NextSessionStatus(session.AttendanceSessionStatus)
	if err != nil {
		return nil, err
	}

	// Guard on the status we read so two racing advances cannot double-step.
	res := s.DB.WithContext(ctx).
		Model(&model.AttendanceSessionModel{}).
		Where("attendance_session_id = ? AND attendance_session_status = ?", sessionID, session.AttendanceSessionStatus).
		Update("attendance_session_status", next)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, errors.New("session status changed concurrently, retry")
	}

	session.AttendanceSessionStatus = next
	return &session, nil
}

// ListSessions returns the company's sessions, optionally narrowed to one batch.
func (s *AttendanceService) ListSessions(ctx context.Context, companyID uuid.UUID, batchID *uuid.UUID) ([]model.AttendanceSessionModel, error) {
	sessions := []model.AttendanceSessionModel{}
	q := s.DB.WithContext(ctx).
		Where("attendance_session_company_id = ?", companyID)
	if batchID != nil {
		q = q.Where("attendance_session_batch_id = ?", *batchID)
	}
	err := q.Order("attendance_session_date DESC, attendance_session_created_at DESC").
		Find(&sessions).Error
	return sessions, err
}

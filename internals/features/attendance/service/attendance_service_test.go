package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ems_backend/internals/constants"
	"ems_backend/internals/databases/testdb"
	dto "ems_backend/internals/features/attendance/dto"
	model "ems_backend/internals/features/attendance/model"
)

func TestNextSessionStatusWalksTheChain(t *testing.T) {
	cases := []struct {
		current string
		next    string
	}{
		{constants.SessionScheduled, constants.SessionIdentifyingEntry},
		{constants.SessionIdentifyingEntry, constants.SessionInProgress},
		{constants.SessionInProgress, constants.SessionIdentifyingExit},
		{constants.SessionIdentifyingExit, constants.SessionCompleted},
	}
	for _, tc := range cases {
		next, err := NextSessionStatus(tc.current)
		require.NoError(t, err)
		assert.Equal(t, tc.next, next)
	}

	_, err := NextSessionStatus(constants.SessionCompleted)
	assert.ErrorIs(t, err, ErrSessionCompleted)

	_, err = NextSessionStatus("PAUSED")
	assert.Error(t, err)
}

func TestCreateSessionDenormalizesCourseFromBatch(t *testing.T) {
	db := testdb.Open(t)
	svc := NewAttendanceService(db)
	companyID := uuid.New()
	courseID := uuid.New()

	batch, err := svc.CreateBatch(context.Background(), companyID, dto.CreateBatchRequest{
		CourseID: courseID,
		Name:     "Cohort 2026-A",
	})
	require.NoError(t, err)

	session, err := svc.CreateSession(context.Background(), companyID, dto.CreateSessionRequest{
		BatchID: batch.BatchID,
		Date:    time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, courseID, session.AttendanceSessionCourseID)

	// A batch id from another tenant is invisible.
	_, err = svc.CreateSession(context.Background(), uuid.New(), dto.CreateSessionRequest{
		BatchID: batch.BatchID,
		Date:    time.Now(),
	})
	assert.Error(t, err)
}

func TestAdvanceSessionOneStepPerCall(t *testing.T) {
	db := testdb.Open(t)
	svc := NewAttendanceService(db)
	companyID := uuid.New()

	batch, err := svc.CreateBatch(context.Background(), companyID, dto.CreateBatchRequest{
		CourseID: uuid.New(),
		Name:     "Cohort",
	})
	require.NoError(t, err)
	session, err := svc.CreateSession(context.Background(), companyID, dto.CreateSessionRequest{
		BatchID: batch.BatchID,
		Date:    time.Now(),
	})
	require.NoError(t, err)

	want := []string{
		constants.SessionIdentifyingEntry,
		constants.SessionInProgress,
		constants.SessionIdentifyingExit,
		constants.SessionCompleted,
	}
	for _, status := range want {
		got, err := svc.AdvanceSession(context.Background(), companyID, session.AttendanceSessionID)
		require.NoError(t, err)
		assert.Equal(t, status, got.AttendanceSessionStatus)

		var row model.AttendanceSessionModel
		require.NoError(t, db.First(&row, "attendance_session_id = ?", session.AttendanceSessionID).Error)
		assert.Equal(t, status, row.AttendanceSessionStatus)
	}

	_, err = svc.AdvanceSession(context.Background(), companyID, session.AttendanceSessionID)
	assert.ErrorIs(t, err, ErrSessionCompleted)
}

func TestListSessionsFiltersByBatch(t *testing.T) {
	db := testdb.Open(t)
	svc := NewAttendanceService(db)
	companyID := uuid.New()

	first, err := svc.CreateBatch(context.Background(), companyID, dto.CreateBatchRequest{CourseID: uuid.New(), Name: "First"})
	require.NoError(t, err)
	second, err := svc.CreateBatch(context.Background(), companyID, dto.CreateBatchRequest{CourseID: uuid.New(), Name: "Second"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = svc.CreateSession(context.Background(), companyID, dto.CreateSessionRequest{
			BatchID: first.BatchID,
			Date:    time.Now().AddDate(0, 0, -i),
		})
		require.NoError(t, err)
	}
	_, err = svc.CreateSession(context.Background(), companyID, dto.CreateSessionRequest{
		BatchID: second.BatchID,
		Date:    time.Now(),
	})
	require.NoError(t, err)

	all, err := svc.ListSessions(context.Background(), companyID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	scoped, err := svc.ListSessions(context.Background(), companyID, &first.BatchID)
	require.NoError(t, err)
	require.Len(t, scoped, 2)
	// Newest session date first.
	assert.True(t, !scoped[0].AttendanceSessionDate.Before(scoped[1].AttendanceSessionDate))
}

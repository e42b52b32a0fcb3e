package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzafar/campusdesk/internal/pkg/apperrors"
)

func TestAttendanceService_RecordSession(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.seedCourse(t, "crs-1", "CS101", 3)
	env.seedOffering(t, "off-1", "crs-1")

	require.NoError(t, env.attendance.RecordSession(ctx, "off-1", "2026-03-02", map[string]bool{
		"std-1": true, "std-2": false,
	}))
	require.NoError(t, env.attendance.RecordSession(ctx, "off-1", "2026-03-09", map[string]bool{
		"std-1": true, "std-2": true,
	}))

	record, err := env.attendance.GetRecord(ctx, "off-1")
	require.NoError(t, err)
	assert.Equal(t, "off-1", record.OfferingID)
	require.Len(t, record.Attendances, 2)

	present, total := record.PresenceRate("std-2")
	assert.Equal(t, 1, present)
	assert.Equal(t, 2, total)

	// One session per date
	err = env.attendance.RecordSession(ctx, "off-1", "2026-03-02", map[string]bool{"std-1": false})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateSessionDate)

	err = env.attendance.RecordSession(ctx, "off-1", "02/03/2026", map[string]bool{})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = env.attendance.RecordSession(ctx, "off-missing", "2026-03-02", nil)
	assert.ErrorIs(t, err, apperrors.ErrOfferingNotFound)
}

func TestAttendanceService_Summary(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.seedCourse(t, "crs-1", "CS101", 3)
	env.seedOffering(t, "off-1", "crs-1")

	require.NoError(t, env.attendance.RecordSession(ctx, "off-1", "2026-03-02", map[string]bool{
		"std-1": true, "std-2": false,
	}))
	require.NoError(t, env.attendance.RecordSession(ctx, "off-1", "2026-03-09", map[string]bool{
		"std-1": true, "std-2": true,
	}))
	// std-3 joined late and only appears in the last session
	require.NoError(t, env.attendance.RecordSession(ctx, "off-1", "2026-03-16", map[string]bool{
		"std-1": false, "std-2": true, "std-3": true,
	}))

	summaries, err := env.attendance.Summary(ctx, "off-1")
	require.NoError(t, err)
	assert.Equal(t, []AttendanceSummary{
		{StudentID: "std-1", Present: 2, Total: 3},
		{StudentID: "std-2", Present: 2, Total: 3},
		{StudentID: "std-3", Present: 1, Total: 1},
	}, summaries)

	// No sessions recorded yet
	env.seedCourse(t, "crs-2", "CS102", 3)
	env.seedOffering(t, "off-2", "crs-2")
	summaries, err = env.attendance.Summary(ctx, "off-2")
	require.NoError(t, err)
	assert.Empty(t, summaries)

	_, err = env.attendance.Summary(ctx, "off-missing")
	assert.ErrorIs(t, err, apperrors.ErrOfferingNotFound)
}

func TestAttendanceService_EditSession(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	env.seedCourse(t, "crs-1", "CS101", 3)
	env.seedOffering(t, "off-1", "crs-1")

	require.NoError(t, env.attendance.RecordSession(ctx, "off-1", "2026-03-02", map[string]bool{
		"std-1": false,
	}))

	require.NoError(t, env.attendance.EditSession(ctx, "off-1", "2026-03-02", map[string]bool{
		"std-1": true,
	}))

	record, err := env.attendance.GetRecord(ctx, "off-1")
	require.NoError(t, err)
	entry, ok := record.Entry("2026-03-02")
	require.True(t, ok)
	assert.True(t, entry.Records["std-1"])

	err = env.attendance.EditSession(ctx, "off-1", "2026-03-16", map[string]bool{})
	assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
}

package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"educrm_backend/internal/model"
)

func roster() []model.Student {
	return []model.Student{
		{ID: "s1", StudentName: "Aziz", LastName: "Karimov"},
		{ID: "s2", StudentName: "Malika", LastName: "Yusupova"},
		{ID: "s3", StudentName: "Jasur", LastName: "Toshev"},
		{ID: "s4", StudentName: "Nodira", LastName: "Alimova"},
	}
}

func TestMarkOneShot(t *testing.T) {
	s := NewSession("g1", "2026-08-31", roster())

	require.NoError(t, s.Mark("s1", model.AttendanceStatusPresent, 0))

	// повторный выбор без Reset отклоняется
	err := s.Mark("s1", model.AttendanceStatusAbsent, 0)
	assert.ErrorIs(t, err, ErrStatusLocked)

	// после Reset можно выбрать другой статус
	require.NoError(t, s.Reset("s1"))
	require.NoError(t, s.Mark("s1", model.AttendanceStatusLate, 10))

	entries := s.Entries()
	assert.Equal(t, model.AttendanceStatusLate, entries[0].Status)
	require.NotNil(t, entries[0].Delay)
	assert.Equal(t, "10 daqiqa", *entries[0].Delay)
}

func TestMarkValidation(t *testing.T) {
	s := NewSession("g1", "2026-08-31", roster())

	assert.ErrorIs(t, s.Mark("missing", model.AttendanceStatusPresent, 0), ErrUnknownStudent)
	assert.ErrorIs(t, s.Mark("s1", model.AttendanceStatusPending, 0), ErrInvalidStatus)
	assert.ErrorIs(t, s.Mark("s1", "vacation", 0), ErrInvalidStatus)
	assert.ErrorIs(t, s.Reset("missing"), ErrUnknownStudent)
}

func TestSummaryCounts(t *testing.T) {
	s := NewSession("g1", "2026-08-31", roster())

	require.NoError(t, s.Mark("s1", model.AttendanceStatusPresent, 0))
	require.NoError(t, s.Mark("s2", model.AttendanceStatusLate, 5))
	require.NoError(t, s.Mark("s3", model.AttendanceStatusAbsent, 0))
	// s4 остаётся pending

	sum := s.Summary()
	assert.Equal(t, 4, sum.Total)
	assert.Equal(t, 1, sum.Present)
	assert.Equal(t, 1, sum.Late)
	assert.Equal(t, 1, sum.Absent)
	assert.Equal(t, 1, sum.Pending)

	// present + late + absent <= N и с pending в сумме ровно N
	assert.LessOrEqual(t, sum.Present+sum.Late+sum.Absent, sum.Total)
	assert.Equal(t, sum.Total, sum.Present+sum.Late+sum.Absent+sum.Pending)
}

func TestRecordSnapshot(t *testing.T) {
	s := NewSession("g1", "2026-08-31", roster())
	group := &model.Group{ID: "g1", GroupName: "Ingliz tili B2", LessonTime: "14:00"}
	now := time.Date(2026, 8, 31, 14, 5, 0, 0, time.UTC) // понедельник

	_, err := s.Record(group, now)
	assert.ErrorIs(t, err, ErrNothingMarked)

	require.NoError(t, s.Mark("s1", model.AttendanceStatusPresent, 0))
	require.NoError(t, s.Mark("s2", model.AttendanceStatusLate, 15))

	rec, err := s.Record(group, now)
	require.NoError(t, err)

	assert.Equal(t, "g1", rec.GroupID)
	assert.Equal(t, "Ingliz tili B2", rec.GroupName)
	assert.Equal(t, "Monday", rec.Day)
	assert.Equal(t, "2026-08-31", rec.Date)
	assert.Equal(t, 4, rec.TotalStudents)
	assert.Equal(t, 1, rec.PresentCount)
	assert.Equal(t, 1, rec.LateCount)
	assert.Equal(t, 0, rec.AbsentCount)
	// pending студенты сохраняются в снапшоте
	require.Len(t, rec.Attendance, 4)
	assert.Equal(t, model.AttendanceStatusPending, rec.Attendance[3].Status)
}

func TestRestoreIsReadOnly(t *testing.T) {
	s := NewSession("g1", "2026-08-31", roster())
	require.NoError(t, s.Mark("s1", model.AttendanceStatusPresent, 0))

	group := &model.Group{ID: "g1", GroupName: "Ingliz tili B2", LessonTime: "14:00"}
	rec, err := s.Record(group, time.Date(2026, 8, 31, 14, 5, 0, 0, time.UTC))
	require.NoError(t, err)

	restored := Restore(rec)
	assert.True(t, restored.ReadOnly())

	// любые дальнейшие правки отклоняются той же ошибкой
	assert.ErrorIs(t, restored.Mark("s2", model.AttendanceStatusPresent, 0), ErrAlreadyMarked)
	assert.ErrorIs(t, restored.Reset("s1"), ErrAlreadyMarked)
	_, err = restored.Record(group, time.Now())
	assert.ErrorIs(t, err, ErrAlreadyMarked)

	// запись при этом не изменилась
	assert.Equal(t, model.AttendanceStatusPresent, restored.Entries()[0].Status)
}

func TestDerivedAbsent(t *testing.T) {
	// терпимо к записям без явного absent: неучтённые считаются absent
	rec := &model.AttendanceRecord{TotalStudents: 10, PresentCount: 6, LateCount: 2}
	assert.Equal(t, 2, DerivedAbsent(rec))

	// и не уходит в минус на кривых данных
	rec = &model.AttendanceRecord{TotalStudents: 3, PresentCount: 3, LateCount: 1}
	assert.Equal(t, 0, DerivedAbsent(rec))
}

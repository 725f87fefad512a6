package attendance

import (
	"errors"
	"time"

	"educrm_backend/internal/format"
	"educrm_backend/internal/model"
	"educrm_backend/internal/schedule"
)

var (
	// ErrAlreadyMarked посещаемость за (группа, дата) уже сохранена; запись неизменяемая.
	ErrAlreadyMarked = errors.New("attendance already marked for this day")
	// ErrStatusLocked статус студента уже выбран; сначала нужен явный Reset.
	ErrStatusLocked = errors.New("status already chosen, reset it first")
	// ErrNothingMarked перед сохранением должен быть отмечен хотя бы один студент.
	ErrNothingMarked = errors.New("no student has been marked")
	// ErrUnknownStudent студента нет в ростере сессии.
	ErrUnknownStudent = errors.New("student is not in the session roster")
	// ErrInvalidStatus допустимы только терминальные статусы present/absent/late.
	ErrInvalidStatus = errors.New("invalid attendance status")
)

// Session сессия отметки посещаемости: ростер одной группы на один
// календарный день с рабочими статусами студентов. Переход из pending
// одноразовый, смена решения только через явный Reset.
type Session struct {
	groupID  string
	date     string
	entries  []model.AttendanceEntry
	index    map[string]int
	readOnly bool // запись за день уже существует, правки отклоняются
}

// NewSession открывает свежую сессию: все студенты в pending.
func NewSession(groupID, date string, roster []model.Student) *Session {
	s := &Session{
		groupID: groupID,
		date:    date,
		entries: make([]model.AttendanceEntry, 0, len(roster)),
		index:   make(map[string]int, len(roster)),
	}
	for _, st := range roster {
		s.index[st.ID] = len(s.entries)
		s.entries = append(s.entries, model.AttendanceEntry{
			ID:          st.ID,
			StudentName: st.StudentName,
			LastName:    st.LastName,
			Status:      model.AttendanceStatusPending,
		})
	}
	return s
}

// Restore восстанавливает сессию из сохранённой записи. Такая сессия
// только для чтения: источником истины становится сама запись.
func Restore(rec *model.AttendanceRecord) *Session {
	s := &Session{
		groupID:  rec.GroupID,
		date:     rec.Date,
		entries:  make([]model.AttendanceEntry, len(rec.Attendance)),
		index:    make(map[string]int, len(rec.Attendance)),
		readOnly: true,
	}
	copy(s.entries, rec.Attendance)
	for i, e := range s.entries {
		s.index[e.ID] = i
	}
	return s
}

func (s *Session) GroupID() string { return s.groupID }
func (s *Session) Date() string    { return s.date }

// ReadOnly сообщает, заблокирована ли сессия ("уже отмечено").
func (s *Session) ReadOnly() bool { return s.readOnly }

// Mark переводит студента из pending в терминальный статус.
// Для late delayMinutes задаёт время опоздания.
func (s *Session) Mark(studentID string, status model.AttendanceStatus, delayMinutes int) error {
	if s.readOnly {
		return ErrAlreadyMarked
	}

	switch status {
	case model.AttendanceStatusPresent, model.AttendanceStatusAbsent, model.AttendanceStatusLate:
	default:
		return ErrInvalidStatus
	}

	i, ok := s.index[studentID]
	if !ok {
		return ErrUnknownStudent
	}

	if s.entries[i].Status != model.AttendanceStatusPending {
		return ErrStatusLocked
	}

	s.entries[i].Status = status
	s.entries[i].Delay = nil
	if status == model.AttendanceStatusLate {
		delay := format.Delay(delayMinutes)
		s.entries[i].Delay = &delay
	}
	return nil
}

// Reset возвращает студента в pending. Доступен всегда, пока сессия не сохранена.
func (s *Session) Reset(studentID string) error {
	if s.readOnly {
		return ErrAlreadyMarked
	}

	i, ok := s.index[studentID]
	if !ok {
		return ErrUnknownStudent
	}

	s.entries[i].Status = model.AttendanceStatusPending
	s.entries[i].Delay = nil
	return nil
}

// Entries возвращает копию текущего снапшота ростера.
func (s *Session) Entries() []model.AttendanceEntry {
	out := make([]model.AttendanceEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Summary агрегаты по текущему состоянию сессии.
type Summary struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Late    int `json:"late"`
	Absent  int `json:"absent"`
	Pending int `json:"pending"`
}

func (s *Session) Summary() Summary {
	sum := Summary{Total: len(s.entries)}
	for _, e := range s.entries {
		switch e.Status {
		case model.AttendanceStatusPresent:
			sum.Present++
		case model.AttendanceStatusLate:
			sum.Late++
		case model.AttendanceStatusAbsent:
			sum.Absent++
		default:
			sum.Pending++
		}
	}
	return sum
}

// AnyMarked хотя бы один студент выведен из pending.
func (s *Session) AnyMarked() bool {
	for _, e := range s.entries {
		if e.Status != model.AttendanceStatusPending {
			return true
		}
	}
	return false
}

// Record собирает итоговую запись посещаемости. Студенты, оставшиеся
// в pending, попадают в снапшот, но не учитываются ни в одном счётчике.
func (s *Session) Record(group *model.Group, now time.Time) (*model.AttendanceRecord, error) {
	if s.readOnly {
		return nil, ErrAlreadyMarked
	}
	if !s.AnyMarked() {
		return nil, ErrNothingMarked
	}

	sum := s.Summary()
	return &model.AttendanceRecord{
		GroupID:       s.groupID,
		GroupName:     group.GroupName,
		LessonTime:    group.LessonTime,
		Day:           schedule.Today(now),
		Date:          s.date,
		TotalStudents: sum.Total,
		PresentCount:  sum.Present,
		AbsentCount:   sum.Absent,
		LateCount:     sum.Late,
		Attendance:    s.Entries(),
	}, nil
}

// DerivedAbsent историческое число отсутствовавших для отображения:
// всё, что не present и не late, считается absent, но не меньше нуля.
// Живое число absent в самой записи ведётся явно.
func DerivedAbsent(rec *model.AttendanceRecord) int {
	abs := rec.TotalStudents - rec.PresentCount - rec.LateCount
	if abs < 0 {
		return 0
	}
	return abs
}

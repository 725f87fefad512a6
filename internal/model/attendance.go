package model

import "time"

type AttendanceStatus string

const (
	AttendanceStatusPending AttendanceStatus = "pending" // Решение ещё не принято
	AttendanceStatusPresent AttendanceStatus = "present" // Пришёл
	AttendanceStatusAbsent  AttendanceStatus = "absent"  // Не пришёл
	AttendanceStatusLate    AttendanceStatus = "late"    // Опоздал, с указанием минут
)

// AttendanceEntry одна строка снапшота: статус студента на конкретный день.
// Delay хранится в исходном отображаемом виде ("15 daqiqa"), как писал старый клиент.
type AttendanceEntry struct {
	ID          string           `json:"id"` // id студента на момент отметки
	StudentName string           `json:"studentName"`
	LastName    string           `json:"lastName"`
	Status      AttendanceStatus `json:"status"`
	Delay       *string          `json:"delay,omitempty"`
}

// AttendanceRecord итоговая запись посещаемости группы за день.
// Естественный ключ (groupId, date), после создания запись не меняется.
type AttendanceRecord struct {
	ID            string            `json:"id"`
	GroupID       string            `json:"groupId"`
	GroupName     string            `json:"groupName"`
	LessonTime    string            `json:"lessonTime"`
	Day           string            `json:"day"`  // день недели на момент отметки, включая Sunday
	Date          string            `json:"date"` // YYYY-MM-DD
	TotalStudents int               `json:"totalStudents"`
	PresentCount  int               `json:"presentCount"`
	AbsentCount   int               `json:"absentCount"`
	LateCount     int               `json:"lateCount"`
	Attendance    []AttendanceEntry `json:"attendance"`
	CreatedAt     time.Time         `json:"created_at"`
}

package model

import "time"

type Group struct {
	ID         string    `json:"id"`
	GroupName  string    `json:"groupName"`
	LessonTime string    `json:"lessonTime"`
	Days       []string  `json:"days"` // канонический вид: отсортированные дни или ["Everyday"]
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

package model

import "time"

type Student struct {
	ID          string    `json:"id"`
	GroupID     string    `json:"groupId"`
	StudentName string    `json:"studentName"`
	LastName    string    `json:"lastName"`
	PhoneNumber string    `json:"phoneNumber"`
	Days        []string  `json:"days"` // хранится отдельно, но при переводе в другую группу перезаписывается днями группы
	CreatedAt   time.Time `json:"created_at"`

	// Заполняется join'ом, в таблице students не хранится
	GroupName string `json:"groupName,omitempty"`
}

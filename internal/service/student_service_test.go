package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsGroupMove(t *testing.T) {
	// группа в форме не указана — не перевод
	assert.False(t, isGroupMove("g1", ""))

	// та же группа — обычная правка, дни берутся из формы
	assert.False(t, isGroupMove("g1", "g1"))

	assert.True(t, isGroupMove("g1", "g2"))
}

func TestDaysOnUpdate(t *testing.T) {
	targetDays := []string{"Monday", "Wednesday"}
	selected := []string{"Friday", "Friday", "Bogus"}

	// перевод: канонические дни целевой группы важнее выбора в форме
	assert.Equal(t, targetDays, daysOnUpdate(true, targetDays, selected))

	// без перевода: выбор из формы нормализуется (дубли и мусор уходят)
	assert.Equal(t, []string{"Friday"}, daysOnUpdate(false, nil, selected))

	// пустой выбор без перевода сворачивается в Everyday, как у старого клиента
	assert.Equal(t, []string{"Everyday"}, daysOnUpdate(false, nil, nil))
}

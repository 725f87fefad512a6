package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	assert.Equal(t, "200 000 so'm", Amount(200000))
	assert.Equal(t, "300 000 so'm", Amount(300000))
	assert.Equal(t, "1 250 000 so'm", Amount(1250000))
	assert.Equal(t, "950 so'm", Amount(950))
	assert.Equal(t, "0 so'm", Amount(0))
}

func TestShortAmount(t *testing.T) {
	assert.Equal(t, "1.3m", ShortAmount(1250000))
	assert.Equal(t, "200k", ShortAmount(200000))
	assert.Equal(t, "950", ShortAmount(950))
}

func TestDelay(t *testing.T) {
	assert.Equal(t, "15 daqiqa", Delay(15))
}

func TestWeekdayUz(t *testing.T) {
	assert.Equal(t, "Dushanba", WeekdayUz("Monday"))
	assert.Equal(t, "Shanba", WeekdayUz("Saturday"))
	assert.Equal(t, "Everyday", WeekdayUz("Everyday"))
}

package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupDaysAliases(t *testing.T) {
	// days важнее weekdays
	req := groupRequest{
		Days:     []string{"Monday"},
		Weekdays: []string{"Tuesday"},
	}
	assert.Equal(t, []string{"Monday"}, req.normalizedDays())

	req = groupRequest{Weekdays: []string{"Tuesday", "Thursday"}}
	assert.Equal(t, []string{"Tuesday", "Thursday"}, req.normalizedDays())

	req = groupRequest{}
	assert.Empty(t, req.normalizedDays())
}

package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildListQueryFilters(t *testing.T) {
	// без фильтров — WHERE отсутствует, пустые строки в параметры не попадают
	query, args := buildListQuery("", "")
	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)

	// только группа
	query, args = buildListQuery("g1", "")
	assert.Contains(t, query, "group_id = $1")
	assert.NotContains(t, query, "att_date =")
	assert.Equal(t, []interface{}{"g1"}, args)

	// только дата
	query, args = buildListQuery("", "2026-08-31")
	assert.Contains(t, query, "att_date = $1::date")
	assert.NotContains(t, query, "group_id =")
	assert.Equal(t, []interface{}{"2026-08-31"}, args)

	// оба фильтра
	query, args = buildListQuery("g1", "2026-08-31")
	assert.Contains(t, query, "group_id = $1")
	assert.Contains(t, query, "att_date = $2::date")
	assert.Equal(t, []interface{}{"g1", "2026-08-31"}, args)
}

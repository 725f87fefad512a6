package card

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"educrm_backend/internal/model"
)

func TestGroupCardRendersPNG(t *testing.T) {
	r := NewRenderer("") // без TTF, basicfont fallback
	group := &model.Group{
		ID:         "g1",
		GroupName:  "Ingliz tili B2",
		LessonTime: "14:00",
		Days:       []string{"Monday", "Wednesday", "Friday"},
	}

	png, err := r.GroupCard(group, time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// сигнатура PNG
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestGroupCardEveryday(t *testing.T) {
	r := NewRenderer("")
	group := &model.Group{
		ID:         "g2",
		GroupName:  "Matematika",
		LessonTime: "09:00",
		Days:       []string{"Everyday"},
	}

	png, err := r.GroupCard(group, time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

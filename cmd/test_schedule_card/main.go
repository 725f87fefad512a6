package main

import (
	"fmt"
	"os"
	"time"

	"educrm_backend/internal/card"
	"educrm_backend/internal/model"
)

func main() {
	// Создаем тестовую группу
	group := &model.Group{
		ID:         "test-group",
		GroupName:  "Ingliz tili B2",
		LessonTime: "14:00",
		Days:       []string{"Monday", "Wednesday", "Friday"},
	}

	renderer := card.NewRenderer(os.Getenv("CARD_FONT_PATH"))

	imageData, err := renderer.GroupCard(group, time.Now())
	if err != nil {
		fmt.Printf("Ошибка генерации изображения: %v\n", err)
		os.Exit(1)
	}

	filename := "schedule_card.png"
	if err := os.WriteFile(filename, imageData, 0644); err != nil {
		fmt.Printf("Ошибка сохранения файла: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Изображение успешно сохранено в %s\n", filename)
	fmt.Printf("📅 Группа: %s, дни: %v\n", group.GroupName, group.Days)
}

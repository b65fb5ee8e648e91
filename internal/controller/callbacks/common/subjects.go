package common

import (
	"fmt"

	"github.com/go-telegram/bot/models"

	"github.com/Freeeeeet/meeting_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/meeting_bot/internal/model"
)

// SubjectsKeyboard строит клавиатуру выбора предметов.
// Выбранные предметы отмечаются галочкой, toggle по нажатию.
func SubjectsKeyboard(selected map[int]bool) *models.InlineKeyboardMarkup {
	kb := keyboard.NewBuilder()

	for i := 0; i < len(model.AllSubjects); i += 2 {
		row := []models.InlineKeyboardButton{subjectButton(i, selected[i])}
		if i+1 < len(model.AllSubjects) {
			row = append(row, subjectButton(i+1, selected[i+1]))
		}
		kb.AddRow(row)
	}

	kb.Row(keyboard.Button("✅ Done", "subj_done"))
	return kb.Build()
}

func subjectButton(index int, picked bool) models.InlineKeyboardButton {
	label := model.AllSubjects[index]
	if picked {
		label = "☑️ " + label
	}
	return keyboard.Button(label, fmt.Sprintf("subj_toggle:%d", index))
}

// SelectedSubjects переводит выбранные индексы в названия, порядок каталога
func SelectedSubjects(selected map[int]bool) []string {
	subjects := make([]string, 0, len(selected))
	for i, name := range model.AllSubjects {
		if selected[i] {
			subjects = append(subjects, name)
		}
	}
	return subjects
}

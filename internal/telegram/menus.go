package telegram

import (
	"glas-taro/internal/deck"
	"glas-taro/internal/i18n"
	"glas-taro/internal/reading"
)

func (b *Bot) mainMenu(userID int64, firstName string) reading.Response {
	if firstName == "" {
		firstName = "friend"
	}
	return reading.Response{
		Text: b.texts.Textf(userID, "welcome", firstName),
		Buttons: [][]reading.Button{
			{{Label: b.texts.Text(userID, "menu_reading"), Data: reading.CallbackStartReading}},
			{{Label: b.texts.Text(userID, "menu_daily"), Data: reading.CallbackDailyCard}},
			{{Label: b.texts.Text(userID, "menu_learn"), Data: reading.CallbackLearn}},
			{{Label: b.texts.Text(userID, "menu_language"), Data: reading.CallbackLanguage}},
		},
	}
}

func (b *Bot) learnMenu(userID int64) reading.Response {
	return reading.Response{
		Text: b.texts.Text(userID, "learn_center"),
		Buttons: [][]reading.Button{
			{{Label: b.texts.Text(userID, "learn_major"), Data: reading.CallbackLearnMajor}},
			{{Label: b.texts.Text(userID, "learn_minor"), Data: reading.CallbackLearnMinor}},
			{{Label: b.texts.Text(userID, "back_main"), Data: reading.CallbackMainMenu}},
		},
	}
}

// cardList renders the study catalog for one arcana, two cards per row.
func (b *Bot) cardList(userID int64, a deck.Arcana) reading.Response {
	cards := b.deck.Cards(a)
	rows := make([][]reading.Button, 0, len(cards)/2+2)
	var row []reading.Button
	for _, c := range cards {
		row = append(row, reading.Button{Label: c.Name, Data: reading.CallbackCardPrefix + c.ID})
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	rows = append(rows, []reading.Button{
		{Label: b.texts.Text(userID, "back_main"), Data: reading.CallbackMainMenu},
	})
	return reading.Response{
		Text:    b.texts.Text(userID, "learn_center"),
		Buttons: rows,
	}
}

func (b *Bot) languageMenu(userID int64) reading.Response {
	rows := make([][]reading.Button, 0, len(i18n.Supported()))
	for _, l := range i18n.Supported() {
		rows = append(rows, []reading.Button{
			{Label: i18n.Name(l), Data: reading.CallbackLangPrefix + string(l)},
		})
	}
	return reading.Response{
		Text:    b.texts.Text(userID, "language_select"),
		Buttons: rows,
	}
}

package handler

import (
	"SurveyBot/model"

	"github.com/go-telegram/bot/models"
)

// replyMarkup renders a prompt for a newly sent message.
func replyMarkup(p *model.Prompt) models.ReplyMarkup {
	switch p.Hint {
	case model.HintRequestContact:
		buttons := make([]models.KeyboardButton, 0, len(p.Options))
		for _, o := range p.Options {
			buttons = append(buttons, models.KeyboardButton{Text: o.Label, RequestContact: true})
		}
		return &models.ReplyKeyboardMarkup{
			Keyboard:        [][]models.KeyboardButton{buttons},
			ResizeKeyboard:  true,
			OneTimeKeyboard: true,
		}
	case model.HintKeyboard:
		var rows [][]models.KeyboardButton
		for _, row := range p.Rows() {
			buttons := make([]models.KeyboardButton, 0, len(row))
			for _, o := range row {
				buttons = append(buttons, models.KeyboardButton{Text: o.Label})
			}
			rows = append(rows, buttons)
		}
		return &models.ReplyKeyboardMarkup{
			Keyboard:        rows,
			ResizeKeyboard:  true,
			OneTimeKeyboard: true,
		}
	case model.HintMenu:
		return inlineMarkup(p)
	}
	return &models.ReplyKeyboardRemove{RemoveKeyboard: true}
}

// editMarkup renders a prompt that replaces the message holding the pressed button. Edited
// messages can only carry inline keyboards.
func editMarkup(p *model.Prompt) models.ReplyMarkup {
	if p.Hint != model.HintMenu {
		return nil
	}
	return inlineMarkup(p)
}

func inlineMarkup(p *model.Prompt) *models.InlineKeyboardMarkup {
	var rows [][]models.InlineKeyboardButton
	for _, row := range p.Rows() {
		buttons := make([]models.InlineKeyboardButton, 0, len(row))
		for _, o := range row {
			buttons = append(buttons, models.InlineKeyboardButton{Text: o.Label, CallbackData: o.Data})
		}
		rows = append(rows, buttons)
	}
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
)

type formNoteModel struct {
	title      textinput.Model
	content    textarea.Model
	focus      int
	submitting bool
	editing    bool
	id         string
}

func newFormNoteModel(existing *listEntry, title, content string) formNoteModel {
	titleInput := textinput.New()
	titleInput.Placeholder = "заголовок"
	titleInput.CharLimit = 256
	titleInput.Width = 40
	titleInput.Focus()

	contentInput := textarea.New()
	contentInput.Placeholder = "текст заметки"
	contentInput.SetWidth(60)
	contentInput.SetHeight(6)

	m := formNoteModel{title: titleInput, content: contentInput}
	if existing != nil {
		m.editing = true
		m.id = existing.id
		m.title.SetValue(title)
		m.content.SetValue(content)
	}
	return m
}

func (m formNoteModel) View() string {
	title := "НОВАЯ ЗАМЕТКА"
	if m.editing {
		title = "РЕДАКТИРОВАНИЕ"
	}

	out := titleStyle.Render(title) + "\n\n"
	out += "Заголовок │ [" + m.title.View() + "]\n\n"
	out += m.content.View() + "\n"

	if m.submitting {
		out += "\n[Сохранить...]\n"
	} else {
		out += "\n[Сохранить]\n"
	}

	out += "\n" + helpStyle.Render("esc назад  tab перекл. поле  ctrl+s сохранить")
	return out
}

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type formCredentialModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
	editing    bool
	id         string
}

func newFormCredentialModel(existing *listEntry, domain, username, secret string) formCredentialModel {
	domainInput := textinput.New()
	domainInput.Placeholder = "домен / сервис"
	domainInput.CharLimit = 256
	domainInput.Width = 40
	domainInput.Focus()

	usernameInput := textinput.New()
	usernameInput.Placeholder = "логин"
	usernameInput.CharLimit = 256
	usernameInput.Width = 40

	secretInput := textinput.New()
	secretInput.Placeholder = "пароль"
	secretInput.CharLimit = 1024
	secretInput.Width = 40
	secretInput.EchoMode = textinput.EchoPassword
	secretInput.EchoCharacter = '*'

	m := formCredentialModel{inputs: []textinput.Model{domainInput, usernameInput, secretInput}}
	if existing != nil {
		m.editing = true
		m.id = existing.id
		m.inputs[0].SetValue(domain)
		m.inputs[1].SetValue(username)
		m.inputs[2].SetValue(secret)
	}
	return m
}

func (m formCredentialModel) View() string {
	title := "НОВЫЙ ЛОГИН/ПАРОЛЬ"
	if m.editing {
		title = "РЕДАКТИРОВАНИЕ"
	}

	out := titleStyle.Render(title) + "\n\n"
	out += "Домен   │ [" + m.inputs[0].View() + "]\n"
	out += "Логин   │ [" + m.inputs[1].View() + "]\n"
	out += "Пароль  │ [" + m.inputs[2].View() + "]\n"

	if m.submitting {
		out += "\n[Сохранить...]\n"
	} else {
		out += "\n[Сохранить]\n"
	}

	out += "\n" + helpStyle.Render("esc назад  tab след. поле  enter сохранить")
	return out
}

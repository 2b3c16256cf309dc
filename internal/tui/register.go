package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newRegisterModel() registerModel {
	loginInput := textinput.New()
	loginInput.Placeholder = "логин"
	loginInput.CharLimit = 64
	loginInput.Width = 40
	loginInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "мастер-пароль"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	repeatInput := textinput.New()
	repeatInput.Placeholder = "повтор пароля"
	repeatInput.CharLimit = 256
	repeatInput.Width = 40
	repeatInput.EchoMode = textinput.EchoPassword
	repeatInput.EchoCharacter = '*'

	return registerModel{inputs: []textinput.Model{loginInput, passwordInput, repeatInput}}
}

func (m registerModel) View() string {
	out := titleStyle.Render("РЕГИСТРАЦИЯ") + "\n\n"
	out += "Логин   │ [" + m.inputs[0].View() + "]\n"
	out += "Пароль  │ [" + m.inputs[1].View() + "]\n"
	out += "Повтор  │ [" + m.inputs[2].View() + "]\n"

	if m.submitting {
		out += "\n[Зарегистрироваться...]\n"
	} else {
		out += "\n[Зарегистрироваться]\n"
	}

	out += "\n" + helpStyle.Render("esc назад  tab след. поле  enter подтвердить")
	return out
}

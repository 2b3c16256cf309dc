package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel() loginModel {
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

	return loginModel{inputs: []textinput.Model{loginInput, passwordInput}}
}

func (m loginModel) View() string {
	out := titleStyle.Render("ВХОД") + "\n\n"
	out += "Логин   │ [" + m.inputs[0].View() + "]\n"
	out += "Пароль  │ [" + m.inputs[1].View() + "]\n"

	if m.submitting {
		out += "\n[Войти...]\n"
	} else {
		out += "\n[Войти]\n"
	}

	out += "\n" + helpStyle.Render("esc назад  tab след. поле  enter подтвердить")
	return out
}

package tui

import (
	"fmt"

	"github.com/MKhiriev/go-secret-vault/internal/vault"
)

type detailModel struct {
	kind       entryKind
	credential vault.Credential
	note       vault.Note
	status     string
}

func (m detailModel) View() string {
	var out string

	switch m.kind {
	case entryCredential:
		out = titleStyle.Render(m.credential.Domain) + "  [Логин/Пароль]\n\n"
		out += fmt.Sprintf("Логин:    %s\n", m.credential.Username)
		out += "Пароль:   ••••••••\n"
		out += "\n"
		out += helpStyle.Render("e редакт.  d удалить  c копир. пароль  u копир. логин  esc назад")
	case entryNote:
		out = titleStyle.Render(m.note.Title) + "  [Заметка]\n\n"
		out += m.note.Content + "\n\n"
		out += helpStyle.Render("e редакт.  d удалить  c копир. текст  esc назад")
	}

	if m.status != "" {
		out += "\n\n" + m.status
	}

	return out
}

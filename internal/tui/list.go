package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/MKhiriev/go-secret-vault/internal/vault"
)

type entryKind int

const (
	entryCredential entryKind = iota
	entryNote
)

// listEntry is a flattened row of the merged credential/note listing.
type listEntry struct {
	kind entryKind
	id   string
	name string
	meta string
}

type listModel struct {
	entries []listEntry
	idx     int
	syncing bool
	spinner spinner.Model
	status  string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return listModel{spinner: s}
}

// reload rebuilds the rows from the session cache, credentials first,
// both in server creation order.
func (m *listModel) reload(cache *vault.Cache) {
	entries := make([]listEntry, 0, cache.Credentials.Len()+cache.Notes.Len())
	for _, cred := range cache.Credentials.List() {
		entries = append(entries, listEntry{
			kind: entryCredential,
			id:   cred.ID,
			name: cred.Domain,
			meta: cred.Username,
		})
	}
	for _, note := range cache.Notes.List() {
		entries = append(entries, listEntry{
			kind: entryNote,
			id:   note.ID,
			name: note.Title,
		})
	}

	m.entries = entries
	if m.idx >= len(m.entries) {
		m.idx = len(m.entries) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m listModel) current() (listEntry, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return listEntry{}, false
	}
	return m.entries[m.idx], true
}

func entryIcon(k entryKind) string {
	switch k {
	case entryCredential:
		return "[P]"
	case entryNote:
		return "[N]"
	default:
		return "[?]"
	}
}

func (m listModel) View() string {
	header := titleStyle.Render("go-secret-vault")
	if m.syncing {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	if len(m.entries) == 0 {
		out += "Нет записей\n"
	} else {
		for i, entry := range m.entries {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			line := fmt.Sprintf("%s%s %s", cursor, entryIcon(entry.kind), entry.name)
			if entry.meta != "" {
				line += "  " + helpStyle.Render(entry.meta)
			}
			out += line + "\n"
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("n новая  s синхр.  l выйти из аккаунта  q выход  enter открыть")
	return out
}

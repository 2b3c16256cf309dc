package tui

type typeSelectModel struct {
	items []string
	idx   int
}

func newTypeSelectModel() typeSelectModel {
	return typeSelectModel{items: []string{"Логин/Пароль", "Заметка"}}
}

func (m typeSelectModel) View() string {
	out := titleStyle.Render("НОВАЯ ЗАПИСЬ") + "\n\nТип записи:\n\n"
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}
	out += "\n" + helpStyle.Render("esc назад  enter выбрать")
	return out
}

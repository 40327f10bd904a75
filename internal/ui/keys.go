package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists every binding the TUI reacts to. Screen-specific bindings are
// only shown in the help footer of their own tab.
type KeyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Quit    key.Binding
	Help    key.Binding

	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Enter key.Binding

	Toggle key.Binding
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding

	Filter        key.Binding
	ShowCompleted key.Binding

	AddNote     key.Binding
	AddReminder key.Binding

	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding

	Reset   key.Binding
	Work    key.Binding
	Short   key.Binding
	Long    key.Binding
	Accept  key.Binding
	Decline key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Help, k.Quit},
		{k.Up, k.Down, k.Left, k.Right, k.Enter},
	}
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "sonraki sekme")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "önceki sekme")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "çıkış")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "yardım")),

		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "yukarı")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "aşağı")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "önceki gün")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "sonraki gün")),
		Enter: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "seç")),

		Toggle: key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space", "değiştir")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "ekle")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "düzenle")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "sil")),

		Filter:        key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filtreler")),
		ShowCompleted: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "tamamlananlar")),

		AddNote:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "yeni not")),
		AddReminder: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "yeni hatırlatıcı")),

		PrevMonth: key.NewBinding(key.WithKeys("[", "pgup"), key.WithHelp("[", "önceki ay")),
		NextMonth: key.NewBinding(key.WithKeys("]", "pgdown"), key.WithHelp("]", "sonraki ay")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "bugün")),

		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "sıfırla")),
		Work:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "çalışma")),
		Short:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "kısa mola")),
		Long:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "uzun mola")),
		Accept:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "öneriyi kabul et")),
		Decline: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "daha sonra")),
	}
}

// tabKeys is the help shown under each tab.
type tabKeys struct {
	bindings []key.Binding
	global   KeyMap
}

func (t tabKeys) ShortHelp() []key.Binding {
	return append(append([]key.Binding{}, t.bindings...), t.global.NextTab, t.global.Help, t.global.Quit)
}

func (t tabKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{t.bindings, {t.global.NextTab, t.global.PrevTab, t.global.Help, t.global.Quit}}
}

package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the order terminal UI.
type KeyMap struct {
	// Navigation.
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	Select key.Binding // Activate / edit the focused field.
	Back   key.Binding // Leave the current screen.
	Quit   key.Binding

	// Order form.
	AddVegetable key.Binding
	AddSeasoning key.Binding
	AddSauce     key.Binding
	AddOther     key.Binding
	DeleteRow    key.Binding
	Submit       key.Binding

	// History filters.
	CycleBranch     key.Binding
	EditFrom        key.Binding
	EditTo          key.Binding
	ToggleSort      key.Binding
	PresetWeek      key.Binding
	PresetMonth     key.Binding
	PresetLastMonth key.Binding
	ResetRange      key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "previous"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
	AddVegetable: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "+야채"),
	),
	AddSeasoning: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "+양념"),
	),
	AddSauce: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "+소스"),
	),
	AddOther: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "+잡화(기타)"),
	),
	DeleteRow: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "삭제"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("C-s", "제출"),
	),
	CycleBranch: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "지점 필터"),
	),
	EditFrom: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "시작일"),
	),
	EditTo: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "종료일"),
	),
	ToggleSort: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "정렬"),
	),
	PresetWeek: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "이번 주"),
	),
	PresetMonth: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "이번 달"),
	),
	PresetLastMonth: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "지난 달"),
	),
	ResetRange: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "기간 초기화"),
	),
}

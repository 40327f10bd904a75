package ui

import (
	"github.com/charmbracelet/huh"

	"github.com/faizmokh/ajanda/internal/agenda"
	"github.com/faizmokh/ajanda/internal/pomodoro"
	"github.com/faizmokh/ajanda/internal/prompt"
)

type dialogKind uint8

const (
	dialogAddTask dialogKind = iota + 1
	dialogEditTask
	dialogDeleteTask
	dialogFilter
	dialogAddEvent
	dialogAddNote
	dialogAddReminder
	dialogReminderTime
	dialogProposal
	dialogAlert
)

// formValues backs every huh field. A dialog reopened after a validation
// error keeps pointing at the same values, so the user's input survives.
type formValues struct {
	Title       string
	Description string
	Date        string
	Time        string
	Content     string

	Choice int

	ShowCompleted bool
	DateFilter    agenda.DateFilter

	ReminderTime int
}

// dialog is the modal currently covering the active tab.
type dialog struct {
	kind   dialogKind
	title  string
	form   *huh.Form
	values *formValues
	err    string

	targetID string
	choice   prompt.Choice
	proposal pomodoro.Proposal
}

func (d *dialog) rebuild(theme *huh.Theme) {
	d.form = buildForm(d, theme)
}

func buildForm(d *dialog, theme *huh.Theme) *huh.Form {
	v := d.values
	var fields []huh.Field

	switch d.kind {
	case dialogAddTask:
		fields = []huh.Field{
			huh.NewInput().Title("Görev başlığı").Value(&v.Title),
			huh.NewInput().Title("Açıklama (opsiyonel)").Value(&v.Description),
			huh.NewInput().Title("Tarih (GG/AA/YYYY)").Value(&v.Date),
			huh.NewInput().Title("Saat (SS:DD)").Value(&v.Time),
		}
	case dialogEditTask:
		fields = []huh.Field{
			huh.NewInput().Title("Görev başlığı").Value(&v.Title),
		}
	case dialogAddEvent:
		fields = []huh.Field{
			huh.NewInput().Title("Etkinlik başlığı").Value(&v.Title),
			huh.NewInput().Title("Saat (örn: 14:30)").Value(&v.Time),
			huh.NewText().Title("Açıklama (opsiyonel)").Lines(3).Value(&v.Description),
		}
	case dialogAddNote:
		fields = []huh.Field{
			huh.NewText().Title("Notunuzu buraya yazın...").Lines(6).Value(&v.Content),
		}
	case dialogAddReminder:
		fields = []huh.Field{
			huh.NewInput().Title("Hatırlatıcı başlığı").Value(&v.Title),
			huh.NewInput().Title("Tarih (YYYY-MM-DD)").Value(&v.Date),
			huh.NewInput().Title("Saat (HH:MM)").Value(&v.Time),
		}
	case dialogFilter:
		filters := make([]huh.Option[agenda.DateFilter], 0, len(agenda.DateFilters))
		for _, f := range agenda.DateFilters {
			filters = append(filters, huh.NewOption(f.Label(), f))
		}
		fields = []huh.Field{
			huh.NewConfirm().
				Title("Tamamlanan görevleri göster").
				Affirmative("Evet").
				Negative("Hayır").
				Value(&v.ShowCompleted),
			huh.NewSelect[agenda.DateFilter]().
				Title("Tarih Filtresi").
				Options(filters...).
				Value(&v.DateFilter),
		}
	case dialogReminderTime:
		opts := make([]huh.Option[int], 0, len(agenda.ReminderTimes))
		for _, minutes := range agenda.ReminderTimes {
			opts = append(opts, huh.NewOption(agenda.ReminderTimeLabel(minutes), minutes))
		}
		fields = []huh.Field{
			huh.NewSelect[int]().
				Title("Hatırlatıcı Zamanı").
				Description("Etkinlikten kaç dakika önce hatırlatılsın?").
				Options(opts...).
				Value(&v.ReminderTime),
		}
	case dialogDeleteTask, dialogProposal:
		opts := make([]huh.Option[int], 0, len(d.choice.Options))
		for i, opt := range d.choice.Options {
			opts = append(opts, huh.NewOption(opt.Label, i))
		}
		fields = []huh.Field{
			huh.NewSelect[int]().
				Title(d.choice.Title).
				Description(d.choice.Message).
				Options(opts...).
				Value(&v.Choice),
		}
	case dialogAlert:
		fields = []huh.Field{
			huh.NewNote().
				Title(d.title).
				Description(v.Content).
				Next(true).
				NextLabel("Tamam"),
		}
	}

	return huh.NewForm(huh.NewGroup(fields...)).
		WithTheme(theme).
		WithShowHelp(false)
}

// picked returns the option selected in a choice dialog.
func (d *dialog) picked() (prompt.Option, bool) {
	i := d.values.Choice
	if i < 0 || i >= len(d.choice.Options) {
		return prompt.Option{}, false
	}
	return d.choice.Options[i], true
}

func newDialog(kind dialogKind, title string, values *formValues, theme *huh.Theme) *dialog {
	if values == nil {
		values = &formValues{}
	}
	d := &dialog{kind: kind, title: title, values: values}
	d.rebuild(theme)
	return d
}

func newChoiceDialog(kind dialogKind, choice prompt.Choice, theme *huh.Theme) *dialog {
	d := &dialog{kind: kind, title: choice.Title, values: &formValues{Choice: choice.CancelIndex()}, choice: choice}
	d.rebuild(theme)
	return d
}

// newProposalDialog offers the next pomodoro mode with the accept option
// selected, matching the single-button alert it stands in for.
func newProposalDialog(p pomodoro.Proposal, theme *huh.Theme) *dialog {
	d := &dialog{kind: dialogProposal, title: p.Title(), values: &formValues{}, choice: p.Choice(), proposal: p}
	d.rebuild(theme)
	return d
}

func newAlertDialog(title, message string, theme *huh.Theme) *dialog {
	return newDialog(dialogAlert, title, &formValues{Content: message}, theme)
}

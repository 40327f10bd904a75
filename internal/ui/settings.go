package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/faizmokh/ajanda/internal/agenda"
	"github.com/faizmokh/ajanda/internal/logger"
	"github.com/faizmokh/ajanda/internal/version"
)

type settingsItem struct {
	section string
	title   string
	// toggle is set for boolean preferences.
	toggle agenda.SettingKey
	action settingsAction
}

type settingsAction uint8

const (
	actionToggle settingsAction = iota
	actionReminderTime
	actionBackup
	actionRepeating
	actionAbout
	actionHelp
)

var settingsItems = []settingsItem{
	{section: "Genel", toggle: agenda.SettingNotifications},
	{section: "Genel", toggle: agenda.SettingDarkMode},
	{section: "Genel", toggle: agenda.SettingSound},
	{section: "Senkronizasyon", toggle: agenda.SettingAutoSync},
	{section: "Senkronizasyon", title: "Verileri Yedekle", action: actionBackup},
	{section: "Hatırlatıcılar", title: "Hatırlatıcı Zamanı", action: actionReminderTime},
	{section: "Hatırlatıcılar", title: "Tekrarlanan Hatırlatıcılar", action: actionRepeating},
	{section: "Hakkında", title: "Uygulama Bilgileri", action: actionAbout},
	{section: "Hakkında", title: "Yardım ve Destek", action: actionHelp},
}

func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.settingsCursor < len(settingsItems)-1 {
			m.settingsCursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.settingsCursor > 0 {
			m.settingsCursor--
		}
	case key.Matches(msg, m.keys.Enter), key.Matches(msg, m.keys.Toggle):
		return m.activateSetting(settingsItems[m.settingsCursor])
	}
	return m, nil
}

func (m Model) activateSetting(item settingsItem) (tea.Model, tea.Cmd) {
	theme := m.styles.formTheme()

	switch item.action {
	case actionToggle:
		value, err := m.stores.Settings.Toggle(item.toggle)
		if err != nil {
			logger.Error("toggle setting", "key", item.toggle, "error", err)
			m.errorLine = err.Error()
			return m, nil
		}
		if item.toggle == agenda.SettingDarkMode {
			m.styles = newStyles(value)
		}
		m.statusLine = fmt.Sprintf("%s: %s", item.toggle.Label(), onOff(value))
		m.errorLine = ""
	case actionReminderTime:
		values := &formValues{ReminderTime: m.stores.Settings.ReminderTime}
		return m.openDialog(newDialog(dialogReminderTime, "Hatırlatıcı Zamanı", values, theme))
	case actionBackup:
		return m.openDialog(newAlertDialog("Bilgi", "Yedekleme özelliği yakında eklenecek.", theme))
	case actionRepeating:
		return m.openDialog(newAlertDialog("Bilgi", "Bu özellik yakında eklenecek.", theme))
	case actionAbout:
		return m.openDialog(newAlertDialog("Uygulama Bilgileri",
			"Akıllı Ajanda "+version.Info()+"\n\nBu uygulama, günlük planlarınızı ve görevlerinizi yönetmenize yardımcı olmak için tasarlanmıştır.", theme))
	case actionHelp:
		return m.openDialog(newAlertDialog("Yardım ve Destek",
			"Yardım ve destek için lütfen e-posta gönderin: destek@akilliajanda.com", theme))
	}
	return m, nil
}

func (m Model) viewSettings() string {
	var b strings.Builder
	s := m.styles
	settings := m.stores.Settings

	section := ""
	for i, item := range settingsItems {
		if item.section != section {
			section = item.section
			b.WriteString(s.section.Render(section))
			b.WriteByte('\n')
		}

		cursor := "  "
		if i == m.settingsCursor {
			cursor = s.cursor.Render("> ")
		}

		var title, detail string
		switch item.action {
		case actionToggle:
			value, _ := settings.Get(item.toggle)
			title = fmt.Sprintf("%s [%s]", item.toggle.Label(), onOff(value))
			detail = item.toggle.Description()
		case actionReminderTime:
			title = fmt.Sprintf("%s [%s]", item.title, agenda.ReminderTimeLabel(settings.ReminderTime))
			detail = fmt.Sprintf("Etkinlikten %d dakika önce hatırlat", settings.ReminderTime)
		case actionRepeating:
			title = item.title
			detail = "Tekrarlanan etkinlikler için hatırlatıcılar"
		default:
			title = item.title
		}

		b.WriteString(cursor + s.text.Render(title))
		if detail != "" {
			b.WriteString("  " + s.muted.Render(detail))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func onOff(v bool) string {
	if v {
		return "açık"
	}
	return "kapalı"
}

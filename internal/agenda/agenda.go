// Package agenda holds the in-memory stores behind each screen: tasks, calendar
// events, dashboard notes and reminders, and preferences. Nothing here touches
// disk; every store lives as long as the process.
package agenda

// Stores bundles one instance of every store. The UI owns it and hands each
// screen a pointer to the store that screen mutates.
type Stores struct {
	Tasks    *Tasks
	Calendar *Calendar
	Notebook *Notebook
	Settings *Settings
}

// NewStores creates empty stores sharing ids, starting from settings.
func NewStores(ids IDSource, settings Settings) *Stores {
	if ids == nil {
		ids = UUIDSource{}
	}
	return &Stores{
		Tasks:    NewTasks(ids),
		Calendar: NewCalendar(ids),
		Notebook: NewNotebook(ids),
		Settings: &settings,
	}
}

// SeedSamples fills the stores with the sample records a first launch shows.
func (s *Stores) SeedSamples() {
	for _, title := range []string{
		"Proje raporunu hazırla",
		"E-posta yanıtla",
		"Toplantı notlarını gönder",
		"Haftalık raporu gözden geçir",
		"Yeni proje planını hazırla",
	} {
		task, err := s.Tasks.Add(TaskInput{Title: title})
		if err == nil && title == "E-posta yanıtla" {
			s.Tasks.Toggle(task.ID)
		}
	}

	_, _ = s.Notebook.AddNote("Alışveriş listesi\nSüt, ekmek, yumurta")
	_, _ = s.Notebook.AddNote("Toplantı notları\nProje teslim tarihi: 15 Haziran")

	_, _ = s.Notebook.AddReminder(ReminderInput{Title: "Doğum günü", Date: "2023-06-10", Time: "09:00"})
	_, _ = s.Notebook.AddReminder(ReminderInput{Title: "Doktor randevusu", Date: "2023-06-15", Time: "14:30"})
}

package domain

// HabitOverview is one habit as shown on the dashboard, with streaks
// computed against the dashboard's day.
type HabitOverview struct {
	Habit         *Habit         `json:"habit"`
	Entries       []*HabitEntry  `json:"entries"`
	CurrentStreak int            `json:"current_streak"`
	LongestStreak int            `json:"longest_streak"`
	RecentEntry   *HabitEntry    `json:"recent_entry"`
	MoodCounts    map[string]int `json:"mood_counts"`
}

type Dashboard struct {
	Today  string          `json:"today"`
	Habits []HabitOverview `json:"habits"`
}

// MonthNames labels history month filters, January first.
var MonthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// MinHistoryYear hides placeholder years from the history year filter.
const MinHistoryYear = 2025

type HabitHistory struct {
	Habit      *Habit        `json:"habit"`
	Entries    []*HabitEntry `json:"entries"`
	Year       int           `json:"year,omitempty"`
	Month      int           `json:"month,omitempty"`
	Years      []int         `json:"years"`
	Months     []int         `json:"months"`
	MonthNames []string      `json:"month_names"`
}

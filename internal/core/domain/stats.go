package domain

import "time"

// Daily outcome markers used in HabitStat.DailyProgress.
const (
	DayNotLogged = -1
	DayFailure   = 0
	DaySuccess   = 1
)

type PeriodStats struct {
	StartDate   string      `json:"start_date"`
	EndDate     string      `json:"end_date"`
	TotalHabits int         `json:"total_habits"`
	OverallRate float64     `json:"overall_completion_rate"`
	HabitStats  []HabitStat `json:"habits"`
}

type HabitStat struct {
	HabitID        string  `json:"habit_id"`
	HabitName      string  `json:"habit_name"`
	DaysLogged     int     `json:"days_logged"`
	DaysSucceeded  int     `json:"days_succeeded"`
	CompletionRate float64 `json:"completion_rate"`
	DailyProgress  []int   `json:"daily_progress"`
}

type StatsInput struct {
	UserID    string
	StartDate time.Time
	EndDate   time.Time
}

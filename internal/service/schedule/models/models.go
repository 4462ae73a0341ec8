package models

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Источник часов дня недели
const (
	SourceWeekly  = "weekly"  // записи недельного расписания
	SourceDefault = "default" // записей нет, действуют часы по умолчанию
	SourceClosed  = "closed"  // все записи дня помечены как недоступные
)

// WeeklyScheduleResponse действующее недельное расписание бизнеса
type WeeklyScheduleResponse struct {
	BusinessID int64
	Timezone   string
	Days       []DaySchedule // 7 элементов, с воскресенья
}

// DaySchedule часы одного дня недели
type DaySchedule struct {
	Weekday   time.Weekday
	Open      bool
	Source    string
	Intervals []domain.LocalInterval
}

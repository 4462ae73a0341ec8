package get_available_slots

import "github.com/m04kA/SMC-AvailabilityService/internal/domain"

// bookedIntervals возвращает занятые интервалы активных бронирований
func bookedIntervals(bookings []*domain.ReservedBooking) []domain.Interval {
	intervals := make([]domain.Interval, 0, len(bookings))
	for _, b := range bookings {
		// Пропускаем неактивные бронирования
		if !b.IsActive() {
			continue
		}
		intervals = append(intervals, b.Interval())
	}
	return intervals
}

// toSlots преобразует слоты движка в модель ответа
func toSlots(resolved []domain.ResolvedSlot) []Slot {
	result := make([]Slot, len(resolved))
	for i, s := range resolved {
		result[i] = Slot{
			StartAt:   s.StartInstant,
			EndAt:     s.EndInstant,
			LocalDate: s.LocalDate,
			LocalTime: s.LocalTime,
			Display:   s.DisplayLocal,
		}
	}
	return result
}

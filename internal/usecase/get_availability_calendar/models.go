package get_availability_calendar

import "github.com/m04kA/SMC-AvailabilityService/pkg/types"

// Request модель запроса календаря доступности
type Request struct {
	BusinessID int64
	From       types.Date // нулевое значение - сегодня в часовом поясе календаря
	Days       int        // 0 - значение по умолчанию
	Timezone   string     // часовой пояс зрителя, пустой - часовой пояс бизнеса
}

// Response модель ответа
type Response struct {
	BusinessID int64
	From       types.Date
	Timezone   string
	Days       []Day // по одному элементу на дату, по возрастанию
}

// Day доступность одной даты
type Day struct {
	Date      types.Date
	Available bool
	Rule      string
}

package next_available_date

import "github.com/m04kA/SMC-AvailabilityService/pkg/types"

// Request модель запроса поиска ближайшей доступной даты
type Request struct {
	BusinessID  int64
	From        types.Date // нулевое значение - сегодня в часовом поясе поиска
	Timezone    string     // часовой пояс зрителя, пустой - часовой пояс бизнеса
	HorizonDays int        // 0 - значение по умолчанию
}

// Response модель ответа
type Response struct {
	BusinessID  int64
	From        types.Date
	Timezone    string
	HorizonDays int
	Found       bool
	Date        types.Date // заполнена, если Found
}

package check_date_availability

import "github.com/m04kA/SMC-AvailabilityService/pkg/types"

// Request модель запроса проверки доступности даты
type Request struct {
	BusinessID int64
	Date       types.Date
	Timezone   string // часовой пояс зрителя, пустой - часовой пояс бизнеса
}

// Response модель ответа
type Response struct {
	BusinessID int64
	Date       types.Date
	Timezone   string // часовой пояс, в котором дата понималась как полные сутки
	Available  bool
	Rule       string // правило, которое приняло решение
}

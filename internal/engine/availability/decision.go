package availability

import "github.com/m04kA/SMC-AvailabilityService/pkg/types"

// Rule правило каскада, которое приняло решение
type Rule string

const (
	RuleOverride      Rule = "override_exception"
	RuleClosedMonth   Rule = "closed_month"
	RuleBlockedRange  Rule = "blocked_range"
	RuleUnavailable   Rule = "unavailable_exception"
	RuleWeekly        Rule = "weekly_schedule"
	RuleWeeklyDefault Rule = "weekly_default"
)

// Decision результат разрешения доступности одной даты
type Decision struct {
	Date      types.Date
	Available bool
	Rule      Rule
}

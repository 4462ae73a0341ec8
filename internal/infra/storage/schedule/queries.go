package schedule

import (
	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

func timezoneQuery(businessID int64) (string, []interface{}, error) {
	return psqlbuilder.Select("timezone").
		From("businesses").
		Where(squirrel.Eq{"id": businessID}).
		ToSql()
}

func weeklyQuery(businessID int64) (string, []interface{}, error) {
	return psqlbuilder.Select(
		"id",
		"business_id",
		"weekday",
		"start_time",
		"end_time",
		"is_available",
	).
		From("weekly_availability").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("weekday ASC", "start_time ASC").
		ToSql()
}

func exceptionsQuery(businessID int64) (string, []interface{}, error) {
	return psqlbuilder.Select(
		"id",
		"business_id",
		"date",
		"type",
		"appointment_type_id",
		"start_time",
		"end_time",
		"reason",
		"custom_schedule",
	).
		From("availability_exceptions").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("date ASC", "id ASC").
		ToSql()
}

func blockedRangesQuery(businessID int64) (string, []interface{}, error) {
	return psqlbuilder.Select(
		"id",
		"business_id",
		"start_date",
		"end_date",
		"reason",
		"is_all_day",
	).
		From("blocked_date_ranges").
		Where(squirrel.Eq{"business_id": businessID}).
		OrderBy("start_date ASC").
		ToSql()
}

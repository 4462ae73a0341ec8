package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries(t *testing.T) {
	tests := []struct {
		name  string
		build func(int64) (string, []interface{}, error)
		want  string
	}{
		{
			name:  "timezone",
			build: timezoneQuery,
			want:  "SELECT timezone FROM businesses WHERE id = $1",
		},
		{
			name:  "weekly",
			build: weeklyQuery,
			want: "SELECT id, business_id, weekday, start_time, end_time, is_available FROM weekly_availability " +
				"WHERE business_id = $1 ORDER BY weekday ASC, start_time ASC",
		},
		{
			name:  "exceptions",
			build: exceptionsQuery,
			want: "SELECT id, business_id, date, type, appointment_type_id, start_time, end_time, reason, custom_schedule " +
				"FROM availability_exceptions WHERE business_id = $1 ORDER BY date ASC, id ASC",
		},
		{
			name:  "blocked ranges",
			build: blockedRangesQuery,
			want: "SELECT id, business_id, start_date, end_date, reason, is_all_day FROM blocked_date_ranges " +
				"WHERE business_id = $1 ORDER BY start_date ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.build(42)
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []interface{}{int64(42)}, args)
		})
	}
}

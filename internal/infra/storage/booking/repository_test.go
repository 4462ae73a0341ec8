package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListReservedQuery(t *testing.T) {
	from := time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	query, args, err := listReservedQuery(8, from, to)
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, business_id, appointment_type_id, start_at, end_at, status FROM bookings "+
		"WHERE business_id = $1 AND start_at < $2 AND end_at > $3 AND status IN ($4,$5,$6,$7) ORDER BY start_at ASC", query)
	assert.Equal(t, []interface{}{int64(8), to, from, "pending", "confirmed", "in_progress", "completed"}, args)
}

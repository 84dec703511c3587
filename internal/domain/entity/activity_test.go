package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeActivity_NewestFirst(t *testing.T) {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	older := &Order{ID: uuid.New(), CreatedAt: base}
	newer := &Order{ID: uuid.New(), CreatedAt: base.Add(2 * time.Hour)}
	middle := &Appointment{ID: uuid.New(), CreatedAt: base.Add(time.Hour)}

	items := MergeActivity([]*Order{older, newer}, []*Appointment{middle})
	require.Len(t, items, 3)

	describe := func(item ActivityItem) string {
		return Match(item,
			func(o *Order) string { return "order:" + o.ID.String() },
			func(a *Appointment) string { return "appointment:" + a.ID.String() },
		)
	}

	assert.Equal(t, "order:"+newer.ID.String(), describe(items[0]))
	assert.Equal(t, "appointment:"+middle.ID.String(), describe(items[1]))
	assert.Equal(t, "order:"+older.ID.String(), describe(items[2]))
	assert.Equal(t, ActivityAppointment, items[1].Kind())
}

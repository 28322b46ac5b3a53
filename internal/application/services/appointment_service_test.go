package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookline/core/internal/domain/entities"
	"github.com/bookline/core/internal/ports"
)

func TestAppointmentCreateFromDatePair(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.appointments.Create(ctx, ports.CreateAppointmentRequest{
		CustomerID: "cust-1",
		ServiceID:  "svc-1",
		Date:       "2024-01-01",
		Time:       "10:00",
		Notes:      "first visit",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", created.Date())
	assert.Equal(t, "10:00", created.TimeOfDay())
	assert.Equal(t, "first visit", created.Notes)

	found, err := env.appointments.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, found.StartsAt.Equal(created.StartsAt))
}

func TestAppointmentCreateFromDatetime(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.appointments.Create(context.Background(), ports.CreateAppointmentRequest{
		CustomerID: "cust-1",
		ServiceID:  "svc-1",
		Datetime:   "2024-03-15T14:30:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", created.Date())
	assert.Equal(t, "14:30", created.TimeOfDay())
}

func TestAppointmentCreateWithoutSchedule(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		req  ports.CreateAppointmentRequest
	}{
		{
			name: "nothing at all",
			req:  ports.CreateAppointmentRequest{CustomerID: "c", ServiceID: "s"},
		},
		{
			name: "date without time",
			req:  ports.CreateAppointmentRequest{CustomerID: "c", ServiceID: "s", Date: "2024-01-01"},
		},
		{
			name: "malformed datetime",
			req:  ports.CreateAppointmentRequest{CustomerID: "c", ServiceID: "s", Datetime: "tomorrow-ish"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.appointments.Create(context.Background(), tt.req)
			assert.ErrorIs(t, err, entities.ErrInvalidSchedule)
		})
	}
}

func TestAppointmentUpdateTimeKeepsDate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.appointments.Create(ctx, ports.CreateAppointmentRequest{
		CustomerID: "cust-1",
		ServiceID:  "svc-1",
		Date:       "2024-01-01",
		Time:       "10:00",
	})
	require.NoError(t, err)

	updated, err := env.appointments.Update(ctx, created.ID, ports.UpdateAppointmentRequest{
		Time: strPtr("16:30"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", updated.Date())
	assert.Equal(t, "16:30", updated.TimeOfDay())
	assert.Equal(t, "cust-1", updated.CustomerID)
}

func TestAppointmentUpdateUnknownID(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.appointments.Update(context.Background(), "does-not-exist", ports.UpdateAppointmentRequest{
		Notes: strPtr("missed"),
	})
	assert.ErrorIs(t, err, entities.ErrAppointmentNotFound)
}

func TestAppointmentListDateFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	book := func(date, timeOfDay string) {
		_, err := env.appointments.Create(ctx, ports.CreateAppointmentRequest{
			CustomerID: "cust-1",
			ServiceID:  "svc-1",
			Date:       date,
			Time:       timeOfDay,
		})
		require.NoError(t, err)
	}
	book("2024-01-01", "10:00")
	book("2024-01-01", "11:00")
	book("2024-01-02", "09:00")

	all, err := env.appointments.List(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	firstDay, err := env.appointments.List(ctx, "2024-01-01", "")
	require.NoError(t, err)
	require.Len(t, firstDay, 2)
	for _, a := range firstDay {
		assert.Equal(t, "2024-01-01", a.Date())
	}

	none, err := env.appointments.List(ctx, "2030-12-31", "")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAppointmentListServiceFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	book := func(serviceID, timeOfDay string) {
		_, err := env.appointments.Create(ctx, ports.CreateAppointmentRequest{
			CustomerID: "cust-1",
			ServiceID:  serviceID,
			Date:       "2024-01-01",
			Time:       timeOfDay,
		})
		require.NoError(t, err)
	}
	book("svc-haircut", "10:00")
	book("svc-shave", "11:00")
	book("svc-haircut", "12:00")

	haircuts, err := env.appointments.List(ctx, "", "svc-haircut")
	require.NoError(t, err)
	require.Len(t, haircuts, 2)
	for _, a := range haircuts {
		assert.Equal(t, "svc-haircut", a.ServiceID)
	}

	// Both filters compose.
	combined, err := env.appointments.List(ctx, "2024-01-01", "svc-shave")
	require.NoError(t, err)
	require.Len(t, combined, 1)
	assert.Equal(t, "svc-shave", combined[0].ServiceID)

	none, err := env.appointments.List(ctx, "", "svc-massage")
	require.NoError(t, err)
	assert.Empty(t, none)
}

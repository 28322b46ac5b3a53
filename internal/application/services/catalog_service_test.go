package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookline/core/internal/domain/entities"
	"github.com/bookline/core/internal/ports"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestCatalogCreateDefaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name         string
		req          ports.CreateServiceRequest
		wantDuration int
		wantPrice    float64
	}{
		{
			name:         "explicit values",
			req:          ports.CreateServiceRequest{Title: "Haircut", Duration: intPtr(45), Price: floatPtr(25)},
			wantDuration: 45,
			wantPrice:    25,
		},
		{
			name:         "missing duration and price",
			req:          ports.CreateServiceRequest{Title: "Haircut"},
			wantDuration: DefaultDurationMinutes,
			wantPrice:    DefaultPrice,
		},
		{
			name:         "unusable duration and price",
			req:          ports.CreateServiceRequest{Title: "Haircut", Duration: intPtr(0), Price: floatPtr(-5)},
			wantDuration: DefaultDurationMinutes,
			wantPrice:    DefaultPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := env.catalog.Create(ctx, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDuration, created.Duration)
			assert.Equal(t, tt.wantPrice, created.Price)
		})
	}
}

func TestCatalogUpdateMergesPatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.catalog.Create(ctx, ports.CreateServiceRequest{
		Title:    "Haircut",
		Duration: intPtr(30),
		Price:    floatPtr(20),
	})
	require.NoError(t, err)

	updated, err := env.catalog.Update(ctx, created.ID, ports.UpdateServiceRequest{
		Price: floatPtr(22),
	})
	require.NoError(t, err)
	assert.Equal(t, "Haircut", updated.Title)
	assert.Equal(t, 30, updated.Duration)
	assert.Equal(t, 22.0, updated.Price)
}

func TestCatalogUpdateIgnoresUnusableValues(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.catalog.Create(ctx, ports.CreateServiceRequest{
		Title:    "Haircut",
		Duration: intPtr(30),
		Price:    floatPtr(20),
	})
	require.NoError(t, err)

	updated, err := env.catalog.Update(ctx, created.ID, ports.UpdateServiceRequest{
		Duration: intPtr(-10),
		Price:    floatPtr(-1),
	})
	require.NoError(t, err)
	assert.Equal(t, 30, updated.Duration)
	assert.Equal(t, 20.0, updated.Price)
}

func TestCatalogGetUnknownID(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.catalog.Get(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, entities.ErrServiceNotFound)
}

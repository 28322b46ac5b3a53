package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookline/core/internal/adapters/repository/jsonfile"
	"github.com/bookline/core/internal/domain/entities"
	"github.com/bookline/core/internal/infrastructure/config"
	"github.com/bookline/core/internal/infrastructure/logger"
	"github.com/bookline/core/internal/ports"
)

type testEnv struct {
	customers    *CustomerService
	catalog      *CatalogService
	appointments *AppointmentService
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	log, err := logger.New(config.LoggerConfig{Level: "error", Format: "console"})
	require.NoError(t, err)

	store := jsonfile.New(t.TempDir(), log)
	customerRepo := jsonfile.NewCustomerRepository(store)
	serviceRepo := jsonfile.NewServiceRepository(store)
	appointmentRepo := jsonfile.NewAppointmentRepository(store)

	return testEnv{
		customers:    NewCustomerService(customerRepo, appointmentRepo, log),
		catalog:      NewCatalogService(serviceRepo, log),
		appointments: NewAppointmentService(appointmentRepo, log),
	}
}

func strPtr(s string) *string { return &s }

func TestCustomerCreateRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.customers.Create(ctx, ports.CreateCustomerRequest{
		Name:  "Alice",
		Phone: "555-0100",
		Email: "alice@example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	found, err := env.customers.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, found.Name)
	assert.Equal(t, created.Phone, found.Phone)
	assert.Equal(t, created.Email, found.Email)
}

func TestCustomerUpdateMergesPatch(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.customers.Create(ctx, ports.CreateCustomerRequest{
		Name:  "Alice",
		Phone: "555-0100",
	})
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	updated, err := env.customers.Update(ctx, created.ID, ports.UpdateCustomerRequest{
		Name: strPtr("Alice Smith"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", updated.Name)
	assert.Equal(t, "555-0100", updated.Phone, "unpatched field must be preserved")
	assert.Equal(t, created.ID, updated.ID)
	assert.True(t, updated.CreatedAt.Equal(created.CreatedAt), "CreatedAt is immutable")
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestCustomerConcurrentUpdatesBothLand(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		created, err := env.customers.Create(ctx, ports.CreateCustomerRequest{Name: "Alice"})
		require.NoError(t, err)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := env.customers.Update(ctx, created.ID, ports.UpdateCustomerRequest{
				Phone: strPtr("555-0100"),
			})
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := env.customers.Update(ctx, created.ID, ports.UpdateCustomerRequest{
				Email: strPtr("alice@example.com"),
			})
			assert.NoError(t, err)
		}()
		wg.Wait()

		found, err := env.customers.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "555-0100", found.Phone, "phone patch must survive the concurrent email patch")
		assert.Equal(t, "alice@example.com", found.Email, "email patch must survive the concurrent phone patch")

		require.NoError(t, env.customers.Delete(ctx, created.ID))
	}
}

func TestCustomerUpdateUnknownID(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.customers.Update(context.Background(), "does-not-exist", ports.UpdateCustomerRequest{
		Name: strPtr("Nobody"),
	})
	assert.ErrorIs(t, err, entities.ErrCustomerNotFound)
}

func TestCustomerDeleteCascadesToAppointments(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice, err := env.customers.Create(ctx, ports.CreateCustomerRequest{Name: "Alice"})
	require.NoError(t, err)
	bob, err := env.customers.Create(ctx, ports.CreateCustomerRequest{Name: "Bob"})
	require.NoError(t, err)

	haircut, err := env.catalog.Create(ctx, ports.CreateServiceRequest{Title: "Haircut"})
	require.NoError(t, err)

	book := func(customerID string) {
		_, err := env.appointments.Create(ctx, ports.CreateAppointmentRequest{
			CustomerID: customerID,
			ServiceID:  haircut.ID,
			Date:       "2024-01-01",
			Time:       "10:00",
		})
		require.NoError(t, err)
	}
	book(alice.ID)
	book(alice.ID)
	book(bob.ID)

	require.NoError(t, env.customers.Delete(ctx, alice.ID))

	_, err = env.customers.Get(ctx, alice.ID)
	assert.ErrorIs(t, err, entities.ErrCustomerNotFound)

	remaining, err := env.appointments.List(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, bob.ID, remaining[0].CustomerID)
}

func TestCustomerDeleteUnknownIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	assert.NoError(t, env.customers.Delete(context.Background(), "never-existed"))
}

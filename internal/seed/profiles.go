// Package seed fills an empty profile store with demo records so the
// dashboard and volunteer directory have something to show before any
// real registration happens.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"orbosis/internal/dashboard"
	"orbosis/internal/register"
	"orbosis/internal/store"
	"orbosis/pkg/types"

	"github.com/brianvoe/gofakeit/v6"
)

// DemoDonor writes the fallback donor under both profile keys, but only
// when no current-user record exists yet.
func DemoDonor(ctx context.Context, profileStore store.ProfileStore) error {
	existing, err := profileStore.Get(ctx, store.KeyCurrentUser)
	if err != nil {
		return fmt.Errorf("check current user record: %w", err)
	}
	if existing != nil {
		return nil
	}

	donor := dashboard.FallbackDonor()
	for _, key := range []string{store.RoleKey(types.RoleDonor), store.KeyCurrentUser} {
		if err := profileStore.Set(ctx, key, donor); err != nil {
			return fmt.Errorf("seed donor record %s: %w", key, err)
		}
	}

	return nil
}

// Volunteers generates count fake volunteer profiles and caches them
// under the volunteers directory key.
func Volunteers(ctx context.Context, profileStore store.ProfileStore, count int) error {
	volunteers := make([]*types.Profile, 0, count)
	for i := 0; i < count; i++ {
		volunteers = append(volunteers, fakeVolunteer())
	}

	data, err := json.Marshal(volunteers)
	if err != nil {
		return fmt.Errorf("encode volunteers: %w", err)
	}

	if err := profileStore.SetValue(ctx, store.KeyVolunteers, string(data)); err != nil {
		return fmt.Errorf("seed volunteers: %w", err)
	}

	return nil
}

func fakeVolunteer() *types.Profile {
	registered := gofakeit.DateRange(time.Now().AddDate(-2, 0, 0), time.Now())

	return &types.Profile{
		ID:                 register.NewLocalID(),
		FullName:           gofakeit.Name(),
		Email:              gofakeit.Email(),
		Phone:              gofakeit.Phone(),
		Address:            gofakeit.City(),
		Role:               types.RoleVolunteer,
		RegistrationDate:   registered.UTC().Format(time.RFC3339),
		JoinDate:           registered.Format("02/01/2006"),
		Gender:             gofakeit.RandomString([]string{"female", "male", "other"}),
		Skills:             []string{gofakeit.JobDescriptor(), gofakeit.Hobby()},
		Profession:         gofakeit.JobTitle(),
		AreaOfVolunteering: gofakeit.RandomString(types.VolunteeringAreas),
		Availability:       gofakeit.RandomString(types.Availabilities),
		TasksCompleted:     gofakeit.Number(0, 40),
		EventsAttended:     gofakeit.Number(0, 15),
		HoursVolunteered:   gofakeit.Number(0, 200),
	}
}

package venue_test

import (
	"context"
	"testing"
	"time"

	"github.com/cimile-club/lineup-api/internal/model"
	"github.com/cimile-club/lineup-api/internal/shared/testutil"
	"github.com/cimile-club/lineup-api/internal/venue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestEnvironment creates the venue service against an in-memory database
func setupTestEnvironment(t *testing.T) (*venue.VenueService, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	service := venue.NewVenueService(db, venue.NewVenueRepository())
	return service, db
}

func TestCreateVenue_DuplicateName(t *testing.T) {
	// Given: an existing venue
	service, _ := setupTestEnvironment(t)
	ctx := context.Background()

	_, err := service.Create(ctx, &venue.CreateVenueRequest{Name: "시민구장"})
	require.NoError(t, err)

	// When: creating another venue with the same name
	_, err = service.Create(ctx, &venue.CreateVenueRequest{Name: "시민구장"})

	// Then: rejected
	assert.ErrorIs(t, err, venue.ErrVenueNameTaken)
}

func TestDeleteVenue_BlockedByGame(t *testing.T) {
	// Given: a venue hosting a scheduled game
	service, db := setupTestEnvironment(t)
	ctx := context.Background()

	created, err := service.Create(ctx, &venue.CreateVenueRequest{Name: "시민구장"})
	require.NoError(t, err)

	opponent := &model.Team{Name: "상대팀", IsActive: true}
	require.NoError(t, db.Create(opponent).Error)
	game := &model.Game{
		PlayedAt:       time.Date(2026, 5, 10, 10, 0, 0, 0, time.UTC),
		VenueID:        created.ID,
		OpponentTeamID: opponent.ID,
		GameType:       model.GameTypeRegular,
		Status:         model.GameStatusScheduled,
	}
	require.NoError(t, db.Create(game).Error)

	// When: deleting the venue
	err = service.Delete(ctx, created.ID)

	// Then: blocked until the game is removed
	assert.ErrorIs(t, err, venue.ErrVenueInUse)

	require.NoError(t, db.Delete(game).Error)
	assert.NoError(t, service.Delete(ctx, created.ID))
}

func TestListVenues_ActiveFilter(t *testing.T) {
	// Given: one active and one inactive venue
	service, db := setupTestEnvironment(t)
	ctx := context.Background()

	active, err := service.Create(ctx, &venue.CreateVenueRequest{Name: "시민구장"})
	require.NoError(t, err)
	closed, err := service.Create(ctx, &venue.CreateVenueRequest{Name: "보조구장"})
	require.NoError(t, err)
	require.NoError(t, db.Model(&model.Venue{}).Where("id = ?", closed.ID).
		Update("is_active", false).Error)

	// When: listing with active=true
	onlyActive := true
	venues, err := service.List(ctx, &onlyActive, 0, 100)
	require.NoError(t, err)

	// Then: only the active venue remains
	require.Len(t, venues, 1)
	assert.Equal(t, active.ID, venues[0].ID)
}

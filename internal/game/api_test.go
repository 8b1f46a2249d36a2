package game_test

import (
	"context"
	"testing"
	"time"

	"github.com/cimile-club/lineup-api/internal/game"
	"github.com/cimile-club/lineup-api/internal/model"
	"github.com/cimile-club/lineup-api/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestEnvironment creates the game service against an in-memory database
func setupTestEnvironment(t *testing.T) (*game.GameService, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	service := game.NewGameService(db, game.NewGameRepository())
	return service, db
}

func seedReferences(t *testing.T, db *gorm.DB) (venueID, teamID uint32) {
	t.Helper()

	venue := &model.Venue{Name: "시민구장", IsActive: true}
	require.NoError(t, db.Create(venue).Error)
	opponent := &model.Team{Name: "상대팀", IsActive: true}
	require.NoError(t, db.Create(opponent).Error)
	return venue.ID, opponent.ID
}

func TestCreateGame_Success(t *testing.T) {
	// Given: a venue and an opponent
	service, db := setupTestEnvironment(t)
	venueID, teamID := seedReferences(t, db)

	// When: scheduling a game
	created, err := service.Create(context.Background(), &game.CreateGameRequest{
		PlayedAt:       time.Date(2026, 5, 10, 10, 0, 0, 0, time.UTC),
		VenueID:        venueID,
		OpponentTeamID: teamID,
		IsHome:         true,
	})
	require.NoError(t, err)

	// Then: defaults applied
	assert.Equal(t, model.GameTypeRegular, created.GameType)
	assert.Equal(t, model.GameStatusScheduled, created.Status)
}

func TestCreateGame_MissingReferences(t *testing.T) {
	// Given: only a venue
	service, db := setupTestEnvironment(t)
	venueID, teamID := seedReferences(t, db)

	ctx := context.Background()
	playedAt := time.Date(2026, 5, 10, 10, 0, 0, 0, time.UTC)

	// When/Then: absent venue
	_, err := service.Create(ctx, &game.CreateGameRequest{
		PlayedAt: playedAt, VenueID: 9999, OpponentTeamID: teamID,
	})
	assert.ErrorIs(t, err, game.ErrGameVenueMissing)

	// When/Then: absent opponent
	_, err = service.Create(ctx, &game.CreateGameRequest{
		PlayedAt: playedAt, VenueID: venueID, OpponentTeamID: 9999,
	})
	assert.ErrorIs(t, err, game.ErrGameTeamMissing)
}

func TestDeleteGame_BlockedByLineup(t *testing.T) {
	// Given: a game with a lineup attached
	service, db := setupTestEnvironment(t)
	venueID, teamID := seedReferences(t, db)
	ctx := context.Background()

	created, err := service.Create(ctx, &game.CreateGameRequest{
		PlayedAt:       time.Date(2026, 5, 10, 10, 0, 0, 0, time.UTC),
		VenueID:        venueID,
		OpponentTeamID: teamID,
	})
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.Lineup{GameID: created.ID, Name: "1안"}).Error)

	// When: deleting the game
	err = service.Delete(ctx, created.ID)

	// Then: blocked until the lineup is removed
	assert.ErrorIs(t, err, game.ErrGameHasLineups)

	require.NoError(t, db.Where("game_id = ?", created.ID).Delete(&model.Lineup{}).Error)
	assert.NoError(t, service.Delete(ctx, created.ID))
}

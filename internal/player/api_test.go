package player_test

import (
	"context"
	"testing"
	"time"

	"github.com/cimile-club/lineup-api/internal/model"
	"github.com/cimile-club/lineup-api/internal/player"
	"github.com/cimile-club/lineup-api/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestEnvironment creates the player service against an in-memory database
func setupTestEnvironment(t *testing.T) (*player.PlayerService, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	service := player.NewPlayerService(db, player.NewPlayerRepository())
	return service, db
}

func TestCreatePlayer_DefaultRole(t *testing.T) {
	// Given: a create request without a role
	service, _ := setupTestEnvironment(t)

	// When: created
	created, err := service.Create(context.Background(), &player.CreatePlayerRequest{Name: "신입"})
	require.NoError(t, err)

	// Then: role defaults to PLAYER, active by default
	assert.Equal(t, model.PlayerRolePlayer, created.Role)
	assert.True(t, created.IsActive)
}

func TestCreatePlayer_DuplicateNumber(t *testing.T) {
	// Given: a player wearing number 10
	service, _ := setupTestEnvironment(t)
	ctx := context.Background()

	number := 10
	_, err := service.Create(ctx, &player.CreatePlayerRequest{Name: "주전", Number: &number})
	require.NoError(t, err)

	// When: another player requests the same number
	_, err = service.Create(ctx, &player.CreatePlayerRequest{Name: "후보", Number: &number})

	// Then: rejected
	assert.ErrorIs(t, err, player.ErrPlayerNumberTaken)
}

func TestCreatePlayer_UnknownRole(t *testing.T) {
	// Given: a role outside the enumeration
	service, _ := setupTestEnvironment(t)

	// When: created
	_, err := service.Create(context.Background(), &player.CreatePlayerRequest{Name: "외부인", Role: "SPONSOR"})

	// Then: rejected
	assert.ErrorIs(t, err, player.ErrPlayerInvalidRole)
}

func TestCreatePlayer_MissingTeam(t *testing.T) {
	// Given: a team reference that does not exist
	service, _ := setupTestEnvironment(t)
	teamID := uint32(9999)

	// When: created
	_, err := service.Create(context.Background(), &player.CreatePlayerRequest{Name: "이적생", TeamID: &teamID})

	// Then: rejected
	assert.ErrorIs(t, err, player.ErrPlayerTeamMissing)
}

func TestDeletePlayer_RemovesLineupRows(t *testing.T) {
	// Given: a player assigned in a lineup
	service, db := setupTestEnvironment(t)
	ctx := context.Background()

	created, err := service.Create(ctx, &player.CreatePlayerRequest{Name: "은퇴자"})
	require.NoError(t, err)

	venue := &model.Venue{Name: "시민구장", IsActive: true}
	require.NoError(t, db.Create(venue).Error)
	opponent := &model.Team{Name: "상대팀", IsActive: true}
	require.NoError(t, db.Create(opponent).Error)
	game := &model.Game{
		PlayedAt:       time.Now(),
		VenueID:        venue.ID,
		OpponentTeamID: opponent.ID,
		GameType:       model.GameTypeRegular,
		Status:         model.GameStatusScheduled,
	}
	require.NoError(t, db.Create(game).Error)
	row := &model.Lineup{GameID: game.ID, Name: "1안"}
	require.NoError(t, db.Create(row).Error)

	position := "CF"
	require.NoError(t, db.Create(&model.LineupPlayer{
		LineupID:     row.ID,
		PlayerID:     created.ID,
		Position:     &position,
		BattingOrder: 1,
		IsStarter:    true,
	}).Error)

	// When: the player is hard-deleted
	require.NoError(t, service.Delete(ctx, created.ID))

	// Then: lineup references never block; the rows go with the player
	var count int64
	require.NoError(t, db.Model(&model.LineupPlayer{}).Where("player_id = ?", created.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	require.NoError(t, db.Model(&model.Player{}).Where("id = ?", created.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

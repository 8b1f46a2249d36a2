package lineup_test

import (
	"context"
	"testing"
	"time"

	"github.com/cimile-club/lineup-api/internal/lineup"
	"github.com/cimile-club/lineup-api/internal/model"
	"github.com/cimile-club/lineup-api/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestEnvironment creates the lineup service against an in-memory database
func setupTestEnvironment(t *testing.T) (*lineup.LineupService, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	service := lineup.NewLineupService(db, lineup.NewLineupRepository())
	return service, db
}

func seedGame(t *testing.T, db *gorm.DB) *model.Game {
	t.Helper()

	venue := &model.Venue{Name: "시민구장", IsActive: true}
	require.NoError(t, db.Create(venue).Error)

	opponent := &model.Team{Name: "상대팀", IsActive: true}
	require.NoError(t, db.Create(opponent).Error)

	game := &model.Game{
		PlayedAt:       time.Date(2026, 4, 5, 13, 0, 0, 0, time.UTC),
		VenueID:        venue.ID,
		OpponentTeamID: opponent.ID,
		IsHome:         true,
		GameType:       model.GameTypeRegular,
		Status:         model.GameStatusScheduled,
	}
	require.NoError(t, db.Create(game).Error)
	return game
}

func seedLineup(t *testing.T, db *gorm.DB, gameID uint32, name string) *model.Lineup {
	t.Helper()

	row := &model.Lineup{GameID: gameID, Name: name}
	require.NoError(t, db.Create(row).Error)
	return row
}

func seedPlayer(t *testing.T, db *gorm.DB, name string, number int) *model.Player {
	t.Helper()

	player := &model.Player{
		Name:     name,
		Number:   &number,
		Role:     model.PlayerRolePlayer,
		IsActive: true,
	}
	require.NoError(t, db.Create(player).Error)
	return player
}

func assign(playerID uint32, position string, battingOrder int) *lineup.AssignPlayerRequest {
	return &lineup.AssignPlayerRequest{
		PlayerID:     playerID,
		Position:     position,
		BattingOrder: &battingOrder,
	}
}

func TestAssignPlayer_BatterSlotTakeover(t *testing.T) {
	// Given: two players, the first occupying batting order 2
	service, db := setupTestEnvironment(t)
	ctx := context.Background()

	game := seedGame(t, db)
	row := seedLineup(t, db, game.ID, "1안")
	p1 := seedPlayer(t, db, "포수", 27)
	p2 := seedPlayer(t, db, "일루수", 3)

	_, err := service.AssignPlayer(ctx, row.ID, assign(p1.ID, "C", 2))
	require.NoError(t, err)

	// When: a second player takes batting order 2
	_, err = service.AssignPlayer(ctx, row.ID, assign(p2.ID, "1B", 2))
	require.NoError(t, err)

	// Then: only the second player holds the slot
	var slots []model.LineupPlayer
	require.NoError(t, db.Where("lineup_id = ? AND batting_order = ?", row.ID, 2).Find(&slots).Error)
	require.Len(t, slots, 1)
	assert.Equal(t, p2.ID, slots[0].PlayerID)
}

func TestAssignPlayer_PitcherAndBatterCoexist(t *testing.T) {
	// Given: one player assigned as the pitcher
	service, db := setupTestEnvironment(t)
	ctx := context.Background()

	game := seedGame(t, db)
	row := seedLineup(t, db, game.ID, "1안")
	p := seedPlayer(t, db, "에이스", 1)

	_, err := service.AssignPlayer(ctx, row.ID, assign(p.ID, model.PositionPitcher, 0))
	require.NoError(t, err)

	// When: the same player also takes a batting slot
	_, err = service.AssignPlayer(ctx, row.ID, assign(p.ID, "SS", 4))
	require.NoError(t, err)

	// Then: both rows persist
	var slots []model.LineupPlayer
	require.NoError(t, db.Where("lineup_id = ? AND player_id = ?", row.ID, p.ID).Find(&slots).Error)
	assert.Len(t, slots, 2)
}

func TestAssignPlayer_DuplicateBatterRejected(t *testing.T) {
	// Given: a player already holding a batting slot
	service, db := setupTestEnvironment(t)
	ctx := context.Background()

	game := seedGame(t, db)
	row := seedLineup(t, db, game.ID, "1안")
	p := seedPlayer(t, db, "유격수", 7)

	_, err := service.AssignPlayer(ctx, row.ID, assign(p.ID, "SS", 4))
	require.NoError(t, err)

	// When: the same player is sent to a different batting slot
	_, err = service.AssignPlayer(ctx, row.ID, assign(p.ID, "2B", 5))

	// Then: rejected, first row unchanged
	assert.ErrorIs(t, err, lineup.ErrPlayerAlreadyBatting)

	var slots []model.LineupPlayer
	require.NoError(t, db.Where("lineup_id = ? AND player_id = ?", row.ID, p.ID).Find(&slots).Error)
	require.Len(t, slots, 1)
	assert.Equal(t, 4, slots[0].BattingOrder)
}

func TestAssignPlayer_DuplicatePitcherRejected(t *testing.T) {
	// Given: a player already holding the pitcher slot
	service, db := setupTestEnvironment(t)
	ctx := context.Background()

	game := seedGame(t, db)
	row := seedLineup(t, db, game.ID, "1안")
	p := seedPlayer(t, db, "에이스", 1)

	_, err := service.AssignPlayer(ctx, row.ID, assign(p.ID, model.PositionPitcher, 0))
	require.NoError(t, err)

	// When: the same player is sent to the pitcher slot again
	_, err = service.AssignPlayer(ctx, row.ID, assign(p.ID, model.PositionPitcher, 0))

	// Then: rejected as a duplicate pitcher assignment
	assert.ErrorIs(t, err, lineup.ErrPlayerAlreadyPitcher)
}

func TestAssignPlayer_SameSlotReassignReplaces(t *testing.T) {
	// Given: a player at batting order 4 as shortstop
	service, db := setupTestEnvironment(t)
	ctx := context.Background()

	game := seedGame(t, db)
	row := seedLineup(t, db, game.ID, "1안")
	p := seedPlayer(t, db, "유격수", 7)

	_, err := service.AssignPlayer(ctx, row.ID, assign(p.ID, "SS", 4))
	require.NoError(t, err)

	// When: the same player is re-sent to the same slot with a new position
	_, err = service.AssignPlayer(ctx, row.ID, assign(p.ID, "3B", 4))
	require.NoError(t, err)

	// Then: exactly one row remains, with the new position
	var slots []model.LineupPlayer
	require.NoError(t, db.Where("lineup_id = ? AND player_id = ?", row.ID, p.ID).Find(&slots).Error)
	require.Len(t, slots, 1)
	require.NotNil(t, slots[0].Position)
	assert.Equal(t, "3B", *slots[0].Position)
}

func TestAssignPlayer_InvalidBattingOrder(t *testing.T) {
	// Given: a lineup and a player
	service, db := setupTestEnvironment(t)
	ctx := context.Background()

	game := seedGame(t, db)
	row := seedLineup(t, db, game.ID, "1안")
	p := seedPlayer(t, db, "외야수", 9)

	// When: batting order outside [0,9]
	_, err := service.AssignPlayer(ctx, row.ID, assign(p.ID, "LF", 10))

	// Then: rejected before touching the database
	assert.ErrorIs(t, err, lineup.ErrInvalidBattingOrder)
}

func TestAssignPlayer_MissingEntities(t *testing.T) {
	// Given: a valid lineup and player
	service, db := setupTestEnvironment(t)
	ctx := context.Background()

	game := seedGame(t, db)
	row := seedLineup(t, db, game.ID, "1안")
	p := seedPlayer(t, db, "외야수", 9)

	// When/Then: absent lineup
	_, err := service.AssignPlayer(ctx, 9999, assign(p.ID, "LF", 7))
	assert.ErrorIs(t, err, lineup.ErrLineupNotFound)

	// When/Then: absent player
	_, err = service.AssignPlayer(ctx, row.ID, assign(9999, "LF", 7))
	assert.ErrorIs(t, err, lineup.ErrLineupPlayerMissing)
}

func TestAssignPlayer_EmptyPositionStoredAsNull(t *testing.T) {
	// Given: a lineup and a player
	service, db := setupTestEnvironment(t)
	ctx := context.Background()

	game := seedGame(t, db)
	row := seedLineup(t, db, game.ID, "1안")
	p := seedPlayer(t, db, "대타", 99)

	// When: assigned without a position
	slot, err := service.AssignPlayer(ctx, row.ID, assign(p.ID, "", 8))
	require.NoError(t, err)

	// Then: position is null, and the row counts as batter-type
	assert.Nil(t, slot.Position)
	assert.False(t, slot.IsPitcher())
}

func TestUpdatePosition_ConflictAndForce(t *testing.T) {
	// Given: two batters, the first holding position SS
	service, db := setupTestEnvironment(t)
	ctx := context.Background()

	game := seedGame(t, db)
	row := seedLineup(t, db, game.ID, "1안")
	p1 := seedPlayer(t, db, "유격수", 7)
	p2 := seedPlayer(t, db, "이루수", 4)

	_, err := service.AssignPlayer(ctx, row.ID, assign(p1.ID, "SS", 1))
	require.NoError(t, err)
	second, err := service.AssignPlayer(ctx, row.ID, assign(p2.ID, "2B", 2))
	require.NoError(t, err)

	// When: moving the second batter onto the taken position
	_, err = service.UpdatePosition(ctx, row.ID, second.ID, &lineup.UpdatePositionRequest{Position: "SS"})

	// Then: rejected without force
	assert.ErrorIs(t, err, lineup.ErrPositionTaken)

	// When: the same move with force
	updated, err := service.UpdatePosition(ctx, row.ID, second.ID, &lineup.UpdatePositionRequest{Position: "SS", Force: true})

	// Then: overwritten
	require.NoError(t, err)
	require.NotNil(t, updated.Position)
	assert.Equal(t, "SS", *updated.Position)
}

func TestRemovePlayer(t *testing.T) {
	// Given: one assigned batter
	service, db := setupTestEnvironment(t)
	ctx := context.Background()

	game := seedGame(t, db)
	row := seedLineup(t, db, game.ID, "1안")
	p := seedPlayer(t, db, "좌익수", 8)

	slot, err := service.AssignPlayer(ctx, row.ID, assign(p.ID, "LF", 7))
	require.NoError(t, err)

	// When: removed from the lineup
	require.NoError(t, service.RemovePlayer(ctx, row.ID, slot.ID))

	// Then: no rows remain; removing again fails
	var count int64
	require.NoError(t, db.Model(&model.LineupPlayer{}).Where("lineup_id = ?", row.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	err = service.RemovePlayer(ctx, row.ID, slot.ID)
	assert.ErrorIs(t, err, lineup.ErrSlotNotFound)
}

func TestCopyLineup(t *testing.T) {
	// Given: a lineup with a pitcher and two batters
	service, db := setupTestEnvironment(t)
	ctx := context.Background()

	game := seedGame(t, db)
	source := seedLineup(t, db, game.ID, "1안")
	ace := seedPlayer(t, db, "에이스", 1)
	catcher := seedPlayer(t, db, "포수", 27)

	_, err := service.AssignPlayer(ctx, source.ID, assign(ace.ID, model.PositionPitcher, 0))
	require.NoError(t, err)
	_, err = service.AssignPlayer(ctx, source.ID, assign(ace.ID, "DH", 3))
	require.NoError(t, err)
	_, err = service.AssignPlayer(ctx, source.ID, assign(catcher.ID, "C", 2))
	require.NoError(t, err)

	// When: copied under a new name
	clone, err := service.Copy(ctx, source.ID, &lineup.CopyLineupRequest{NewName: "2안"})
	require.NoError(t, err)

	// Then: the clone carries identical tuples under fresh ids
	assert.Equal(t, "2안", clone.Name)
	assert.Equal(t, source.GameID, clone.GameID)
	assert.False(t, clone.IsDefault)

	type tuple struct {
		PlayerID     uint32
		Position     string
		BattingOrder int
		IsStarter    bool
	}
	collect := func(lineupID uint32) []tuple {
		var slots []model.LineupPlayer
		require.NoError(t, db.Where("lineup_id = ?", lineupID).Order("batting_order, player_id").Find(&slots).Error)
		tuples := make([]tuple, 0, len(slots))
		for _, s := range slots {
			position := ""
			if s.Position != nil {
				position = *s.Position
			}
			tuples = append(tuples, tuple{s.PlayerID, position, s.BattingOrder, s.IsStarter})
		}
		return tuples
	}

	sourceTuples := collect(source.ID)
	cloneTuples := collect(clone.ID)
	require.Len(t, sourceTuples, 3)
	assert.Equal(t, sourceTuples, cloneTuples)
}

func TestAttendance_RoundTrip(t *testing.T) {
	// Given: a lineup with no attendance recorded
	service, db := setupTestEnvironment(t)
	ctx := context.Background()

	game := seedGame(t, db)
	row := seedLineup(t, db, game.ID, "1안")

	// Then: default is an empty map
	attendance, err := service.GetAttendance(ctx, row.ID)
	require.NoError(t, err)
	assert.Empty(t, attendance)

	// When: attendance is stored and read back
	want := map[uint32]bool{3: true, 7: false}
	require.NoError(t, service.SetAttendance(ctx, row.ID, want))

	got, err := service.GetAttendance(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestAttendance_UnreadableDataYieldsEmptyMap(t *testing.T) {
	// Given: a lineup whose stored attendance is not valid JSON
	service, db := setupTestEnvironment(t)
	ctx := context.Background()

	game := seedGame(t, db)
	row := seedLineup(t, db, game.ID, "1안")

	broken := "{not-json"
	require.NoError(t, db.Model(&model.Lineup{}).
		Where("id = ?", row.ID).
		Update("attendance_data", &broken).Error)

	// When/Then: read recovers with an empty map
	got, err := service.GetAttendance(ctx, row.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDeleteLineup_RemovesSlots(t *testing.T) {
	// Given: a lineup with one assigned batter
	service, db := setupTestEnvironment(t)
	ctx := context.Background()

	game := seedGame(t, db)
	row := seedLineup(t, db, game.ID, "1안")
	p := seedPlayer(t, db, "중견수", 8)

	_, err := service.AssignPlayer(ctx, row.ID, assign(p.ID, "CF", 1))
	require.NoError(t, err)

	// When: the lineup is deleted
	require.NoError(t, service.Delete(ctx, row.ID))

	// Then: the slot rows go with it
	var count int64
	require.NoError(t, db.Model(&model.LineupPlayer{}).Where("lineup_id = ?", row.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCreateLineup_GameMustExist(t *testing.T) {
	// Given: no game with the requested id
	service, _ := setupTestEnvironment(t)
	ctx := context.Background()

	// When: creating a lineup for it
	_, err := service.Create(ctx, &lineup.CreateLineupRequest{GameID: 9999, Name: "유령"})

	// Then: rejected
	assert.ErrorIs(t, err, lineup.ErrLineupGameMissing)
}

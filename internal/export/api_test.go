package export_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/cimile-club/lineup-api/internal/config"
	"github.com/cimile-club/lineup-api/internal/export"
	"github.com/cimile-club/lineup-api/internal/model"
	"github.com/cimile-club/lineup-api/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// setupTestEnvironment creates the export service against an in-memory database
func setupTestEnvironment(t *testing.T, club config.ClubConfig) (*export.ExportService, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	service := export.NewExportService(db, export.NewExportRepository(), club)
	return service, db
}

func seedLineupGraph(t *testing.T, db *gorm.DB) *model.Lineup {
	t.Helper()

	venue := &model.Venue{Name: "드림구장", IsActive: true}
	require.NoError(t, db.Create(venue).Error)
	opponent := &model.Team{Name: "번개FC", IsActive: true}
	require.NoError(t, db.Create(opponent).Error)
	game := &model.Game{
		PlayedAt:       time.Date(2026, 6, 7, 13, 0, 0, 0, time.UTC),
		VenueID:        venue.ID,
		OpponentTeamID: opponent.ID,
		IsHome:         true,
		GameType:       model.GameTypeRegular,
		Status:         model.GameStatusScheduled,
	}
	require.NoError(t, db.Create(game).Error)

	row := &model.Lineup{GameID: game.ID, Name: "선발 1안"}
	require.NoError(t, db.Create(row).Error)

	number := 27
	catcher := &model.Player{Name: "포수", Number: &number, Role: model.PlayerRolePlayer, IsActive: true}
	require.NoError(t, db.Create(catcher).Error)

	position := "C"
	require.NoError(t, db.Create(&model.LineupPlayer{
		LineupID:     row.ID,
		PlayerID:     catcher.ID,
		Position:     &position,
		BattingOrder: 2,
		IsStarter:    true,
	}).Error)

	return row
}

func TestLineupSpreadsheet(t *testing.T) {
	// Given: a lineup with one batter
	service, db := setupTestEnvironment(t, config.ClubConfig{Name: "씨밀레"})
	row := seedLineupGraph(t, db)

	// When: exported as a spreadsheet
	data, filename, err := service.LineupSpreadsheet(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, "lineup_1.xlsx", filename)

	// Then: the workbook carries the game header and the batter row
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	opponent, err := f.GetCellValue(sheet, "B4")
	require.NoError(t, err)
	assert.Equal(t, "번개FC", opponent)

	batter, err := f.GetCellValue(sheet, "B11")
	require.NoError(t, err)
	assert.Equal(t, "포수", batter)
}

func TestLineupSpreadsheet_EmptySlotsUsePlaceholder(t *testing.T) {
	// Given: a lineup whose game row was removed underneath it
	service, db := setupTestEnvironment(t, config.ClubConfig{Name: "씨밀레"})
	row := seedLineupGraph(t, db)
	require.NoError(t, db.Where("id = ?", row.GameID).Delete(&model.Game{}).Error)

	// When: exported
	data, _, err := service.LineupSpreadsheet(context.Background(), row.ID)
	require.NoError(t, err)

	// Then: the missing joins render the placeholder
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	opponent, err := f.GetCellValue(sheet, "B4")
	require.NoError(t, err)
	assert.Equal(t, "미정", opponent)
}

func TestLineupSpreadsheet_NotFound(t *testing.T) {
	// Given: no lineup
	service, _ := setupTestEnvironment(t, config.ClubConfig{Name: "씨밀레"})

	// When/Then
	_, _, err := service.LineupSpreadsheet(context.Background(), 9999)
	assert.ErrorIs(t, err, export.ErrExportLineupMissing)
}

func TestLineupPDF(t *testing.T) {
	// Given: a lineup (no Korean font configured, core-font fallback)
	service, db := setupTestEnvironment(t, config.ClubConfig{Name: "Cimile"})
	row := seedLineupGraph(t, db)

	// When: exported as PDF
	data, filename, err := service.LineupPDF(context.Background(), row.ID)
	require.NoError(t, err)

	// Then: a PDF document comes back
	assert.Equal(t, "lineup_1.pdf", filename)
	require.True(t, len(data) > 4)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRosterSpreadsheet(t *testing.T) {
	// Given: one active player with a number, one without, one inactive
	service, db := setupTestEnvironment(t, config.ClubConfig{Name: "씨밀레"})

	number := 10
	require.NoError(t, db.Create(&model.Player{Name: "주장", Number: &number, Role: model.PlayerRolePlayer, IsActive: true}).Error)
	require.NoError(t, db.Create(&model.Player{Name: "신입", Role: model.PlayerRolePlayer, IsActive: true}).Error)
	require.NoError(t, db.Create(&model.Player{Name: "은퇴", Role: model.PlayerRolePlayer, IsActive: false}).Error)

	// When: the roster is exported
	data, filename, err := service.RosterSpreadsheet(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "players.xlsx", filename)

	// Then: active players only, missing number rendered as placeholder
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 5) // 제목, 빈 줄, 헤더, 선수 2명

	assert.Equal(t, "주장", rows[3][0])
	assert.Equal(t, "10", rows[3][1])
	assert.Equal(t, "신입", rows[4][0])
	assert.Equal(t, "미정", rows[4][1])
}

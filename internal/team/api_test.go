package team_test

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/cimile-club/lineup-api/internal/model"
	"github.com/cimile-club/lineup-api/internal/shared/authz"
	sharedError "github.com/cimile-club/lineup-api/internal/shared/error"
	"github.com/cimile-club/lineup-api/internal/shared/middleware"
	"github.com/cimile-club/lineup-api/internal/shared/testutil"
	"github.com/cimile-club/lineup-api/internal/shared/token"
	"github.com/cimile-club/lineup-api/internal/team"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestEnvironment wires the team routes with real JWT and capability middleware
func setupTestEnvironment(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	cfg := testutil.NewTestConfig()
	tokenManager := token.NewJWTManager(cfg)

	teamService := team.NewTeamService(db, team.NewTeamRepository())
	teamHandler := team.NewTeamHandler(teamService)

	router := testutil.SetupTestRouter()
	authenticated := middleware.JWT(tokenManager, db)
	manageRoster := middleware.RequireCapability(authz.ManageRoster)

	router.GET("/api/v1/teams", teamHandler.List)
	router.POST("/api/v1/teams", authenticated, manageRoster, teamHandler.Create)
	router.DELETE("/api/v1/teams/:id", authenticated, manageRoster, teamHandler.Delete)

	return router, db
}

func managerToken(t *testing.T, db *gorm.DB) string {
	t.Helper()
	testutil.SeedUser(t, db, "manager", model.RoleManager)
	return testutil.AccessToken(t, testutil.NewTestConfig(), "manager")
}

func coachToken(t *testing.T, db *gorm.DB) string {
	t.Helper()
	testutil.SeedUser(t, db, "coach", model.RoleCoach)
	return testutil.AccessToken(t, testutil.NewTestConfig(), "coach")
}

func TestCreateTeam_RoleGate(t *testing.T) {
	// Given: a manager and a coach
	router, db := setupTestEnvironment(t)
	manager := managerToken(t, db)
	coach := coachToken(t, db)

	body := team.CreateTeamRequest{Name: "번개FC", City: "서울"}

	// When: the coach tries to create a team
	coachRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/teams",
		Body:   body,
		Token:  coach,
	})

	// Then: forbidden
	assert.Equal(t, http.StatusForbidden, coachRecorder.Code)

	// When: the manager does the same
	managerRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/teams",
		Body:   body,
		Token:  manager,
	})

	// Then: created
	assert.Equal(t, http.StatusCreated, managerRecorder.Code)
}

func TestCreateTeam_WithoutToken(t *testing.T) {
	// Given: no Authorization header
	router, _ := setupTestEnvironment(t)

	// When: creating a team anonymously
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/teams",
		Body:   team.CreateTeamRequest{Name: "유령FC"},
	})

	// Then: unauthorized
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestCreateTeam_DuplicateName(t *testing.T) {
	// Given: an existing team
	router, db := setupTestEnvironment(t)
	manager := managerToken(t, db)

	require.NoError(t, db.Create(&model.Team{Name: "중복팀", IsActive: true}).Error)

	// When: creating another team with the same name
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/teams",
		Body:   team.CreateTeamRequest{Name: "중복팀"},
		Token:  manager,
	})

	// Then: conflict
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "TEAM-002", errorResponse.Code)
}

func TestDeleteTeam_BlockedByGame(t *testing.T) {
	// Given: a team referenced by a game as opponent
	router, db := setupTestEnvironment(t)
	manager := managerToken(t, db)

	opponent := &model.Team{Name: "상대팀", IsActive: true}
	require.NoError(t, db.Create(opponent).Error)
	venue := &model.Venue{Name: "시민구장", IsActive: true}
	require.NoError(t, db.Create(venue).Error)
	require.NoError(t, db.Create(&model.Game{
		PlayedAt:       time.Now(),
		VenueID:        venue.ID,
		OpponentTeamID: opponent.ID,
		GameType:       model.GameTypeRegular,
		Status:         model.GameStatusScheduled,
	}).Error)

	// When: deleting the team
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    "/api/v1/teams/" + itoa(opponent.ID),
		Token:  manager,
	})

	// Then: conflict, team still present
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "TEAM-003", errorResponse.Code)

	var count int64
	require.NoError(t, db.Model(&model.Team{}).Where("id = ?", opponent.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDeleteTeam_BlockedByPlayer(t *testing.T) {
	// Given: a team with a rostered player
	router, db := setupTestEnvironment(t)
	manager := managerToken(t, db)

	row := &model.Team{Name: "우리팀", IsOurTeam: true, IsActive: true}
	require.NoError(t, db.Create(row).Error)
	require.NoError(t, db.Create(&model.Player{
		Name:     "선수",
		Role:     model.PlayerRolePlayer,
		TeamID:   &row.ID,
		IsActive: true,
	}).Error)

	// When: deleting the team
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    "/api/v1/teams/" + itoa(row.ID),
		Token:  manager,
	})

	// Then: conflict
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "TEAM-004", errorResponse.Code)
}

func TestDeleteTeam_Unreferenced(t *testing.T) {
	// Given: a team nothing references
	router, db := setupTestEnvironment(t)
	manager := managerToken(t, db)

	row := &model.Team{Name: "해체팀", IsActive: true}
	require.NoError(t, db.Create(row).Error)

	// When: deleting it
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodDelete,
		URL:    "/api/v1/teams/" + itoa(row.ID),
		Token:  manager,
	})

	// Then: gone
	assert.Equal(t, http.StatusOK, recorder.Code)

	var count int64
	require.NoError(t, db.Model(&model.Team{}).Where("id = ?", row.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func itoa(id uint32) string {
	return strconv.FormatUint(uint64(id), 10)
}

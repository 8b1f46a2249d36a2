package authz_test

import (
	"testing"

	"github.com/cimile-club/lineup-api/internal/model"
	"github.com/cimile-club/lineup-api/internal/shared/authz"
	"github.com/stretchr/testify/assert"
)

func TestAllowed_RoleCapabilityTable(t *testing.T) {
	testCases := []struct {
		name     string
		role     model.UserRole
		cap      authz.Capability
		expected bool
	}{
		{"총무는 로스터 관리 가능", model.RoleManager, authz.ManageRoster, true},
		{"총무는 라인업 관리 불가", model.RoleManager, authz.ManageLineup, false},
		{"감독은 라인업 관리 가능", model.RoleCoach, authz.ManageLineup, true},
		{"감독은 로스터 관리 불가", model.RoleCoach, authz.ManageRoster, false},
		{"알 수 없는 역할은 아무 권한 없음", model.UserRole("선수"), authz.ManageRoster, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, authz.Allowed(tc.role, tc.cap))
		})
	}
}

func TestRequiredRole(t *testing.T) {
	assert.Equal(t, model.RoleManager, authz.RequiredRole(authz.ManageRoster))
	assert.Equal(t, model.RoleCoach, authz.RequiredRole(authz.ManageLineup))
}

package authz

import (
	"github.com/cimile-club/lineup-api/internal/model"
)

// Capability is an operation class a role may be granted.
// 역할 문자열 비교 대신 역할 -> 허용 작업 테이블로 권한을 판정한다.
type Capability string

const (
	// ManageRoster covers team/venue/player/game create, update, delete.
	ManageRoster Capability = "MANAGE_ROSTER"
	// ManageLineup covers lineup CUD, slot assignment and attendance.
	ManageLineup Capability = "MANAGE_LINEUP"
)

var roleCapabilities = map[model.UserRole]map[Capability]bool{
	model.RoleManager: {
		ManageRoster: true,
	},
	model.RoleCoach: {
		ManageLineup: true,
	},
}

// Allowed reports whether the role is granted the capability.
func Allowed(role model.UserRole, cap Capability) bool {
	return roleCapabilities[role][cap]
}

// RequiredRole returns the role that holds the capability, for error messages.
func RequiredRole(cap Capability) model.UserRole {
	for role, caps := range roleCapabilities {
		if caps[cap] {
			return role
		}
	}
	return ""
}

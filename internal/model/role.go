package model

// UserRole is the closed set of system roles.
// 저장 값은 기존 시스템과의 호환을 위해 한글 문자열을 유지한다.
type UserRole string

const (
	RoleManager UserRole = "총무" // 팀/경기장/선수/경기 관리
	RoleCoach   UserRole = "감독" // 라인업 관리 전용
)

// Valid reports whether the role is one of the known system roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleManager, RoleCoach:
		return true
	}
	return false
}

// PlayerRole classifies a club member's position within the club,
// independent of the system roles above.
type PlayerRole string

const (
	PlayerRolePlayer        PlayerRole = "PLAYER"
	PlayerRoleManager       PlayerRole = "MANAGER"
	PlayerRoleCoach         PlayerRole = "COACH"
	PlayerRoleManagerOffice PlayerRole = "MANAGER_OFFICE"
	PlayerRolePresident     PlayerRole = "PRESIDENT"
	PlayerRoleAdvisor       PlayerRole = "ADVISOR"
)

func (r PlayerRole) Valid() bool {
	switch r {
	case PlayerRolePlayer, PlayerRoleManager, PlayerRoleCoach,
		PlayerRoleManagerOffice, PlayerRolePresident, PlayerRoleAdvisor:
		return true
	}
	return false
}

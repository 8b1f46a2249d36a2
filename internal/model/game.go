package model

import "time"

// GameType classifies a game.
type GameType string

const (
	GameTypeRegular  GameType = "REGULAR"
	GameTypePlayoff  GameType = "PLAYOFF"
	GameTypeFriendly GameType = "FRIENDLY"
)

func (t GameType) Valid() bool {
	switch t {
	case GameTypeRegular, GameTypePlayoff, GameTypeFriendly:
		return true
	}
	return false
}

// GameStatus is the lifecycle state of a game.
type GameStatus string

const (
	GameStatusScheduled  GameStatus = "SCHEDULED"
	GameStatusInProgress GameStatus = "IN_PROGRESS"
	GameStatusCompleted  GameStatus = "COMPLETED"
	GameStatusCancelled  GameStatus = "CANCELLED"
)

func (s GameStatus) Valid() bool {
	switch s {
	case GameStatusScheduled, GameStatusInProgress, GameStatusCompleted, GameStatusCancelled:
		return true
	}
	return false
}

// Game represents a scheduled game against an opponent team.
// 날짜와 시간은 하나의 시각(PlayedAt)으로 합쳐 저장한다.
type Game struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	PlayedAt       time.Time  `gorm:"column:played_at;not null" json:"playedAt"`
	VenueID        uint32     `gorm:"column:venue_id;not null" json:"venueId"`
	OpponentTeamID uint32     `gorm:"column:opponent_team_id;not null" json:"opponentTeamId"`
	IsHome         bool       `gorm:"column:is_home;not null;default:true" json:"isHome"`
	GameType       GameType   `gorm:"column:game_type;size:20;not null;default:REGULAR" json:"gameType"`
	Status         GameStatus `gorm:"column:status;size:20;not null;default:SCHEDULED" json:"status"`
	Notes          string     `gorm:"column:notes" json:"notes,omitempty"`

	BaseEntity
}

func (*Game) TableName() string {
	return "games"
}

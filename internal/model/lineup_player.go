package model

// PositionPitcher is the position code identifying the pitcher slot.
const PositionPitcher = "P"

// BattingOrderPitcher is the reserved batting-order value for the pitcher.
// 타순 1~9는 타자, 0은 투수 전용이다.
const BattingOrderPitcher = 0

// LineupPlayer is one slot assignment inside a lineup.
type LineupPlayer struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	LineupID uint32 `gorm:"column:lineup_id;not null;index:idx_lineup_player_lineup" json:"lineupId"`
	PlayerID uint32 `gorm:"column:player_id;not null" json:"playerId"`

	// 포지션 코드 ("P","C","1B".."RF","DH"). 미지정은 NULL로 저장하며 빈 문자열은 쓰지 않는다.
	Position     *string `gorm:"column:position;size:20" json:"position,omitempty"`
	BattingOrder int     `gorm:"column:batting_order;not null;check:batting_order >= 0 AND batting_order <= 9" json:"battingOrder"`
	IsStarter    bool    `gorm:"column:is_starter;not null;default:true" json:"isStarter"`

	BaseEntity
}

func (*LineupPlayer) TableName() string {
	return "lineup_players"
}

// IsPitcher reports whether this row occupies the pitcher slot.
// 투수 여부는 타순이 아니라 포지션으로 판별한다.
func (lp *LineupPlayer) IsPitcher() bool {
	return lp.Position != nil && *lp.Position == PositionPitcher
}

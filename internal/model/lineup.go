package model

// Lineup is a named batting-order assignment for one game.
// 한 경기당 여러 라인업(초안, 기본 라인업 등)이 존재할 수 있다.
type Lineup struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	GameID    uint32 `gorm:"column:game_id;not null" json:"gameId"`
	Name      string `gorm:"column:name;size:200;not null" json:"name"`
	IsDefault bool   `gorm:"column:is_default;not null;default:false" json:"isDefault"`

	// 출석 데이터를 JSON으로 저장 (player_id -> 출석 여부)
	AttendanceData *string `gorm:"column:attendance_data" json:"-"`

	BaseEntity
}

func (*Lineup) TableName() string {
	return "lineups"
}

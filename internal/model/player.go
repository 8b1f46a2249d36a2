package model

// Player represents a club member on the roster.
type Player struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	Name   string `gorm:"column:name;size:100;not null" json:"name"`
	Number *int   `gorm:"column:number;uniqueIndex:idx_player_number" json:"number,omitempty"` // 등번호 (선택, unique)
	Phone  string `gorm:"column:phone;size:20" json:"phone,omitempty"`
	Email  string `gorm:"column:email;size:100" json:"email,omitempty"`

	Role   PlayerRole `gorm:"column:role;size:20;not null;default:PLAYER" json:"role"`
	TeamID *uint32    `gorm:"column:team_id" json:"teamId,omitempty"`

	PositionPreference string `gorm:"column:position_preference;size:20" json:"positionPreference,omitempty"` // 선호 포지션 (참고용)
	PhotoURL           string `gorm:"column:photo_url" json:"photoUrl,omitempty"`
	Notes              string `gorm:"column:notes" json:"notes,omitempty"`

	IsActive bool `gorm:"column:is_active;not null;default:true" json:"isActive"`

	BaseEntity
}

func (*Player) TableName() string {
	return "players"
}

package model

// Team represents our club or an opponent team.
type Team struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	Name      string `gorm:"column:name;size:100;not null;uniqueIndex:idx_team_name" json:"name"`
	City      string `gorm:"column:city;size:100" json:"city"`
	League    string `gorm:"column:league;size:100" json:"league"`
	IsOurTeam bool   `gorm:"column:is_our_team;not null;default:false" json:"isOurTeam"` // 우리 팀 여부
	IsActive  bool   `gorm:"column:is_active;not null;default:true" json:"isActive"`

	BaseEntity
}

func (*Team) TableName() string {
	return "teams"
}

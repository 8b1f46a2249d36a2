package model

// Venue represents a ballpark where games take place.
type Venue struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	Name        string `gorm:"column:name;size:200;not null;uniqueIndex:idx_venue_name" json:"name"`
	Location    string `gorm:"column:location;size:300" json:"location"`
	Capacity    *int   `gorm:"column:capacity" json:"capacity,omitempty"`
	SurfaceType string `gorm:"column:surface_type;size:50" json:"surfaceType"` // 잔디/흙/인조잔디
	IsIndoor    bool   `gorm:"column:is_indoor;not null;default:false" json:"isIndoor"`
	IsActive    bool   `gorm:"column:is_active;not null;default:true" json:"isActive"`

	BaseEntity
}

func (*Venue) TableName() string {
	return "venues"
}

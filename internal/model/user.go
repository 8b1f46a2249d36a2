package model

// User represents a system account used only for authentication/authorization.
// 선수(Player)와는 별개의 엔티티로, 서로 연결되지 않는다.
type User struct {
	ID uint32 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`

	Username     string   `gorm:"column:username;size:50;not null;uniqueIndex:idx_user_username" json:"username"`
	PasswordHash string   `gorm:"column:password_hash;size:60;not null" json:"-"`
	Role         UserRole `gorm:"column:role;size:20;not null" json:"role"`
	IsActive     bool     `gorm:"column:is_active;not null;default:true" json:"isActive"`

	BaseEntity
}

func (*User) TableName() string {
	return "users"
}

// NewUser creates a new User. passwordHash must already be bcrypt-hashed.
func NewUser(username, passwordHash string, role UserRole) *User {
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
	}
}

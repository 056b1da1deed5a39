package models

// User is a registered author. Password is stored as given.
type User struct {
	ID       int    `gorm:"primaryKey;autoIncrement" bson:"_id"`
	UserName string `gorm:"size:255;not null;uniqueIndex" bson:"userName"`
	Email    string `gorm:"size:255;not null;uniqueIndex" bson:"email"`
	Password string `gorm:"size:255;not null" bson:"password"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}

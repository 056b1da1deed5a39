package models

import "time"

// Comment is a short remark by a user on an article
type Comment struct {
	ID         int       `gorm:"primaryKey;autoIncrement" bson:"_id"`
	Content    string    `gorm:"size:200;not null" bson:"content"`
	CreateDate time.Time `gorm:"not null" bson:"createDate"`
	UserID     int       `gorm:"not null;index" bson:"userId"`
	ArticleID  int       `gorm:"not null;index" bson:"articleId"`
}

// TableName overrides the table name for Comment
func (Comment) TableName() string {
	return "comments"
}

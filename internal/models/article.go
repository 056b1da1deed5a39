package models

import "time"

// ArticleCategory groups articles
type ArticleCategory struct {
	ID           int    `gorm:"primaryKey;autoIncrement" bson:"_id"`
	CategoryName string `gorm:"size:255;not null" bson:"categoryName"`
}

// Article is a titled piece of content owned by a user and filed under a category.
// UserID and CategoryID are plain columns: deletes never cascade.
type Article struct {
	ID          int       `gorm:"primaryKey;autoIncrement" bson:"_id"`
	Title       string    `gorm:"size:255;not null;uniqueIndex" bson:"title"`
	Content     string    `gorm:"size:2000;not null" bson:"content"`
	CreatedDate time.Time `gorm:"not null" bson:"createdDate"`
	CategoryID  int       `gorm:"not null;index" bson:"categoryId"`
	UserID      int       `gorm:"not null;index" bson:"userId"`
}

// TableName overrides the table name for ArticleCategory
func (ArticleCategory) TableName() string {
	return "article_categories"
}

// TableName overrides the table name for Article
func (Article) TableName() string {
	return "articles"
}

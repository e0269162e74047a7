package models

type Like struct {
	Base
	Slug      string  `json:"slug" gorm:"type:text;not null"`
	UserID    string  `json:"userId" gorm:"type:text;not null"`
	UserName  string  `json:"userName" gorm:"type:text;not null"`
	UserImage *string `json:"userImage" gorm:"type:text"`
}

func (Like) TableName() string { return "blog_likes" }

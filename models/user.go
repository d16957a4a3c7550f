package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username string `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Email    string `gorm:"size:128;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:128;not null" json:"-"`
	Bio      string `gorm:"size:512" json:"bio"`
	Image    string `gorm:"size:512" json:"image"`
}

package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name       string  `json:"name" gorm:"not null"`
	Email      string  `json:"email" gorm:"uniqueIndex;not null"`
	Password   string  `json:"-"`
	Mobile     *string `json:"mobile"`
	RollNumber *string `json:"rollNumber"`
	Branch     *string `json:"branch"`
	Photo      *string `json:"photo"`
	GoogleID   *string `json:"-" gorm:"uniqueIndex"`
}

package entity

import (
	"gorm.io/gorm"
)

type Cafe struct {
	gorm.Model
	// receipts are matched against this exact name
	Name           string `gorm:"size:191;uniqueIndex;not null" json:"name"`
	PhoneNumber    string `json:"phoneNumber"`
	LicenseeNumber string `json:"licenseeNumber"`
	RunningTime    string `json:"runningTime"`
	Location       string `json:"location"`
	ImageURL       string `json:"imageUrl"`

	Events []Event `json:"-"`
	Menus  []Menu  `json:"-"`
	Stamps []Stamp `json:"-"`
}

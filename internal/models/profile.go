package models

// Profile is the singleton landing-page identity.
type Profile struct {
	Document     `bson:",inline"`
	Name         string `gorm:"size:255;not null" json:"name" bson:"name"`
	Title        string `gorm:"size:255;not null" json:"title" bson:"title"`
	Tagline      string `gorm:"size:255;not null" json:"tagline" bson:"tagline"`
	Intro        string `gorm:"type:text;not null" json:"intro" bson:"intro"`
	ProfileImage string `gorm:"type:text;not null" json:"profileImage" bson:"profileImage"`
}

func (Profile) TableName() string {
	return CollectionProfiles
}

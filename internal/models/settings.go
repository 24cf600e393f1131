package models

// Defaults applied when settings are created without these fields.
const (
	DefaultLocation     = "Available for remote work worldwide"
	DefaultResponseTime = "Usually within 24 hours"
)

// Settings is the singleton holding contact links and availability text.
type Settings struct {
	Document     `bson:",inline"`
	Email        string `gorm:"size:255;not null" json:"email" bson:"email"`
	LinkedIn     string `gorm:"type:text;not null" json:"linkedin" bson:"linkedin"`
	GitHub       string `gorm:"type:text;not null" json:"github" bson:"github"`
	LeetCode     string `gorm:"type:text;not null" json:"leetcode" bson:"leetcode"`
	Location     string `gorm:"type:text;not null" json:"location" bson:"location"`
	ResponseTime string `gorm:"type:text;not null" json:"responseTime" bson:"responseTime"`
}

func (Settings) TableName() string {
	return CollectionSettings
}

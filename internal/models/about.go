package models

// Highlight is a nested entry of the about page. Highlights are not
// addressable on their own.
type Highlight struct {
	Title       string `json:"title" bson:"title" yaml:"title" binding:"required"`
	Description string `json:"description" bson:"description" yaml:"description" binding:"required"`
	Icon        string `json:"icon" bson:"icon" yaml:"icon" binding:"required"`
}

// About is the singleton narrative shown on the about page.
type About struct {
	Document   `bson:",inline"`
	Summary    string              `gorm:"type:text;not null" json:"summary" bson:"summary"`
	Experience string              `gorm:"type:text;not null" json:"experience" bson:"experience"`
	Learning   string              `gorm:"type:text;not null" json:"learning" bson:"learning"`
	Passion    string              `gorm:"type:text;not null" json:"passion" bson:"passion"`
	Highlights JSONList[Highlight] `gorm:"type:jsonb;not null" json:"highlights" bson:"highlights"`
}

func (About) TableName() string {
	return CollectionAbout
}

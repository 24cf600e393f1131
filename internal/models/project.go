package models

// Project is a portfolio case study. Order defines the display sequence and
// is not required to be unique.
type Project struct {
	Document    `bson:",inline"`
	Title       string           `gorm:"size:255;not null" json:"title" bson:"title"`
	Description string           `gorm:"type:text;not null" json:"description" bson:"description"`
	Tools       JSONList[string] `gorm:"type:jsonb;not null" json:"tools" bson:"tools"`
	Problem     string           `gorm:"type:text;not null" json:"problem" bson:"problem"`
	Solution    string           `gorm:"type:text;not null" json:"solution" bson:"solution"`
	Impact      string           `gorm:"type:text;not null" json:"impact" bson:"impact"`
	Visual      string           `gorm:"size:255;not null" json:"visual" bson:"visual"`
	GithubURL   *string          `gorm:"type:text" json:"githubUrl" bson:"githubUrl"`
	LiveURL     *string          `gorm:"type:text" json:"liveUrl" bson:"liveUrl"`
	Featured    bool             `gorm:"not null;index" json:"featured" bson:"featured"`
	Order       int              `gorm:"not null;index" json:"order" bson:"order"`
}

func (Project) TableName() string {
	return CollectionProjects
}

package models

// Skill levels
const (
	SkillLevelBeginner     = "beginner"
	SkillLevelIntermediate = "intermediate"
	SkillLevelAdvanced     = "advanced"
	SkillLevelLearning     = "learning"
)

// Skill is a single entry on the skills board.
type Skill struct {
	Document `bson:",inline"`
	Name     string `gorm:"size:255;not null" json:"name" bson:"name"`
	Level    string `gorm:"size:20;not null" json:"level" bson:"level"`
	Icon     string `gorm:"size:64;not null" json:"icon" bson:"icon"`
	Progress int    `gorm:"not null" json:"progress" bson:"progress"`
	Order    int    `gorm:"not null;index" json:"order" bson:"order"`
}

func (Skill) TableName() string {
	return CollectionSkills
}

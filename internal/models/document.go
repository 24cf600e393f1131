package models

import "time"

// Collection names. They double as table names for the gorm backends.
const (
	CollectionProfiles = "profiles"
	CollectionProjects = "projects"
	CollectionSkills   = "skills"
	CollectionAbout    = "about"
	CollectionContacts = "contacts"
	CollectionSettings = "settings"
)

// Document holds the identity and timestamps every stored document carries.
type Document struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id" bson:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime:false;index" json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updatedAt" bson:"updatedAt"`
}

// Doc gives generic code access to the embedded document header.
func (d *Document) Doc() *Document {
	return d
}

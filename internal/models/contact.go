package models

// Contact statuses
const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

// Contact is a message submitted through the contact form. Only Status
// changes after creation.
type Contact struct {
	Document `bson:",inline"`
	Name     string `gorm:"size:255;not null" json:"name" bson:"name"`
	Email    string `gorm:"size:255;not null" json:"email" bson:"email"`
	Subject  string `gorm:"size:255;not null" json:"subject" bson:"subject"`
	Message  string `gorm:"type:text;not null" json:"message" bson:"message"`
	Status   string `gorm:"size:20;not null;index" json:"status" bson:"status"`
}

func (Contact) TableName() string {
	return CollectionContacts
}

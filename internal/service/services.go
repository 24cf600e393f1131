// Package service implements the CRUD contract shared by every portfolio
// resource on top of a store.Backend.
package service

import (
	"github.com/pageza/portfolio/backend/internal/models"
	"github.com/pageza/portfolio/backend/internal/store"
)

// Services bundles one service per resource kind.
type Services struct {
	Profile  SingletonService[models.Profile]
	Projects CollectionService[models.Project]
	Skills   CollectionService[models.Skill]
	About    SingletonService[models.About]
	Contacts CollectionService[models.Contact]
	Settings SingletonService[models.Settings]
}

var (
	byOrder         = store.SortOrder{Key: "order"}
	byCreated       = store.SortOrder{Key: "createdAt"}
	byCreatedLatest = store.SortOrder{Key: "createdAt", Descending: true}
)

// NewServices opens every collection on b.
func NewServices(b *store.Backend, opts ...Option) (*Services, error) {
	profiles, err := store.Open[models.Profile](b, models.CollectionProfiles)
	if err != nil {
		return nil, err
	}
	projects, err := store.Open[models.Project](b, models.CollectionProjects)
	if err != nil {
		return nil, err
	}
	skills, err := store.Open[models.Skill](b, models.CollectionSkills)
	if err != nil {
		return nil, err
	}
	about, err := store.Open[models.About](b, models.CollectionAbout)
	if err != nil {
		return nil, err
	}
	contacts, err := store.Open[models.Contact](b, models.CollectionContacts)
	if err != nil {
		return nil, err
	}
	settings, err := store.Open[models.Settings](b, models.CollectionSettings)
	if err != nil {
		return nil, err
	}

	return &Services{
		Profile:  NewSingleton(NewResource[models.Profile]("Profile", profiles, byCreated, opts...)),
		Projects: NewResource[models.Project]("Project", projects, byOrder, opts...),
		Skills:   NewResource[models.Skill]("Skill", skills, byOrder, opts...),
		About:    NewSingleton(NewResource[models.About]("About information", about, byCreated, opts...)),
		Contacts: NewResource[models.Contact]("Contact", contacts, byCreatedLatest, opts...),
		Settings: NewSingleton(NewResource[models.Settings]("Settings", settings, byCreated, opts...)),
	}, nil
}

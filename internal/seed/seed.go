// Package seed populates an empty store with the default portfolio content.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/gin-gonic/gin/binding"
	"github.com/pageza/portfolio/backend/internal/service"
	"github.com/pageza/portfolio/backend/internal/types"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// Set is the content inserted into an empty store.
type Set struct {
	Profile  types.CreateProfileRequest   `yaml:"profile"`
	Projects []types.CreateProjectRequest `yaml:"projects" binding:"dive"`
	Skills   []types.CreateSkillRequest   `yaml:"skills" binding:"dive"`
	About    types.CreateAboutRequest     `yaml:"about"`
	Settings types.CreateSettingsRequest  `yaml:"settings"`
}

// Load reads a seed set from path, or the built-in set when path is empty.
func Load(path string) (*Set, error) {
	data := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file: %w", err)
		}
		data = b
	}
	return Parse(data)
}

// Parse decodes and validates a YAML seed set. Unknown keys are rejected.
func Parse(data []byte) (*Set, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var set Set
	if err := dec.Decode(&set); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	if err := binding.Validator.ValidateStruct(&set); err != nil {
		return nil, fmt.Errorf("invalid seed data: %w", err)
	}
	return &set, nil
}

// Seeder inserts a Set when the store holds no profile.
type Seeder struct {
	svc *service.Services
	set *Set
}

func NewSeeder(svc *service.Services, set *Set) *Seeder {
	return &Seeder{svc: svc, set: set}
}

// Seed inserts the full set if and only if no profile exists. The other
// collections are not inspected, so a store with a profile is never
// touched even when its other collections are empty. It reports whether
// anything was written. Documents inserted before a failure stay in place.
func (s *Seeder) Seed(ctx context.Context) (bool, error) {
	exists, err := s.svc.Profile.Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check for existing profile: %w", err)
	}
	if exists {
		return false, nil
	}

	if _, err := s.svc.Profile.Create(ctx, s.set.Profile.Profile()); err != nil {
		return true, fmt.Errorf("failed to seed profile: %w", err)
	}
	for i := range s.set.Projects {
		if _, err := s.svc.Projects.Create(ctx, s.set.Projects[i].Project()); err != nil {
			return true, fmt.Errorf("failed to seed project %q: %w", s.set.Projects[i].Title, err)
		}
	}
	for i := range s.set.Skills {
		if _, err := s.svc.Skills.Create(ctx, s.set.Skills[i].Skill()); err != nil {
			return true, fmt.Errorf("failed to seed skill %q: %w", s.set.Skills[i].Name, err)
		}
	}
	if _, err := s.svc.About.Create(ctx, s.set.About.About()); err != nil {
		return true, fmt.Errorf("failed to seed about: %w", err)
	}
	if _, err := s.svc.Settings.Create(ctx, s.set.Settings.Settings()); err != nil {
		return true, fmt.Errorf("failed to seed settings: %w", err)
	}
	return true, nil
}

// Run seeds the store, logging the outcome. Errors are logged and dropped.
func (s *Seeder) Run(ctx context.Context) {
	seeded, err := s.Seed(ctx)
	switch {
	case err != nil:
		logrus.WithError(err).Error("Error seeding database")
	case seeded:
		logrus.WithFields(logrus.Fields{
			"projects": len(s.set.Projects),
			"skills":   len(s.set.Skills),
		}).Info("Database seeded successfully")
	default:
		logrus.Debug("Profile exists, skipping seed")
	}
}

package types

import "github.com/pageza/portfolio/backend/internal/models"

func (r *CreateProfileRequest) Profile() *models.Profile {
	return &models.Profile{
		Name:         r.Name,
		Title:        r.Title,
		Tagline:      r.Tagline,
		Intro:        r.Intro,
		ProfileImage: r.ProfileImage,
	}
}

func (r *CreateProjectRequest) Project() *models.Project {
	tools := models.JSONList[string]{}
	tools = append(tools, r.Tools...)
	return &models.Project{
		Title:       r.Title,
		Description: r.Description,
		Tools:       tools,
		Problem:     r.Problem,
		Solution:    r.Solution,
		Impact:      r.Impact,
		Visual:      r.Visual,
		GithubURL:   r.GithubURL,
		LiveURL:     r.LiveURL,
		Featured:    r.Featured,
		Order:       r.Order,
	}
}

func (r *CreateSkillRequest) Skill() *models.Skill {
	s := &models.Skill{
		Name:  r.Name,
		Level: r.Level,
		Icon:  r.Icon,
		Order: r.Order,
	}
	if r.Progress != nil {
		s.Progress = *r.Progress
	}
	return s
}

func (r *CreateAboutRequest) About() *models.About {
	highlights := models.JSONList[models.Highlight]{}
	highlights = append(highlights, r.Highlights...)
	return &models.About{
		Summary:    r.Summary,
		Experience: r.Experience,
		Learning:   r.Learning,
		Passion:    r.Passion,
		Highlights: highlights,
	}
}

// Contact builds a new contact message. Every message starts as new.
func (r *CreateContactRequest) Contact() *models.Contact {
	return &models.Contact{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
		Status:  models.ContactStatusNew,
	}
}

// Settings builds the settings document, filling in the default location
// and response time when they are blank.
func (r *CreateSettingsRequest) Settings() *models.Settings {
	s := &models.Settings{
		Email:        r.Email,
		LinkedIn:     r.LinkedIn,
		GitHub:       r.GitHub,
		LeetCode:     r.LeetCode,
		Location:     r.Location,
		ResponseTime: r.ResponseTime,
	}
	if s.Location == "" {
		s.Location = models.DefaultLocation
	}
	if s.ResponseTime == "" {
		s.ResponseTime = models.DefaultResponseTime
	}
	return s
}

package types

import "github.com/pageza/portfolio/backend/internal/models"

// CreateProfileRequest represents the request body for creating the profile
type CreateProfileRequest struct {
	Name         string `json:"name" yaml:"name" binding:"required"`
	Title        string `json:"title" yaml:"title" binding:"required"`
	Tagline      string `json:"tagline" yaml:"tagline" binding:"required"`
	Intro        string `json:"intro" yaml:"intro" binding:"required"`
	ProfileImage string `json:"profileImage" yaml:"profileImage" binding:"required"`
}

// UpdateProfileRequest represents the request body for updating the profile
type UpdateProfileRequest struct {
	Name         *string `json:"name"`
	Title        *string `json:"title"`
	Tagline      *string `json:"tagline"`
	Intro        *string `json:"intro"`
	ProfileImage *string `json:"profileImage"`
}

// CreateProjectRequest represents the request body for creating a project
type CreateProjectRequest struct {
	Title       string   `json:"title" yaml:"title" binding:"required"`
	Description string   `json:"description" yaml:"description" binding:"required"`
	Tools       []string `json:"tools" yaml:"tools" binding:"required"`
	Problem     string   `json:"problem" yaml:"problem" binding:"required"`
	Solution    string   `json:"solution" yaml:"solution" binding:"required"`
	Impact      string   `json:"impact" yaml:"impact" binding:"required"`
	Visual      string   `json:"visual" yaml:"visual" binding:"required"`
	GithubURL   *string  `json:"githubUrl" yaml:"githubUrl"`
	LiveURL     *string  `json:"liveUrl" yaml:"liveUrl"`
	Featured    bool     `json:"featured" yaml:"featured"`
	Order       int      `json:"order" yaml:"order"`
}

// UpdateProjectRequest represents the request body for updating a project.
// The external links may be cleared with an explicit null.
type UpdateProjectRequest struct {
	Title       *string                 `json:"title"`
	Description *string                 `json:"description"`
	Tools       models.JSONList[string] `json:"tools"`
	Problem     *string                 `json:"problem"`
	Solution    *string                 `json:"solution"`
	Impact      *string                 `json:"impact"`
	Visual      *string                 `json:"visual"`
	GithubURL   *string                 `json:"githubUrl" patch:"nullable"`
	LiveURL     *string                 `json:"liveUrl" patch:"nullable"`
	Featured    *bool                   `json:"featured"`
	Order       *int                    `json:"order"`
}

// CreateSkillRequest represents the request body for creating a skill
type CreateSkillRequest struct {
	Name     string `json:"name" yaml:"name" binding:"required"`
	Level    string `json:"level" yaml:"level" binding:"required,oneof=beginner intermediate advanced learning"`
	Icon     string `json:"icon" yaml:"icon" binding:"required"`
	Progress *int   `json:"progress" yaml:"progress" binding:"required,min=0,max=100"`
	Order    int    `json:"order" yaml:"order"`
}

// UpdateSkillRequest represents the request body for updating a skill
type UpdateSkillRequest struct {
	Name     *string `json:"name"`
	Level    *string `json:"level" binding:"omitempty,oneof=beginner intermediate advanced learning"`
	Icon     *string `json:"icon"`
	Progress *int    `json:"progress" binding:"omitempty,min=0,max=100"`
	Order    *int    `json:"order"`
}

// CreateAboutRequest represents the request body for creating the about page
type CreateAboutRequest struct {
	Summary    string             `json:"summary" yaml:"summary" binding:"required"`
	Experience string             `json:"experience" yaml:"experience" binding:"required"`
	Learning   string             `json:"learning" yaml:"learning" binding:"required"`
	Passion    string             `json:"passion" yaml:"passion" binding:"required"`
	Highlights []models.Highlight `json:"highlights" yaml:"highlights" binding:"omitempty,dive"`
}

// UpdateAboutRequest represents the request body for updating the about page
type UpdateAboutRequest struct {
	Summary    *string                           `json:"summary"`
	Experience *string                           `json:"experience"`
	Learning   *string                           `json:"learning"`
	Passion    *string                           `json:"passion"`
	Highlights models.JSONList[models.Highlight] `json:"highlights" binding:"omitempty,dive"`
}

// CreateContactRequest represents a contact form submission
type CreateContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// UpdateContactRequest changes the status of a contact message
type UpdateContactRequest struct {
	Status *string `json:"status" binding:"required,oneof=new read replied"`
}

// CreateSettingsRequest represents the request body for creating settings
type CreateSettingsRequest struct {
	Email        string `json:"email" yaml:"email" binding:"required,email"`
	LinkedIn     string `json:"linkedin" yaml:"linkedin" binding:"required"`
	GitHub       string `json:"github" yaml:"github" binding:"required"`
	LeetCode     string `json:"leetcode" yaml:"leetcode" binding:"required"`
	Location     string `json:"location" yaml:"location"`
	ResponseTime string `json:"responseTime" yaml:"responseTime"`
}

// UpdateSettingsRequest represents the request body for updating settings
type UpdateSettingsRequest struct {
	Email        *string `json:"email" binding:"omitempty,email"`
	LinkedIn     *string `json:"linkedin"`
	GitHub       *string `json:"github"`
	LeetCode     *string `json:"leetcode"`
	Location     *string `json:"location"`
	ResponseTime *string `json:"responseTime"`
}

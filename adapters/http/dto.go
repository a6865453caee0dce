package http

import (
	"time"

	"github.com/studenthub/profile-api/internal/application/usecase/profile"
	educationDomain "github.com/studenthub/profile-api/internal/domain/education"
	experienceDomain "github.com/studenthub/profile-api/internal/domain/experience"
	profileDomain "github.com/studenthub/profile-api/internal/domain/profile"
	projectDomain "github.com/studenthub/profile-api/internal/domain/project"
)

const dtoDateLayout = "2006-01-02"

// Form requests. Field names match the submitted form exactly; multi-value
// fields (skills, imageUrls) arrive as one comma-separated string.

type ProfileFormRequest struct {
	Name         string `form:"name" binding:"required"`
	Profession   string `form:"profession"`
	Batch        string `form:"batch"`
	About        string `form:"about"`
	ProfileImage string `form:"profileImage"`
	Phone        string `form:"phone"`
	LinkedIn     string `form:"linkedin"`
	Skills       string `form:"skills"`
}

type EducationFormRequest struct {
	Institution string `form:"institution" binding:"required"`
	Degree      string `form:"degree"`
	Field       string `form:"field"`
	StartDate   string `form:"startDate" binding:"required"`
	EndDate     string `form:"endDate"`
	Description string `form:"description"`
}

type ExperienceFormRequest struct {
	Company     string `form:"company" binding:"required"`
	Position    string `form:"position"`
	Location    string `form:"location"`
	StartDate   string `form:"startDate" binding:"required"`
	EndDate     string `form:"endDate"`
	Description string `form:"description"`
}

type ProjectFormRequest struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description"`
	GithubLink  string `form:"githubLink"`
	LiveLink    string `form:"liveLink"`
	ImageURLs   string `form:"imageUrls"`
}

type DeleteImageRequest struct {
	PublicID string `json:"publicId" binding:"required"`
}

// Response DTOs.

type ProfileDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Profession   string    `json:"profession"`
	Batch        string    `json:"batch"`
	About        string    `json:"about"`
	ProfileImage string    `json:"profile_image"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	LinkedIn     string    `json:"linkedin"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type SkillDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Proficiency *string `json:"proficiency,omitempty"`
}

type EducationDTO struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

type ExperienceDTO struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

type ProjectDTO struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	GithubLink  *string  `json:"github_link"`
	LiveLink    *string  `json:"live_link"`
	ImageURLs   []string `json:"image_urls"`
}

type ProfileViewDTO struct {
	Profile    ProfileDTO      `json:"profile"`
	Skills     []SkillDTO      `json:"skills"`
	Education  []EducationDTO  `json:"education"`
	Experience []ExperienceDTO `json:"experience"`
	Projects   []ProjectDTO    `json:"projects"`
}

// formatEndDate renders a nil end date as "Present" (ongoing entry).
func formatEndDate(end *time.Time) string {
	if end == nil {
		return "Present"
	}
	return end.Format(dtoDateLayout)
}

func ToProfileDTO(p *profileDomain.Profile) ProfileDTO {
	return ProfileDTO{
		ID:           p.ID.String(),
		Name:         p.Name,
		Profession:   p.Profession,
		Batch:        p.Batch,
		About:        p.About,
		ProfileImage: p.ProfileImage,
		Phone:        p.Phone,
		Email:        p.Email,
		LinkedIn:     p.LinkedIn,
		UpdatedAt:    p.UpdatedAt,
	}
}

func ToEducationDTO(e *educationDomain.Education) EducationDTO {
	return EducationDTO{
		ID:          e.ID.String(),
		Institution: e.Institution,
		Degree:      e.Degree,
		Field:       e.Field,
		StartDate:   e.StartDate.Format(dtoDateLayout),
		EndDate:     formatEndDate(e.EndDate),
		Description: e.Description,
	}
}

func ToExperienceDTO(e *experienceDomain.Experience) ExperienceDTO {
	return ExperienceDTO{
		ID:          e.ID.String(),
		Company:     e.Company,
		Position:    e.Position,
		Location:    e.Location,
		StartDate:   e.StartDate.Format(dtoDateLayout),
		EndDate:     formatEndDate(e.EndDate),
		Description: e.Description,
	}
}

func ToProjectDTO(p *projectDomain.Project) ProjectDTO {
	urls := make([]string, len(p.Images))
	for i, img := range p.Images {
		urls[i] = img.URL
	}
	return ProjectDTO{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		GithubLink:  p.GithubLink,
		LiveLink:    p.LiveLink,
		ImageURLs:   urls,
	}
}

func ToProfileViewDTO(view *profile.ProfileView) ProfileViewDTO {
	dto := ProfileViewDTO{
		Profile:    ToProfileDTO(view.Profile),
		Skills:     make([]SkillDTO, len(view.Skills)),
		Education:  make([]EducationDTO, len(view.Education)),
		Experience: make([]ExperienceDTO, len(view.Experience)),
		Projects:   make([]ProjectDTO, len(view.Projects)),
	}
	for i, s := range view.Skills {
		dto.Skills[i] = SkillDTO{ID: s.ID.String(), Name: s.Name, Proficiency: s.Proficiency}
	}
	for i, e := range view.Education {
		dto.Education[i] = ToEducationDTO(e)
	}
	for i, e := range view.Experience {
		dto.Experience[i] = ToExperienceDTO(e)
	}
	for i, p := range view.Projects {
		dto.Projects[i] = ToProjectDTO(p)
	}
	return dto
}

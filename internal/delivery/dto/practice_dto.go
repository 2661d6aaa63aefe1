package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type SetupPracticeRequest struct {
	Name             string                 `json:"practice_name" validate:"required,min=2,max=255"`
	PhoneNumber      string                 `json:"phone_number" validate:"omitempty,max=50"`
	Website          string                 `json:"practice_website" validate:"omitempty,url,max=255"`
	Accreditation    string                 `json:"practice_accreditation" validate:"omitempty,max=255"`
	About            string                 `json:"about_practice" validate:"omitempty"`
	SocialMediaLinks map[string]interface{} `json:"social_media_links"`
	Facilities       map[string]interface{} `json:"facilities"`
	OpeningHours     map[string]interface{} `json:"opening_hours"`
	Location         map[string]interface{} `json:"practice_location"`
	WheelchairAccess *bool                  `json:"wheel_chair_access"`
}

// UpdatePracticeRequest is an allow-list: nil fields are left untouched and
// fields not declared here cannot be changed through the API.
type UpdatePracticeRequest struct {
	Name             *string                `json:"practice_name" validate:"omitempty,min=2,max=255"`
	PhoneNumber      *string                `json:"phone_number" validate:"omitempty,max=50"`
	Website          *string                `json:"practice_website" validate:"omitempty,url,max=255"`
	Accreditation    *string                `json:"practice_accreditation" validate:"omitempty,max=255"`
	About            *string                `json:"about_practice"`
	SocialMediaLinks map[string]interface{} `json:"social_media_links"`
	Facilities       map[string]interface{} `json:"facilities"`
	OpeningHours     map[string]interface{} `json:"opening_hours"`
	Location         map[string]interface{} `json:"practice_location"`
	WheelchairAccess *bool                  `json:"wheel_chair_access"`
}

// Response DTOs

type PracticeResponse struct {
	ID               uuid.UUID              `json:"practice_uuid"`
	OwnerID          uuid.UUID              `json:"owner_uuid"`
	Name             string                 `json:"practice_name"`
	PhoneNumber      string                 `json:"phone_number,omitempty"`
	Website          string                 `json:"practice_website,omitempty"`
	Accreditation    string                 `json:"practice_accreditation,omitempty"`
	About            string                 `json:"about_practice,omitempty"`
	SocialMediaLinks map[string]interface{} `json:"social_media_links,omitempty"`
	Facilities       map[string]interface{} `json:"facilities,omitempty"`
	OpeningHours     map[string]interface{} `json:"opening_hours,omitempty"`
	Location         map[string]interface{} `json:"practice_location,omitempty"`
	WheelchairAccess *bool                  `json:"wheel_chair_access,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

type PracticeListResponse struct {
	Practices []PracticeResponse `json:"practices"`
	Total     int                `json:"total"`
}

// PracticeDetailsResponse is what the owner sees: their account plus the
// practice, which is nil until setup has been completed.
type PracticeDetailsResponse struct {
	User     PracticeUserResponse `json:"user"`
	Practice *PracticeResponse    `json:"practice"`
}

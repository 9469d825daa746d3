package leads

import (
	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type CreateLeadBody struct {
	Name                string `json:"name"`
	Platform            string `json:"platform"`
	Industry            string `json:"industry"`
	SocialMediaUsername string `json:"social_media_username"`
	PipelineID          string `json:"pipeline_id"`
	PhaseID             string `json:"phase_id"`
}

func (b CreateLeadBody) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.Name, v.Required),
		v.Field(&b.Platform, v.Required, v.In("Instagram", "LinkedIn", "Facebook", "TikTok", "Offline")),
		v.Field(&b.PipelineID, is.UUID),
		v.Field(&b.PhaseID, is.UUID),
	)
}

// UpdateLeadBody carries a partial lead update. Pointer fields distinguish
// "absent" from "set to empty".
type UpdateLeadBody struct {
	Name                *string `json:"name"`
	Platform            *string `json:"platform"`
	Industry            *string `json:"industry"`
	Email               *string `json:"email"`
	Phone               *string `json:"phone_number"`
	SocialMediaUsername *string `json:"social_media_username"`
}

func (b UpdateLeadBody) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.Platform, v.In("Instagram", "LinkedIn", "Facebook", "TikTok", "Offline")),
		v.Field(&b.Email, is.Email),
	)
}

// Updates maps the present fields onto leads columns.
func (b UpdateLeadBody) Updates() map[string]any {
	updates := map[string]any{}
	if b.Name != nil {
		updates["name"] = *b.Name
	}
	if b.Platform != nil {
		updates["platform"] = *b.Platform
	}
	if b.Industry != nil {
		updates["industry"] = *b.Industry
	}
	if b.Email != nil {
		updates["email"] = *b.Email
	}
	if b.Phone != nil {
		updates["phone_number"] = *b.Phone
	}
	if b.SocialMediaUsername != nil {
		updates["social_media_username"] = *b.SocialMediaUsername
	}
	return updates
}

type MovePhaseBody struct {
	PhaseID string `json:"phase_id"`
}

func (b MovePhaseBody) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.PhaseID, v.Required, is.UUID),
	)
}

package scan

import (
	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type StartScanBody struct {
	Username string `json:"username"`
	Platform string `json:"platform"`
	LeadID   string `json:"lead_id"`
}

func (b StartScanBody) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.Username, v.Required),
		v.Field(&b.Platform, v.Required, v.In("Instagram", "LinkedIn")),
		v.Field(&b.LeadID, v.Required, is.UUID),
	)
}

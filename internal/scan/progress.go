package scan

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/er2klc/creativable-sub005/internal/models"
)

// TempPostID returns the synthetic id of the transient progress row for a
// lead.
func TempPostID(leadID string) string {
	return "temp-" + leadID
}

// Tracker mirrors scan progress into a transient social_media_posts row so
// polling clients can render an approximate percentage. Updates are
// unconditional overwrites: last writer wins, which is fine because a lead
// never has two scans in flight.
type Tracker struct {
	db *gorm.DB
}

// NewTracker constructs a Tracker on the shared database handle.
func NewTracker(gdb *gorm.DB) *Tracker {
	return &Tracker{db: gdb}
}

// Update upserts the progress row for the lead.
func (t *Tracker) Update(leadID string, pct float64, currentFile string) error {
	row := models.SocialMediaPost{
		ID:                 TempPostID(leadID),
		LeadID:             leadID,
		PostType:           "post",
		MediaURLs:          "[]",
		TaggedUsers:        "[]",
		ProcessingProgress: &pct,
		CurrentFile:        &currentFile,
	}

	return t.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"processing_progress", "current_file", "updated_at"}),
	}).Create(&row).Error
}

// Read returns the lead's progress row, or nil when no scan has run yet.
func (t *Tracker) Read(leadID string) (*models.SocialMediaPost, error) {
	var row models.SocialMediaPost
	result := t.db.Where("id = ?", TempPostID(leadID)).Limit(1).Find(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

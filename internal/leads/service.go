package leads

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/er2klc/creativable-sub005/internal/models"
)

// cascadeTables lists the lead-scoped child tables in deletion order. The
// lead row itself goes last so a failed step leaves the lead visible.
var cascadeTables = []string{
	"notes",
	"tasks",
	"messages",
	"lead_files",
	"social_media_scan_history",
	"social_media_posts",
	"linkedin_posts",
}

// ListLeads returns all leads owned by the user, newest first.
func ListLeads(gdb *gorm.DB, userID string) ([]models.Lead, error) {
	var leads []models.Lead
	err := gdb.Where("user_id = ?", userID).Order("created_at desc").Find(&leads).Error
	return leads, err
}

// GetLead returns a single lead, validating ownership.
func GetLead(gdb *gorm.DB, userID, leadID string) (*models.Lead, error) {
	var lead models.Lead
	result := gdb.Where("id = ? AND user_id = ?", leadID, userID).Limit(1).Find(&lead)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &lead, nil
}

// CreateLead inserts a new lead for the user.
func CreateLead(gdb *gorm.DB, userID string, body CreateLeadBody) (*models.Lead, error) {
	lead := models.Lead{
		ID:       uuid.NewString(),
		UserID:   userID,
		Name:     body.Name,
		Platform: models.Platform(body.Platform),
		Industry: body.Industry,
	}
	if body.SocialMediaUsername != "" {
		lead.SocialMediaUsername = &body.SocialMediaUsername
	}
	if body.PipelineID != "" {
		lead.PipelineID = &body.PipelineID
	}
	if body.PhaseID != "" {
		lead.PhaseID = &body.PhaseID
	}

	if err := gdb.Create(&lead).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

// UpdateLead applies a partial update: only the fields present in the body
// are written, absent fields keep their current value.
func UpdateLead(gdb *gorm.DB, userID, leadID string, body UpdateLeadBody) error {
	updates := body.Updates()
	if len(updates) == 0 {
		return nil
	}
	return gdb.Table("leads").
		Where("id = ? AND user_id = ?", leadID, userID).
		Updates(updates).Error
}

// DeleteLead removes a lead and every row that references it. The deletes are
// a sequential best-effort cascade, not a transaction: the first failing step
// aborts and earlier deletes stay applied. Ownership is checked before the
// first child delete, a foreign lead id must not strip another user's data.
func DeleteLead(gdb *gorm.DB, userID, leadID string) error {
	lead, err := GetLead(gdb, userID, leadID)
	if err != nil {
		return err
	}
	if lead == nil {
		return fmt.Errorf("lead %s not found", leadID)
	}

	for _, table := range cascadeTables {
		result := gdb.Exec(fmt.Sprintf("DELETE FROM %s WHERE lead_id = ?", table), leadID)
		if result.Error != nil {
			log.Printf("Error deleting from %s for lead %s: %v", table, leadID, result.Error)
			return fmt.Errorf("delete from %s: %w", table, result.Error)
		}
		if result.RowsAffected > 0 {
			log.Printf("Deleted %d rows from %s for lead %s", result.RowsAffected, table, leadID)
		}
	}

	result := gdb.Exec("DELETE FROM leads WHERE id = ? AND user_id = ?", leadID, userID)
	if result.Error != nil {
		log.Printf("Error deleting lead %s: %v", leadID, result.Error)
		return fmt.Errorf("delete lead: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("lead %s not found", leadID)
	}

	log.Printf("Deleted lead %s", leadID)
	return nil
}

// MoveToPhase moves a lead onto a pipeline phase (the kanban drop). The phase
// must exist; the lead's pipeline follows the phase's pipeline.
func MoveToPhase(gdb *gorm.DB, userID, leadID, phaseID string) error {
	var phase models.PipelinePhase
	result := gdb.Where("id = ?", phaseID).Limit(1).Find(&phase)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("phase %s not found", phaseID)
	}

	return gdb.Table("leads").
		Where("id = ? AND user_id = ?", leadID, userID).
		Updates(map[string]any{
			"phase_id":    phase.ID,
			"pipeline_id": phase.PipelineID,
		}).Error
}

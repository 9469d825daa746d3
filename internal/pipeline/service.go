package pipeline

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/er2klc/creativable-sub005/internal/models"
)

// ListPhases returns the pipeline's phases in kanban column order.
func ListPhases(gdb *gorm.DB, pipelineID string) ([]models.PipelinePhase, error) {
	var phases []models.PipelinePhase
	err := gdb.Where("pipeline_id = ?", pipelineID).Order("order_index asc").Find(&phases).Error
	return phases, err
}

// CreatePhase appends a new phase at the tail of the pipeline.
func CreatePhase(gdb *gorm.DB, pipelineID, name string) (*models.PipelinePhase, error) {
	var maxIndex *int
	err := gdb.Table("pipeline_phases").
		Where("pipeline_id = ?", pipelineID).
		Select("max(order_index)").
		Scan(&maxIndex).Error
	if err != nil {
		return nil, err
	}

	next := 0
	if maxIndex != nil {
		next = *maxIndex + 1
	}

	phase := models.PipelinePhase{
		ID:         uuid.NewString(),
		PipelineID: pipelineID,
		Name:       name,
		OrderIndex: next,
	}
	if err := gdb.Create(&phase).Error; err != nil {
		return nil, err
	}

	log.Printf("Created phase %s (%s) at index %d", phase.ID, name, next)
	return &phase, nil
}

// DeletePhase removes a phase and closes the order gap it leaves. Leads still
// sitting on the phase are detached, not deleted.
func DeletePhase(gdb *gorm.DB, phaseID string) error {
	var phase models.PipelinePhase
	result := gdb.Where("id = ?", phaseID).Limit(1).Find(&phase)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("phase %s not found", phaseID)
	}

	if err := gdb.Exec("UPDATE leads SET phase_id = NULL WHERE phase_id = ?", phaseID).Error; err != nil {
		return fmt.Errorf("detach leads: %w", err)
	}
	if err := gdb.Exec("DELETE FROM pipeline_phases WHERE id = ?", phaseID).Error; err != nil {
		return fmt.Errorf("delete phase: %w", err)
	}

	// Close the gap so order indexes stay contiguous.
	err := gdb.Exec(
		"UPDATE pipeline_phases SET order_index = order_index - 1 WHERE pipeline_id = ? AND order_index > ?",
		phase.PipelineID, phase.OrderIndex,
	).Error
	if err != nil {
		return fmt.Errorf("reindex phases: %w", err)
	}

	return nil
}

// ReorderPhases rewrites the pipeline's order indexes to match the desired
// phase id sequence.
func ReorderPhases(gdb *gorm.DB, pipelineID string, desired []string) error {
	phases, err := ListPhases(gdb, pipelineID)
	if err != nil {
		return err
	}

	existing := make([]string, len(phases))
	for i, p := range phases {
		existing[i] = p.ID
	}

	indexes, err := ReorderedIndexes(existing, desired)
	if err != nil {
		return err
	}

	for id, idx := range indexes {
		err := gdb.Table("pipeline_phases").
			Where("id = ? AND pipeline_id = ?", id, pipelineID).
			Update("order_index", idx).Error
		if err != nil {
			return fmt.Errorf("update phase %s: %w", id, err)
		}
	}

	log.Printf("Reordered %d phases of pipeline %s", len(indexes), pipelineID)
	return nil
}

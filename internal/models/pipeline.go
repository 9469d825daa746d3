package models

import "time"

// Pipeline represents the pipelines table
type Pipeline struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	UserID     string    `gorm:"column:user_id" json:"user_id"`
	Name       string    `json:"name"`
	OrderIndex int       `gorm:"column:order_index" json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for Pipeline
func (Pipeline) TableName() string {
	return "pipelines"
}

// PipelinePhase represents the pipeline_phases table. Phases of one pipeline
// are ordered by order_index (the kanban column order).
type PipelinePhase struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	PipelineID string    `gorm:"column:pipeline_id" json:"pipeline_id"`
	Name       string    `json:"name"`
	OrderIndex int       `gorm:"column:order_index" json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for PipelinePhase
func (PipelinePhase) TableName() string {
	return "pipeline_phases"
}

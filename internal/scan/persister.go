package scan

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/er2klc/creativable-sub005/internal/models"
)

// Persister writes a completed scan into the relational store. The three
// writes (history insert, lead update, post upserts) are a best-effort
// sequence, not a transaction: a failed step is logged and returned, earlier
// writes stay in place.
type Persister struct {
	db      *gorm.DB
	archive *mongo.Database // optional raw-payload archive
}

// NewPersister constructs a Persister. archive may be nil.
func NewPersister(gdb *gorm.DB, archive *mongo.Database) *Persister {
	return &Persister{db: gdb, archive: archive}
}

// Persist stores the scan result for a lead.
func (p *Persister) Persist(ctx context.Context, leadID, userID string, platform models.Platform, raw json.RawMessage) error {
	var payload ProfilePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return &PersistenceError{Step: "payload decode", Err: err}
	}

	now := time.Now().UTC()

	history := models.ScanHistory{
		ID:             uuid.NewString(),
		LeadID:         leadID,
		UserID:         userID,
		Platform:       platform,
		ScannedAt:      now,
		FollowersCount: payload.FollowersCount,
		FollowingCount: payload.FollowsCount,
		PostsCount:     payload.PostsCount,
		EngagementRate: EngagementRate(&payload),
		ProfileData:    string(raw),
	}
	if err := p.db.Create(&history).Error; err != nil {
		log.Printf("Error inserting scan history for lead %s: %v", leadID, err)
		return &PersistenceError{Step: "scan history insert", Err: err}
	}

	updates := LeadUpdates(&payload)
	updates["last_social_media_scan"] = now
	if err := p.db.Table("leads").Where("id = ?", leadID).Updates(updates).Error; err != nil {
		log.Printf("Error updating lead %s after scan: %v", leadID, err)
		return &PersistenceError{Step: "lead update", Err: err}
	}

	if err := p.upsertPosts(&payload, leadID, userID, platform); err != nil {
		log.Printf("Error upserting posts for lead %s: %v", leadID, err)
		return &PersistenceError{Step: "post upsert", Err: err}
	}

	p.archiveRaw(ctx, leadID, platform, raw)

	log.Printf("Persisted scan for lead %s (%s): %d posts", leadID, platform, len(payload.LatestPosts))
	return nil
}

// upsertPosts writes the fetched posts keyed by external provider id so a
// re-scan never duplicates rows.
func (p *Persister) upsertPosts(payload *ProfilePayload, leadID, userID string, platform models.Platform) error {
	onConflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}

	if platform == models.PlatformLinkedIn {
		rows := LinkedInPostRows(payload, leadID, userID)
		if len(rows) == 0 {
			return nil
		}
		return p.db.Clauses(onConflict).Create(&rows).Error
	}

	rows := PostRows(payload, leadID, userID, platform)
	if len(rows) == 0 {
		return nil
	}
	return p.db.Clauses(onConflict).Create(&rows).Error
}

// archiveRaw stores the full payload document in MongoDB. Best-effort: a
// failure is logged, never surfaced.
func (p *Persister) archiveRaw(ctx context.Context, leadID string, platform models.Platform, raw json.RawMessage) {
	if p.archive == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := p.archive.Collection("scan_payloads").InsertOne(ctx, bson.M{
		"lead_id":    leadID,
		"platform":   string(platform),
		"payload":    string(raw),
		"scanned_at": time.Now().UTC(),
	})
	if err != nil {
		log.Printf("Error archiving raw payload for lead %s: %v", leadID, err)
	}
}

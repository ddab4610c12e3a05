package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is one namespaced key with a JSON-encoded value. It carries the
// per-user scoped side-channel data (applications, saved jobs, profiles,
// CV view counters) that is not part of the relational entity store.
type KVEntry struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value []byte `gorm:"column:value"`
}

func (KVEntry) TableName() string { return "kv_entries" }

// Key builders for the namespaces the board uses. Formats are part of the
// persisted contract and must not change without a migration.

func AppliedJobsKey(userID string) string     { return "applications_" + userID }
func SavedJobsKey(userID string) string       { return "savedJobs_" + userID }
func ProfileKey(userID string) string         { return "profile_" + userID }
func ProfileSkippedKey(userID string) string  { return "profile_skipped_" + userID }
func EmployerProfileKey(userID string) string { return "employer_profile_" + userID }

// CVViewsKey holds a single map of application id to view count.
const CVViewsKey = "cvViews"

// GetJSON reads the entry at key into dest. It reports false, and leaves
// dest untouched, when the key is absent.
func (r *Repository) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	var entry KVEntry
	result := r.db.WithContext(ctx).First(&entry, "key = ?", key)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}
	if err := json.Unmarshal(entry.Value, dest); err != nil {
		return false, fmt.Errorf("corrupt value at %q: %w", key, err)
	}
	return true, nil
}

// SetJSON writes value at key, replacing any previous entry.
func (r *Repository) SetJSON(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for %q: %w", key, err)
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&KVEntry{Key: key, Value: raw}).Error
}

// DeleteKey removes the entry at key. Missing keys are not an error.
func (r *Repository) DeleteKey(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Delete(&KVEntry{}, "key = ?", key).Error
}

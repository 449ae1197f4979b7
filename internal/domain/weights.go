package domain

import "time"

// ProtocolWeights is the persisted per-user learned weight table.
// One row per user, keyed by a filesystem-safe lowercase/underscore
// normalization of the user identifier. Weights map protocol name to a
// learned importance in [0.10, 1.00]; the prioritizer blends them 70/30
// with the base table. Created lazily on first feedback.
type ProtocolWeights struct {
	UserKey   string             `gorm:"primaryKey;type:varchar(255)" json:"user_key"`
	Weights   map[string]float64 `gorm:"serializer:json;type:jsonb;not null" json:"weights"`
	UpdatedAt time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ProtocolWeights) TableName() string {
	return "protocol_weights"
}

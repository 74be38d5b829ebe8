package schema

import (
	"time"

	"github.com/google/uuid"
)

// CheckIn represents the check_ins table - an immutable record of one visit
// to an asset. Rows are append-only; there is no update or delete path.
type CheckIn struct {
	// ID is the internal database primary key; insertion order within one
	// asset's history follows this sequence
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AssetID references the visited asset
	AssetID uuid.UUID `gorm:"column:asset_id;not null;type:uuid;index:idx_check_ins_asset_id"`
	// Username is the visitor
	Username string `gorm:"column:username;not null;type:text"`
	// AssetName and AssetDescription snapshot the asset's display fields at
	// check-in time; later edits to the asset do not rewrite history
	AssetName        string `gorm:"column:asset_name;not null;type:text"`
	AssetDescription string `gorm:"column:asset_description;not null;type:text"`
	// ImageURL optionally references a photo taken at check-in
	ImageURL *string `gorm:"column:image_url;type:text"`
	// CreatedAt is the check-in timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`

	// Associations
	Asset Asset `gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the CheckIn model
func (CheckIn) TableName() string {
	return "check_ins"
}

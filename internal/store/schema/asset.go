package schema

import (
	"time"

	"github.com/google/uuid"

	"github.com/phygrid/engine/internal/domain"
	"github.com/phygrid/engine/internal/geo"
)

// Asset represents the assets table - a phygital object placed at a grid
// cell and bound to an NFC tag. Assets are never deleted, only superseded.
type Asset struct {
	// ID is the asset's generated unique identifier
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	// RecordType identifies which check-in namespace owns this asset
	RecordType domain.RecordType `gorm:"column:record_type;not null;type:text;index:idx_assets_record_type_cell,priority:1"`
	// GridX and GridY identify the asset's logical cell on the floor plan (immutable once placed)
	GridX int `gorm:"column:grid_x;not null;index:idx_assets_record_type_cell,priority:2"`
	GridY int `gorm:"column:grid_y;not null;index:idx_assets_record_type_cell,priority:3"`
	// Name is the asset's display name
	Name string `gorm:"column:name;not null;type:text"`
	// Description is the asset's display description
	Description string `gorm:"column:description;not null;type:text"`
	// ImageURL references the asset's image in the blob store
	ImageURL *string `gorm:"column:image_url;type:text"`
	// NFCUUID is the identifier delivered by the physical tag scan
	NFCUUID string `gorm:"column:nfc_uuid;not null;uniqueIndex;type:text"`
	// BuildingID links the asset to its building (nil for non-building records)
	BuildingID *uuid.UUID `gorm:"column:building_id;type:uuid"`
	// BuildingName is the display name of the linked building
	BuildingName string `gorm:"column:building_name;not null;default:'';type:text"`
	// Latitude/Longitude hold the optional GPS fix recorded at placement
	Latitude  *float64 `gorm:"column:latitude"`
	Longitude *float64 `gorm:"column:longitude"`
	// RegisteredBy is the username that placed the asset
	RegisteredBy string `gorm:"column:registered_by;not null;type:text"`
	// CreatedAt is the timestamp when the asset was placed
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last edit to name/description/image
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	CheckIns []CheckIn `gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Asset model
func (Asset) TableName() string {
	return "assets"
}

// HasGPSCoordinates reports whether both latitude and longitude are set
func (a *Asset) HasGPSCoordinates() bool {
	return a.Latitude != nil && a.Longitude != nil
}

// AnchorPoint returns the asset's registered GPS location, or nil when the
// asset has no GPS data (proximity checks are then unverifiable)
func (a *Asset) AnchorPoint() *geo.Point {
	if !a.HasGPSCoordinates() {
		return nil
	}
	return &geo.Point{Latitude: *a.Latitude, Longitude: *a.Longitude}
}

package domain

// RecordType identifies which check-in namespace owns an asset record
type RecordType string

const (
	RecordTypeBuilding   RecordType = "building"
	RecordTypeOvalOffice RecordType = "oval_office"
)

// Valid checks if a record type is one of the known namespaces
func (r RecordType) Valid() bool {
	return r == RecordTypeBuilding || r == RecordTypeOvalOffice
}

// GridCoordinate identifies an asset's logical cell on a floor plan.
// Immutable once an asset is placed.
type GridCoordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ValidAmount checks that a bid or counter amount is a positive number of
// currency minor units.
func ValidAmount(amount int64) bool {
	return amount > 0
}

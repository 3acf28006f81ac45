package models

import "time"

// Item types.
const (
	TypeLost  = "lost"
	TypeFound = "found"
)

// Item lifecycle statuses. An item starts as active and may move to
// returned exactly once; there is no transition back.
const (
	StatusActive   = "active"
	StatusReturned = "returned"
)

// ItemDB represents an item record in the database.
// Column names match the original schema, camelCase included.
type ItemDB struct {
	ID          int64     `json:"id" db:"id"`                   // Primary key
	ItemName    string    `json:"itemName" db:"itemName"`       // What was lost or found
	Category    string    `json:"category" db:"category"`       // Optional category
	Description string    `json:"description" db:"description"` // Optional free-form description
	Type        string    `json:"type" db:"type"`               // "lost" or "found", immutable
	Location    string    `json:"location" db:"location"`       // Where it was lost or found
	Contact     string    `json:"contact" db:"contact"`         // Optional contact info
	Status      string    `json:"status" db:"status"`           // "active" or "returned"
	Date        time.Time `json:"date" db:"date"`               // Creation timestamp, set by the store
}

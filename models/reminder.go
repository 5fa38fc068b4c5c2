package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Frequency string

const (
	FrequencyOnce    Frequency = "once"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Recurrence describes how a reminder repeats. It is an advisory descriptor:
// the service stores it verbatim and never expands occurrences from it.
type Recurrence struct {
	Frequency Frequency  `bson:"frequency" json:"frequency"`
	Interval  int        `bson:"interval" json:"interval"`
	Count     int        `bson:"count,omitempty" json:"count,omitempty"`
	EndDate   *time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"`
}

// Normalize fills the schema defaults for a client-supplied recurrence.
func (r *Recurrence) Normalize() {
	if r.Frequency == "" {
		r.Frequency = FrequencyOnce
	}
	if r.Interval < 1 {
		r.Interval = 1
	}
}

// GeoPointType is the only GeoJSON geometry the 2dsphere index accepts here.
const GeoPointType = "Point"

// GeoPoint is a GeoJSON point: coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// UnmarshalJSON tolerates malformed coordinates instead of failing the whole
// request body: a non-array coordinates value simply leaves Coordinates nil,
// so the point is later dropped by Valid rather than rejected.
func (g *GeoPoint) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type        string          `json:"type"`
		Coordinates json.RawMessage `json:"coordinates"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	g.Type = raw.Type
	g.Coordinates = nil
	if len(raw.Coordinates) > 0 {
		var coords []float64
		if err := json.Unmarshal(raw.Coordinates, &coords); err == nil {
			g.Coordinates = coords
		}
	}
	return nil
}

// Valid reports whether the point carries a usable [longitude, latitude] pair.
func (g *GeoPoint) Valid() bool {
	return g != nil && len(g.Coordinates) == 2
}

type Reminder struct {
	ID          bson.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID      bson.ObjectID  `bson:"user" json:"user"`
	Title       string         `bson:"title" json:"title"`
	Description string         `bson:"description" json:"description"`
	Date        time.Time      `bson:"date" json:"date"`
	Recurring   Recurrence     `bson:"recurring" json:"recurring"`
	Location    *GeoPoint      `bson:"location,omitempty" json:"location,omitempty"`
	ListID      *bson.ObjectID `bson:"list,omitempty" json:"list,omitempty"`
	ItemName    string         `bson:"itemName,omitempty" json:"itemName,omitempty"`
	IsCompleted bool           `bson:"isCompleted" json:"isCompleted"`
	CreatedAt   time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// SanitizeLocation drops an invalid geo point before persistence; a reminder
// must either carry a well-formed Point or no location field at all. The
// geometry type is forced to Point so the document always satisfies the
// 2dsphere index regardless of what the client sent.
func (r *Reminder) SanitizeLocation() {
	if !r.Location.Valid() {
		r.Location = nil
		return
	}
	r.Location.Type = GeoPointType
}

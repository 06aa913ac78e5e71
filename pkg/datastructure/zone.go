package datastructure

import (
	"time"

	"github.com/lintang-b-s/zonemap/pkg/geo"
)

type Status string

const (
	AVAILABLE Status = "AVAILABLE"
	RESERVED  Status = "RESERVED"
	OCCUPIED  Status = "OCCUPIED"
	SHOWROOM  Status = "SHOWROOM"
)

func (s Status) Valid() bool {
	switch s {
	case AVAILABLE, RESERVED, OCCUPIED, SHOWROOM:
		return true
	}
	return false
}

// Zone model info
// @Description industrial zone. boundary surveyed in Lambert metres, one optional legacy point for zones without a ring.
type Zone struct {
	ID            string       `json:"id" msgpack:"id"`                                      // zone id (uuid)
	Name          string       `json:"name" msgpack:"name"`                                  // zone name
	Status        Status       `json:"status" msgpack:"status"`                              // AVAILABLE, RESERVED, OCCUPIED, SHOWROOM
	ZoneTypeID    string       `json:"zoneTypeId,omitempty" msgpack:"zone_type_id"`          // zone type reference
	RegionID      string       `json:"regionId,omitempty" msgpack:"region_id"`               // region reference
	LambertX      *float64     `json:"lambertX" msgpack:"lambert_x"`                         // legacy single point, easting
	LambertY      *float64     `json:"lambertY" msgpack:"lambert_y"`                         // legacy single point, northing
	TotalArea     *float64     `json:"totalArea,omitempty" msgpack:"total_area"`             // surface in m²
	Vertices      []geo.Vertex `json:"vertices" msgpack:"vertices"`                          // boundary ring
	ActivityIcons []string     `json:"activityIcons" msgpack:"activity_icons"`               // icons of the activities hosted
	AmenityIDs    []string     `json:"amenityIds,omitempty" msgpack:"amenity_ids"`           // amenities references
	CreatedAt     time.Time    `json:"createdAt" msgpack:"created_at"`
	UpdatedAt     time.Time    `json:"updatedAt" msgpack:"updated_at"`
}

func NewZone(id, name string, status Status) Zone {
	now := time.Now().UTC()
	return Zone{
		ID:        id,
		Name:      name,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (z *Zone) Boundary() geo.BoundarySource {
	return geo.BoundaryOf(z.Vertices, z.LambertX, z.LambertY)
}

// Parcel model info
// @Description plot inside a zone.
type Parcel struct {
	ID         string       `json:"id" msgpack:"id"`
	Reference  string       `json:"reference" msgpack:"reference"`
	ZoneID     string       `json:"zoneId" msgpack:"zone_id"`
	Status     Status       `json:"status" msgpack:"status"`
	IsFree     bool         `json:"isFree" msgpack:"is_free"`
	IsShowroom bool         `json:"isShowroom" msgpack:"is_showroom"`
	Area       *float64     `json:"area,omitempty" msgpack:"area"` // m²
	LambertX   *float64     `json:"lambertX" msgpack:"lambert_x"`
	LambertY   *float64     `json:"lambertY" msgpack:"lambert_y"`
	Vertices   []geo.Vertex `json:"vertices" msgpack:"vertices"`
	CreatedAt  time.Time    `json:"createdAt" msgpack:"created_at"`
	UpdatedAt  time.Time    `json:"updatedAt" msgpack:"updated_at"`
}

func NewParcel(id, reference, zoneID string, status Status) Parcel {
	now := time.Now().UTC()
	return Parcel{
		ID:        id,
		Reference: reference,
		ZoneID:    zoneID,
		Status:    status,
		IsFree:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (p *Parcel) Boundary() geo.BoundarySource {
	return geo.BoundaryOf(p.Vertices, p.LambertX, p.LambertY)
}

// Available counts toward a zone's availableParcels.
func (p *Parcel) Available() bool {
	return p.Status == AVAILABLE && p.IsFree
}

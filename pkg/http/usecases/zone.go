package usecases

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/lintang-b-s/zonemap/pkg"
	"github.com/lintang-b-s/zonemap/pkg/datastructure"
	"github.com/lintang-b-s/zonemap/pkg/geo"
	"github.com/lintang-b-s/zonemap/pkg/kvdb"
	"github.com/lintang-b-s/zonemap/pkg/metrics"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"
)

type ZoneService struct {
	log               *zap.Logger
	repo              ZoneRepository
	projector         geo.Projection
	footprintHalfSize float64
}

func NewZoneService(log *zap.Logger, repo ZoneRepository, projector geo.Projection, footprintHalfSize float64) *ZoneService {
	if footprintHalfSize <= 0 {
		footprintHalfSize = geo.DefaultFootprintHalfSize
	}
	return &ZoneService{
		log:               log,
		repo:              repo,
		projector:         projector,
		footprintHalfSize: footprintHalfSize,
	}
}

func (s *ZoneService) List(filter ZoneFilter) ([]ZoneView, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "unknown zone status %q", filter.Status)
	}
	if filter.MinArea != nil && filter.MaxArea != nil && *filter.MinArea > *filter.MaxArea {
		return nil, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "minArea is greater than maxArea")
	}

	zones, err := s.repo.ListZones()
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "list zones")
	}

	views := make([]ZoneView, 0, len(zones))
	for _, zone := range zones {
		if !filter.Match(zone) {
			continue
		}
		parcels, err := s.repo.ListParcelsByZone(zone.ID)
		if err != nil {
			return nil, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "list parcels of zone %s", zone.ID)
		}
		views = append(views, newZoneView(zone, parcels, s.projector))
	}
	return views, nil
}

func (s *ZoneService) Get(id string) (ZoneView, error) {
	zone, err := s.getZone(id)
	if err != nil {
		return ZoneView{}, err
	}
	parcels, err := s.repo.ListParcelsByZone(id)
	if err != nil {
		return ZoneView{}, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "list parcels of zone %s", id)
	}
	return newZoneView(zone, parcels, s.projector), nil
}

func (s *ZoneService) Create(in ZoneInput) (ZoneView, error) {
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return ZoneView{}, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "zone name is required")
	}
	status := datastructure.AVAILABLE
	if in.Status != nil {
		status = *in.Status
	}

	zone := datastructure.NewZone(uuid.NewString(), strings.TrimSpace(*in.Name), status)
	applyZoneInput(&zone, in)
	if err := validateZone(zone); err != nil {
		return ZoneView{}, err
	}

	if err := s.repo.PutZone(zone); err != nil {
		return ZoneView{}, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "save zone")
	}
	s.log.Info("zone created", zap.String("id", zone.ID), zap.String("boundary", zone.Boundary().Kind().String()))
	return newZoneView(zone, nil, s.projector), nil
}

// Update applies a partial update. vertices, activity icons and amenities are replaced only when given.
func (s *ZoneService) Update(id string, in ZoneInput) (ZoneView, error) {
	zone, err := s.getZone(id)
	if err != nil {
		return ZoneView{}, err
	}

	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return ZoneView{}, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "zone name must not be empty")
	}
	applyZoneInput(&zone, in)
	if in.Name != nil {
		zone.Name = strings.TrimSpace(*in.Name)
	}
	if in.Status != nil {
		zone.Status = *in.Status
	}
	if err := validateZone(zone); err != nil {
		return ZoneView{}, err
	}
	zone.UpdatedAt = time.Now().UTC()

	if err := s.repo.PutZone(zone); err != nil {
		return ZoneView{}, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "save zone %s", id)
	}
	return s.Get(id)
}

func (s *ZoneService) Delete(id string) error {
	err := s.repo.DeleteZone(id)
	if errors.Is(err, kvdb.ErrorsKeyNotExists) {
		return pkg.WrapErrorf(err, pkg.ErrNotFound, "zone %s not found", id)
	}
	if err != nil {
		return pkg.WrapErrorf(err, pkg.ErrInternalServerError, "delete zone %s", id)
	}
	s.log.Info("zone deleted", zap.String("id", id))
	return nil
}

// MapFeatures builds the zone map feed. zones without any geometry are left out.
func (s *ZoneService) MapFeatures(bbox *geo.BoundingBox) (*geojson.FeatureCollection, error) {
	zones, err := s.repo.ListZones()
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "list zones")
	}

	fc := geojson.NewFeatureCollection()
	for _, zone := range zones {
		ll, ok := mapPosition(zone.Boundary(), s.projector)
		if !ok {
			metrics.FeaturesWithoutGeometry.WithLabelValues("zone").Inc()
			continue
		}
		if bbox != nil && !bbox.Contains(ll.Lat, ll.Lon) {
			continue
		}

		parcels, err := s.repo.ListParcelsByZone(zone.ID)
		if err != nil {
			return nil, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "list parcels of zone %s", zone.ID)
		}
		available := 0
		for _, p := range parcels {
			if p.Available() {
				available++
			}
		}

		icons := make([]string, 0, len(zone.ActivityIcons))
		for _, icon := range zone.ActivityIcons {
			if icon != "" {
				icons = append(icons, icon)
			}
		}

		f := geojson.NewFeature(ll.Orb())
		f.Properties["id"] = zone.ID
		f.Properties["name"] = zone.Name
		f.Properties["status"] = zone.Status
		f.Properties["availableParcels"] = available
		f.Properties["activityIcons"] = icons
		fc.Append(f)
	}
	return fc, nil
}

// Outline returns the zone boundary and its parcels as polygons for the zone page map.
// parcels without vertices get a square footprint around their own point, or the zone's.
func (s *ZoneService) Outline(id string) (*geojson.FeatureCollection, error) {
	zone, err := s.getZone(id)
	if err != nil {
		return nil, err
	}
	parcels, err := s.repo.ListParcelsByZone(id)
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "list parcels of zone %s", id)
	}

	fc := geojson.NewFeatureCollection()

	if g, ok := s.outlineGeometry(zone.Vertices, zone.Boundary()); ok {
		f := geojson.NewFeature(g)
		f.Properties["kind"] = "zone"
		f.Properties["id"] = zone.ID
		f.Properties["name"] = zone.Name
		f.Properties["status"] = zone.Status
		if ll, ok := mapPosition(zone.Boundary(), s.projector); ok {
			f.Properties["center"] = []float64{ll.Lat, ll.Lon}
		}
		fc.Append(f)
	}

	zonePoint, zoneHasPoint := zone.Boundary().Planar()
	for _, p := range parcels {
		ring := p.Vertices
		if len(ring) < 3 {
			base, ok := p.Boundary().Planar()
			if !ok {
				base, ok = zonePoint, zoneHasPoint
			}
			if !ok {
				metrics.FeaturesWithoutGeometry.WithLabelValues("parcel").Inc()
				continue
			}
			ring = geo.Footprint(base.X(), base.Y(), s.footprintHalfSize)
		}

		f := geojson.NewFeature(orb.Polygon{geo.OrbRing(geo.ProjectRing(s.projector, ring))})
		f.Properties["kind"] = "parcel"
		f.Properties["id"] = p.ID
		f.Properties["reference"] = p.Reference
		f.Properties["status"] = p.Status
		f.Properties["isShowroom"] = p.IsShowroom
		f.Properties["footprint"] = len(p.Vertices) < 3
		if p.Area != nil {
			f.Properties["area"] = *p.Area
		}
		fc.Append(f)
	}
	return fc, nil
}

func (s *ZoneService) outlineGeometry(vertices []geo.Vertex, b geo.BoundarySource) (orb.Geometry, bool) {
	if len(vertices) >= 3 {
		return orb.Polygon{geo.OrbRing(geo.ProjectRing(s.projector, vertices))}, true
	}
	ll, ok := mapPosition(b, s.projector)
	if !ok {
		return nil, false
	}
	return ll.Orb(), true
}

// Locate finds the zone whose boundary contains the Lambert point (x, y).
// when none does, the zone with the nearest map position is returned with Inside false.
func (s *ZoneService) Locate(x, y float64) (LocateResult, error) {
	zones, err := s.repo.ListZones()
	if err != nil {
		return LocateResult{}, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "list zones")
	}

	probe, ok := mapPosition(geo.FromPoint(x, y), s.projector)
	if !ok {
		return LocateResult{}, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "point (%v, %v) cannot be projected", x, y)
	}

	var (
		best     *datastructure.Zone
		bestDist = math.Inf(1)
		inside   bool
	)
	for i := range zones {
		zone := zones[i]
		if geo.IsPointInRing(x, y, zone.Vertices) {
			best, inside = &zones[i], true
			ll, _ := mapPosition(zone.Boundary(), s.projector)
			bestDist = geo.HaversineDistance(probe.Lat, probe.Lon, ll.Lat, ll.Lon)
			break
		}
		ll, ok := mapPosition(zone.Boundary(), s.projector)
		if !ok {
			continue
		}
		if d := geo.HaversineDistance(probe.Lat, probe.Lon, ll.Lat, ll.Lon); d < bestDist {
			best, bestDist = &zones[i], d
		}
	}

	if best == nil {
		return LocateResult{}, pkg.WrapErrorf(nil, pkg.ErrNotFound, "no zone with a map position")
	}

	view, err := s.Get(best.ID)
	if err != nil {
		return LocateResult{}, err
	}
	return LocateResult{
		Zone:       view,
		Inside:     inside,
		DistanceKM: bestDist,
		Point:      probe,
	}, nil
}

func (s *ZoneService) getZone(id string) (datastructure.Zone, error) {
	zone, err := s.repo.GetZone(id)
	if errors.Is(err, kvdb.ErrorsKeyNotExists) {
		return datastructure.Zone{}, pkg.WrapErrorf(err, pkg.ErrNotFound, "zone %s not found", id)
	}
	if err != nil {
		return datastructure.Zone{}, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "get zone %s", id)
	}
	return zone, nil
}

func applyZoneInput(zone *datastructure.Zone, in ZoneInput) {
	if in.ZoneTypeID != nil {
		zone.ZoneTypeID = *in.ZoneTypeID
	}
	if in.RegionID != nil {
		zone.RegionID = *in.RegionID
	}
	if in.LambertX != nil {
		zone.LambertX = in.LambertX
	}
	if in.LambertY != nil {
		zone.LambertY = in.LambertY
	}
	if in.TotalArea != nil {
		zone.TotalArea = in.TotalArea
	}
	if in.Vertices != nil {
		zone.Vertices = append([]geo.Vertex(nil), (*in.Vertices)...)
	}
	if in.ActivityIcons != nil {
		zone.ActivityIcons = append([]string(nil), (*in.ActivityIcons)...)
	}
	if in.AmenityIDs != nil {
		zone.AmenityIDs = append([]string(nil), (*in.AmenityIDs)...)
	}
}

func validateZone(zone datastructure.Zone) error {
	if !zone.Status.Valid() {
		return pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "unknown zone status %q", zone.Status)
	}
	if err := validateNumbers(zone.LambertX, zone.LambertY, zone.TotalArea); err != nil {
		return err
	}
	return validateVertices(zone.Vertices)
}

// validateNumbers rejects NaN and infinities in optional fields.
func validateNumbers(vals ...*float64) error {
	for _, v := range vals {
		if v != nil && !finite(*v) {
			return pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "%v is not a finite number", *v)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validateVertices(vertices []geo.Vertex) error {
	for _, v := range vertices {
		if v.Seq < 0 {
			return pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "vertex sequence must not be negative")
		}
		if !finite(v.X) || !finite(v.Y) {
			return pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "vertex %d has a non finite coordinate", v.Seq)
		}
	}
	return nil
}

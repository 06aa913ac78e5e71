package usecases

import (
	"errors"
	"strings"
	"time"

	"github.com/lintang-b-s/zonemap/pkg"
	"github.com/lintang-b-s/zonemap/pkg/datastructure"
	"github.com/lintang-b-s/zonemap/pkg/geo"
	"github.com/lintang-b-s/zonemap/pkg/kvdb"
	"github.com/lintang-b-s/zonemap/pkg/metrics"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"
)

type ParcelService struct {
	log       *zap.Logger
	repo      ZoneRepository
	projector geo.Projection
}

func NewParcelService(log *zap.Logger, repo ZoneRepository, projector geo.Projection) *ParcelService {
	return &ParcelService{
		log:       log,
		repo:      repo,
		projector: projector,
	}
}

// List returns every parcel, or only those of zoneID when it is not empty.
func (s *ParcelService) List(zoneID string) ([]ParcelView, error) {
	var (
		parcels []datastructure.Parcel
		err     error
	)
	if zoneID != "" {
		parcels, err = s.repo.ListParcelsByZone(zoneID)
	} else {
		parcels, err = s.repo.ListParcels()
	}
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "list parcels")
	}

	views := make([]ParcelView, 0, len(parcels))
	for _, p := range parcels {
		views = append(views, newParcelView(p, s.projector))
	}
	return views, nil
}

func (s *ParcelService) Get(id string) (ParcelView, error) {
	parcel, err := s.getParcel(id)
	if err != nil {
		return ParcelView{}, err
	}
	return newParcelView(parcel, s.projector), nil
}

func (s *ParcelService) Create(in ParcelInput) (ParcelView, error) {
	if in.Reference == nil || strings.TrimSpace(*in.Reference) == "" {
		return ParcelView{}, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "parcel reference is required")
	}
	if in.ZoneID == nil || *in.ZoneID == "" {
		return ParcelView{}, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "parcel zoneId is required")
	}
	if err := s.zoneExists(*in.ZoneID); err != nil {
		return ParcelView{}, err
	}

	status := datastructure.AVAILABLE
	if in.Status != nil {
		status = *in.Status
	}
	parcel := datastructure.NewParcel(uuid.NewString(), strings.TrimSpace(*in.Reference), *in.ZoneID, status)
	applyParcelInput(&parcel, in)
	if err := validateParcel(parcel); err != nil {
		return ParcelView{}, err
	}

	if err := s.repo.PutParcel(parcel); err != nil {
		return ParcelView{}, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "save parcel")
	}
	s.log.Info("parcel created", zap.String("id", parcel.ID), zap.String("zone_id", parcel.ZoneID))
	return newParcelView(parcel, s.projector), nil
}

// Update applies a partial update. a non-nil Vertices replaces the ring.
func (s *ParcelService) Update(id string, in ParcelInput) (ParcelView, error) {
	parcel, err := s.getParcel(id)
	if err != nil {
		return ParcelView{}, err
	}

	if in.Reference != nil {
		if strings.TrimSpace(*in.Reference) == "" {
			return ParcelView{}, pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "parcel reference must not be empty")
		}
		parcel.Reference = strings.TrimSpace(*in.Reference)
	}
	if in.ZoneID != nil && *in.ZoneID != parcel.ZoneID {
		if err := s.zoneExists(*in.ZoneID); err != nil {
			return ParcelView{}, err
		}
		parcel.ZoneID = *in.ZoneID
	}
	if in.Status != nil {
		parcel.Status = *in.Status
	}
	applyParcelInput(&parcel, in)
	if err := validateParcel(parcel); err != nil {
		return ParcelView{}, err
	}
	parcel.UpdatedAt = time.Now().UTC()

	if err := s.repo.PutParcel(parcel); err != nil {
		return ParcelView{}, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "save parcel %s", id)
	}
	return newParcelView(parcel, s.projector), nil
}

func (s *ParcelService) Delete(id string) error {
	err := s.repo.DeleteParcel(id)
	if errors.Is(err, kvdb.ErrorsKeyNotExists) {
		return pkg.WrapErrorf(err, pkg.ErrNotFound, "parcel %s not found", id)
	}
	if err != nil {
		return pkg.WrapErrorf(err, pkg.ErrInternalServerError, "delete parcel %s", id)
	}
	return nil
}

// MapFeatures builds the parcel map feed. parcels without geometry are left out.
func (s *ParcelService) MapFeatures(bbox *geo.BoundingBox) (*geojson.FeatureCollection, error) {
	parcels, err := s.repo.ListParcels()
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "list parcels")
	}

	fc := geojson.NewFeatureCollection()
	for _, p := range parcels {
		ll, ok := mapPosition(p.Boundary(), s.projector)
		if !ok {
			metrics.FeaturesWithoutGeometry.WithLabelValues("parcel").Inc()
			continue
		}
		if bbox != nil && !bbox.Contains(ll.Lat, ll.Lon) {
			continue
		}

		f := geojson.NewFeature(ll.Orb())
		f.Properties["id"] = p.ID
		f.Properties["reference"] = p.Reference
		f.Properties["zoneId"] = p.ZoneID
		f.Properties["isShowroom"] = p.IsShowroom
		f.Properties["status"] = p.Status
		fc.Append(f)
	}
	return fc, nil
}

func (s *ParcelService) getParcel(id string) (datastructure.Parcel, error) {
	parcel, err := s.repo.GetParcel(id)
	if errors.Is(err, kvdb.ErrorsKeyNotExists) {
		return datastructure.Parcel{}, pkg.WrapErrorf(err, pkg.ErrNotFound, "parcel %s not found", id)
	}
	if err != nil {
		return datastructure.Parcel{}, pkg.WrapErrorf(err, pkg.ErrInternalServerError, "get parcel %s", id)
	}
	return parcel, nil
}

func (s *ParcelService) zoneExists(zoneID string) error {
	_, err := s.repo.GetZone(zoneID)
	if errors.Is(err, kvdb.ErrorsKeyNotExists) {
		return pkg.WrapErrorf(err, pkg.ErrBadParamInput, "zone %s does not exist", zoneID)
	}
	if err != nil {
		return pkg.WrapErrorf(err, pkg.ErrInternalServerError, "get zone %s", zoneID)
	}
	return nil
}

func applyParcelInput(parcel *datastructure.Parcel, in ParcelInput) {
	if in.IsFree != nil {
		parcel.IsFree = *in.IsFree
	}
	if in.IsShowroom != nil {
		parcel.IsShowroom = *in.IsShowroom
	}
	if in.Area != nil {
		parcel.Area = in.Area
	}
	if in.LambertX != nil {
		parcel.LambertX = in.LambertX
	}
	if in.LambertY != nil {
		parcel.LambertY = in.LambertY
	}
	if in.Vertices != nil {
		parcel.Vertices = append([]geo.Vertex(nil), (*in.Vertices)...)
	}
}

func validateParcel(parcel datastructure.Parcel) error {
	if !parcel.Status.Valid() {
		return pkg.WrapErrorf(nil, pkg.ErrBadParamInput, "unknown parcel status %q", parcel.Status)
	}
	if err := validateNumbers(parcel.LambertX, parcel.LambertY, parcel.Area); err != nil {
		return err
	}
	return validateVertices(parcel.Vertices)
}

package usecases

import (
	"github.com/lintang-b-s/zonemap/pkg/datastructure"
)

type ZoneRepository interface {
	PutZone(zone datastructure.Zone) error
	GetZone(id string) (datastructure.Zone, error)
	ListZones() ([]datastructure.Zone, error)
	DeleteZone(id string) error

	PutParcel(parcel datastructure.Parcel) error
	GetParcel(id string) (datastructure.Parcel, error)
	ListParcels() ([]datastructure.Parcel, error)
	ListParcelsByZone(zoneID string) ([]datastructure.Parcel, error)
	DeleteParcel(id string) error
}

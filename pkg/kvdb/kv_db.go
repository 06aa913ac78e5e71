package kvdb

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/lintang-b-s/zonemap/pkg/datastructure"

	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

var (
	ErrorsKeyNotExists = errors.New("key not exists")
)

const (
	BBOLTDB_ZONE_BUCKET        = "zones"
	BBOLTDB_PARCEL_BUCKET      = "parcels"
	BBOLTDB_ZONE_PARCEL_BUCKET = "zone_parcels" // zoneID \x00 parcelID -> nil
)

type KVDB struct {
	db *bbolt.DB
}

// NewKVDB wraps an open bolt database and makes sure every bucket exists.
func NewKVDB(db *bbolt.DB) (*KVDB, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{BBOLTDB_ZONE_BUCKET, BBOLTDB_PARCEL_BUCKET, BBOLTDB_ZONE_PARCEL_BUCKET} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &KVDB{db: db}, nil
}

func (db *KVDB) Close() error {
	return db.db.Close()
}

// zones

func (db *KVDB) PutZone(zone datastructure.Zone) error {
	buf, err := msgpack.Marshal(&zone)
	if err != nil {
		return err
	}
	return db.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(BBOLTDB_ZONE_BUCKET)).Put([]byte(zone.ID), buf)
	})
}

func (db *KVDB) GetZone(id string) (zone datastructure.Zone, err error) {
	err = db.db.View(func(tx *bbolt.Tx) error {
		buf := tx.Bucket([]byte(BBOLTDB_ZONE_BUCKET)).Get([]byte(id))
		if buf == nil {
			return ErrorsKeyNotExists
		}
		return msgpack.Unmarshal(buf, &zone)
	})
	return
}

func (db *KVDB) ListZones() ([]datastructure.Zone, error) {
	zones := []datastructure.Zone{}
	err := db.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(BBOLTDB_ZONE_BUCKET)).ForEach(func(_, v []byte) error {
			var zone datastructure.Zone
			if err := msgpack.Unmarshal(v, &zone); err != nil {
				return err
			}
			zones = append(zones, zone)
			return nil
		})
	})
	return zones, err
}

// DeleteZone removes the zone and its parcels.
func (db *KVDB) DeleteZone(id string) error {
	return db.db.Update(func(tx *bbolt.Tx) error {
		zb := tx.Bucket([]byte(BBOLTDB_ZONE_BUCKET))
		if zb.Get([]byte(id)) == nil {
			return ErrorsKeyNotExists
		}

		parcelIDs := zoneParcelIDs(tx, id)
		pb := tx.Bucket([]byte(BBOLTDB_PARCEL_BUCKET))
		ib := tx.Bucket([]byte(BBOLTDB_ZONE_PARCEL_BUCKET))
		for _, parcelID := range parcelIDs {
			if err := pb.Delete([]byte(parcelID)); err != nil {
				return err
			}
			if err := ib.Delete(zoneParcelKey(id, parcelID)); err != nil {
				return err
			}
		}
		return zb.Delete([]byte(id))
	})
}

// parcels

func (db *KVDB) PutParcel(parcel datastructure.Parcel) error {
	return db.db.Update(func(tx *bbolt.Tx) error {
		return putParcel(tx, parcel)
	})
}

// SaveParcels writes parcels in one batched transaction. safe to call from many goroutines.
func (db *KVDB) SaveParcels(parcels []datastructure.Parcel) error {
	return db.db.Batch(func(tx *bbolt.Tx) error {
		for _, parcel := range parcels {
			if err := putParcel(tx, parcel); err != nil {
				return err
			}
		}
		return nil
	})
}

func putParcel(tx *bbolt.Tx, parcel datastructure.Parcel) error {
	buf, err := msgpack.Marshal(&parcel)
	if err != nil {
		return err
	}
	pb := tx.Bucket([]byte(BBOLTDB_PARCEL_BUCKET))
	ib := tx.Bucket([]byte(BBOLTDB_ZONE_PARCEL_BUCKET))

	// parcel moved to another zone
	if old := pb.Get([]byte(parcel.ID)); old != nil {
		var prev datastructure.Parcel
		if err := msgpack.Unmarshal(old, &prev); err != nil {
			return err
		}
		if prev.ZoneID != parcel.ZoneID {
			if err := ib.Delete(zoneParcelKey(prev.ZoneID, prev.ID)); err != nil {
				return err
			}
		}
	}

	if err := pb.Put([]byte(parcel.ID), buf); err != nil {
		return err
	}
	return ib.Put(zoneParcelKey(parcel.ZoneID, parcel.ID), []byte{})
}

func (db *KVDB) GetParcel(id string) (parcel datastructure.Parcel, err error) {
	err = db.db.View(func(tx *bbolt.Tx) error {
		buf := tx.Bucket([]byte(BBOLTDB_PARCEL_BUCKET)).Get([]byte(id))
		if buf == nil {
			return ErrorsKeyNotExists
		}
		return msgpack.Unmarshal(buf, &parcel)
	})
	return
}

func (db *KVDB) ListParcels() ([]datastructure.Parcel, error) {
	parcels := []datastructure.Parcel{}
	err := db.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(BBOLTDB_PARCEL_BUCKET)).ForEach(func(_, v []byte) error {
			var parcel datastructure.Parcel
			if err := msgpack.Unmarshal(v, &parcel); err != nil {
				return err
			}
			parcels = append(parcels, parcel)
			return nil
		})
	})
	return parcels, err
}

func (db *KVDB) ListParcelsByZone(zoneID string) ([]datastructure.Parcel, error) {
	parcels := []datastructure.Parcel{}
	err := db.db.View(func(tx *bbolt.Tx) error {
		pb := tx.Bucket([]byte(BBOLTDB_PARCEL_BUCKET))
		for _, id := range zoneParcelIDs(tx, zoneID) {
			buf := pb.Get([]byte(id))
			if buf == nil {
				continue
			}
			var parcel datastructure.Parcel
			if err := msgpack.Unmarshal(buf, &parcel); err != nil {
				return err
			}
			parcels = append(parcels, parcel)
		}
		return nil
	})
	return parcels, err
}

func (db *KVDB) DeleteParcel(id string) error {
	return db.db.Update(func(tx *bbolt.Tx) error {
		pb := tx.Bucket([]byte(BBOLTDB_PARCEL_BUCKET))
		buf := pb.Get([]byte(id))
		if buf == nil {
			return ErrorsKeyNotExists
		}
		var parcel datastructure.Parcel
		if err := msgpack.Unmarshal(buf, &parcel); err != nil {
			return err
		}
		if err := tx.Bucket([]byte(BBOLTDB_ZONE_PARCEL_BUCKET)).Delete(zoneParcelKey(parcel.ZoneID, id)); err != nil {
			return err
		}
		return pb.Delete([]byte(id))
	})
}

func zoneParcelKey(zoneID, parcelID string) []byte {
	key := make([]byte, 0, len(zoneID)+1+len(parcelID))
	key = append(key, zoneID...)
	key = append(key, 0)
	key = append(key, parcelID...)
	return key
}

// zoneParcelIDs collects ids before any delete: bolt cursors must not be mutated mid-walk.
func zoneParcelIDs(tx *bbolt.Tx, zoneID string) []string {
	prefix := append([]byte(zoneID), 0)
	ids := []string{}
	c := tx.Bucket([]byte(BBOLTDB_ZONE_PARCEL_BUCKET)).Cursor()
	for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
		ids = append(ids, string(k[len(prefix):]))
	}
	return ids
}

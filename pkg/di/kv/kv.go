package kv_di

import (
	"time"

	"github.com/lintang-b-s/zonemap/pkg/di/config"
	"github.com/lintang-b-s/zonemap/pkg/kvdb"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

func New(cfg *config.Config, log *zap.Logger) (*kvdb.KVDB, func(), error) {
	db, err := bolt.Open(cfg.DBPath, 0600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, nil, err
	}

	bboltKV, err := kvdb.NewKVDB(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	log.Info("opened zone store", zap.String("path", cfg.DBPath))

	cleanup := func() {
		_ = bboltKV.Close()
	}

	return bboltKV, cleanup, nil
}

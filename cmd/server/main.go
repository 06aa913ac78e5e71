package main

import (
	"log"

	"github.com/lintang-b-s/zonemap/pkg/di"
)

//	@title			zonemap API
//	@version		1.0
//	@description	industrial zones and parcels surveyed in Lambert Nord Maroc, served as WGS84 map positions.
//	@BasePath		/
func main() {
	server, cleanup, err := di.InitializeZoneMapService()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	server.Log.Info("zonemap API started")
	if err := server.Wait(); err != nil {
		server.Log.Sugar().Errorf("zonemap API stopped: %v", err)
		return
	}
	server.Log.Info("zonemap API stopped")
}

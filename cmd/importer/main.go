package main

import (
	"flag"
	"log"

	"github.com/lintang-b-s/zonemap/pkg/di"

	"go.uber.org/zap"
)

var (
	file      = flag.String("f", "parcels.xlsx", "workbook with a parcels sheet and an optional parcel_vertices sheet")
	workers   = flag.Int("workers", 4, "number of goroutines writing parcel batches")
	batchSize = flag.Int("batch", 200, "parcels per write transaction")
)

func main() {
	flag.Parse()

	app, cleanup, err := di.InitializeImporter()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	app.Importer.SetWorkers(*workers)
	app.Importer.SetBatchSize(*batchSize)

	report, err := app.Importer.Import(app.Ctx, *file)
	if err != nil {
		app.Log.Error("import stopped", zap.String("file", *file), zap.Error(err))
		return
	}
	app.Log.Info("import done",
		zap.String("file", *file),
		zap.Int("rows", report.Rows),
		zap.Int("imported", report.Imported),
		zap.Int("skipped", report.Skipped),
		zap.Int("unknown_zone", report.UnknownZone))
}

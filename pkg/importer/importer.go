package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lintang-b-s/zonemap/pkg"
	"github.com/lintang-b-s/zonemap/pkg/concurrent"
	"github.com/lintang-b-s/zonemap/pkg/datastructure"
	"github.com/lintang-b-s/zonemap/pkg/geo"
	"github.com/lintang-b-s/zonemap/pkg/kvdb"
	"github.com/lintang-b-s/zonemap/pkg/metrics"

	"github.com/google/uuid"
	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const (
	ParcelSheet = "parcels"
	VertexSheet = "parcel_vertices"

	defaultWorkers   = 4
	defaultBatchSize = 200
)

// parcel ids are derived from zone and reference so a re-import overwrites instead of duplicating.
var parcelNamespace = uuid.MustParse("6f1c9a52-8d0e-4b8a-9a51-3c0f6a7e2d10")

type store interface {
	GetZone(id string) (datastructure.Zone, error)
	SaveParcels(parcels []datastructure.Parcel) error
}

type Importer struct {
	log        *zap.Logger
	store      store
	projection geo.Projection
	workers    int
	batchSize  int
	out        io.Writer
}

func New(log *zap.Logger, db *kvdb.KVDB, projection geo.Projection) *Importer {
	return newImporter(log, db, projection)
}

func newImporter(log *zap.Logger, s store, projection geo.Projection) *Importer {
	return &Importer{
		log:        log,
		store:      s,
		projection: projection,
		workers:    defaultWorkers,
		batchSize:  defaultBatchSize,
		out:        ansi.NewAnsiStdout(),
	}
}

func (im *Importer) SetWorkers(n int) {
	if n > 0 {
		im.workers = n
	}
}

func (im *Importer) SetBatchSize(n int) {
	if n > 0 {
		im.batchSize = n
	}
}

// SetOutput redirects the progress bar.
func (im *Importer) SetOutput(w io.Writer) {
	im.out = w
}

type Report struct {
	Rows            int
	Imported        int
	Skipped         int
	UnknownZone     int
	SkippedVertices int
}

// Import reads the workbook at path and stores every valid parcel row.
func (im *Importer) Import(ctx context.Context, path string) (Report, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	var report Report

	vertices, skipped, err := readVertices(f)
	if err != nil {
		return Report{}, err
	}
	report.SkippedVertices = skipped

	rows, err := readSheet(f, ParcelSheet)
	if err != nil {
		return Report{}, err
	}
	if rows == nil {
		return Report{}, fmt.Errorf("workbook %s has no %q sheet", path, ParcelSheet)
	}

	bar := progressbar.NewOptions(len(rows),
		progressbar.OptionSetWriter(im.out),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan]Importing parcels..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	saver := concurrent.NewBackgroundWorker(im.workers, im.workers, func(batch []datastructure.Parcel) batchResult {
		return batchResult{size: len(batch), err: im.store.SaveParcels(batch)}
	})
	saver.Start()

	done := make(chan error, 1)
	go func() {
		var errs []error
		for res := range saver.CollectResults() {
			if res.err != nil {
				errs = append(errs, res.err)
				continue
			}
			report.Imported += res.size
		}
		done <- errors.Join(errs...)
	}()

	knownZones := make(map[string]bool)
	batch := make([]datastructure.Parcel, 0, im.batchSize)
	var ctxErr error

	for _, row := range rows {
		if ctxErr = ctx.Err(); ctxErr != nil {
			break
		}
		report.Rows++
		_ = bar.Add(1)

		parcel, err := parseParcel(row)
		if err != nil {
			report.Skipped++
			im.log.Debug("skip parcel row", zap.Int("row", row.line), zap.Error(err))
			continue
		}

		ok, err := im.zoneExists(knownZones, parcel.ZoneID)
		if err != nil {
			ctxErr = err
			break
		}
		if !ok {
			report.Skipped++
			report.UnknownZone++
			im.log.Debug("skip parcel of unknown zone", zap.Int("row", row.line), zap.String("zone_id", parcel.ZoneID))
			continue
		}

		parcel.ID = uuid.NewSHA1(parcelNamespace, []byte(parcel.ZoneID+"\x00"+parcel.Reference)).String()
		parcel.Vertices = vertices[parcel.Reference]

		if ll, ok := geo.Resolve(parcel.Boundary(), im.projection); ok {
			im.log.Debug("parcel position", zap.String("reference", parcel.Reference),
				zap.String("boundary", parcel.Boundary().Kind().String()),
				zap.Float64("lat", ll.Lat), zap.Float64("lon", ll.Lon))
		}

		batch = append(batch, parcel)
		if len(batch) >= im.batchSize {
			saver.TriggerProcessing(batch)
			batch = make([]datastructure.Parcel, 0, im.batchSize)
		}
	}
	if len(batch) > 0 && ctxErr == nil {
		saver.TriggerProcessing(batch)
	}

	saver.Close()
	saveErr := <-done
	_ = bar.Finish()

	metrics.ImportedParcels.WithLabelValues("imported").Add(float64(report.Imported))
	metrics.ImportedParcels.WithLabelValues("skipped").Add(float64(report.Skipped))

	im.log.Info("parcel import finished",
		zap.String("path", path),
		zap.Int("rows", report.Rows),
		zap.Int("imported", report.Imported),
		zap.Int("skipped", report.Skipped),
		zap.Int("unknown_zone", report.UnknownZone),
		zap.Int("skipped_vertices", report.SkippedVertices))

	if ctxErr != nil {
		return report, ctxErr
	}
	if saveErr != nil {
		return report, fmt.Errorf("save parcels: %w", saveErr)
	}
	return report, nil
}

type batchResult struct {
	size int
	err  error
}

func (im *Importer) zoneExists(cache map[string]bool, zoneID string) (bool, error) {
	if ok, seen := cache[zoneID]; seen {
		return ok, nil
	}
	_, err := im.store.GetZone(zoneID)
	switch {
	case errors.Is(err, kvdb.ErrorsKeyNotExists):
		cache[zoneID] = false
	case err != nil:
		return false, fmt.Errorf("get zone %s: %w", zoneID, err)
	default:
		cache[zoneID] = true
	}
	return cache[zoneID], nil
}

// sheetRow is one data row keyed by lower-cased header name.
type sheetRow struct {
	line   int
	values map[string]string
}

func (r sheetRow) get(col string) string {
	return strings.TrimSpace(r.values[col])
}

// readSheet returns nil rows when the sheet does not exist.
func readSheet(f *excelize.File, sheet string) ([]sheetRow, error) {
	found := false
	for _, name := range f.GetSheetList() {
		if name == sheet {
			found = true
			break
		}
	}
	if !found {
		return nil, nil
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return []sheetRow{}, nil
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	out := make([]sheetRow, 0, len(rows)-1)
	for i, row := range rows[1:] {
		values := make(map[string]string, len(header))
		empty := true
		for j, cell := range row {
			if j >= len(header) || header[j] == "" {
				continue
			}
			values[header[j]] = cell
			if strings.TrimSpace(cell) != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		out = append(out, sheetRow{line: i + 2, values: values})
	}
	return out, nil
}

func readVertices(f *excelize.File) (map[string][]geo.Vertex, int, error) {
	rows, err := readSheet(f, VertexSheet)
	if err != nil {
		return nil, 0, err
	}

	vertices := make(map[string][]geo.Vertex)
	skipped := 0
	for _, row := range rows {
		ref := row.get("reference")
		seq, errSeq := strconv.Atoi(row.get("seq"))
		x, errX := pkg.ParseFloat(row.get("lambert_x"))
		y, errY := pkg.ParseFloat(row.get("lambert_y"))
		if ref == "" || errSeq != nil || seq < 0 || errX != nil || errY != nil {
			skipped++
			continue
		}
		vertices[ref] = append(vertices[ref], geo.NewVertex(seq, x, y))
	}
	return vertices, skipped, nil
}

func parseParcel(row sheetRow) (datastructure.Parcel, error) {
	ref := row.get("reference")
	if ref == "" {
		return datastructure.Parcel{}, errors.New("missing reference")
	}
	zoneID := row.get("zone_id")
	if zoneID == "" {
		return datastructure.Parcel{}, errors.New("missing zone_id")
	}

	status := datastructure.AVAILABLE
	if s := row.get("status"); s != "" {
		status = datastructure.Status(strings.ToUpper(s))
		if !status.Valid() {
			return datastructure.Parcel{}, fmt.Errorf("unknown status %q", s)
		}
	}

	parcel := datastructure.NewParcel("", ref, zoneID, status)

	var err error
	if parcel.IsFree, err = parseBool(row.get("is_free"), true); err != nil {
		return datastructure.Parcel{}, err
	}
	if parcel.IsShowroom, err = parseBool(row.get("is_showroom"), false); err != nil {
		return datastructure.Parcel{}, err
	}
	if parcel.Area, err = optionalFloat(row.get("area")); err != nil {
		return datastructure.Parcel{}, fmt.Errorf("area: %w", err)
	}

	x, errX := optionalFloat(row.get("lambert_x"))
	y, errY := optionalFloat(row.get("lambert_y"))
	if errX != nil || errY != nil {
		return datastructure.Parcel{}, errors.New("lambert point is not a number")
	}
	if (x == nil) != (y == nil) {
		return datastructure.Parcel{}, errors.New("lambert point needs both lambert_x and lambert_y")
	}
	parcel.LambertX, parcel.LambertY = x, y

	return parcel, nil
}

func optionalFloat(val string) (*float64, error) {
	if val == "" {
		return nil, nil
	}
	v, err := pkg.ParseFloat(val)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseBool(val string, def bool) (bool, error) {
	switch strings.ToLower(val) {
	case "":
		return def, nil
	case "1", "true", "yes", "oui", "x":
		return true, nil
	case "0", "false", "no", "non":
		return false, nil
	}
	return false, fmt.Errorf("%q is not a boolean", val)
}

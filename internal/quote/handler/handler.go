package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"quotation-service/internal/config"
	"quotation-service/internal/fileio"
	"quotation-service/internal/quote/model"
	"quotation-service/internal/quote/pincode"
	"quotation-service/internal/quote/rates"
	"quotation-service/internal/quote/service"
)

// BulkQuotation accepts a customer spreadsheet as multipart form data and
// returns the grid with vehicle rate cells filled from the vendor sheet.
// Form fields: "file" (required), "percent" (uniform adjustment), optional
// "rates" file overriding the configured source, "format=xlsx" for a
// workbook download instead of JSON.
func BulkQuotation(cfg config.Config, logger zerolog.Logger, rc *rates.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := reqLogger(logger, r)
		defer r.Body.Close()

		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			httpError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			httpError(w, http.StatusBadRequest, "missing file: "+err.Error())
			return
		}
		defer file.Close()

		grid, err := fileio.ReadAnyGrid(file, header.Filename)
		if err != nil {
			httpError(w, http.StatusBadRequest, "failed to read spreadsheet: "+err.Error())
			return
		}

		records, err := loadRecords(r, rc)
		if err != nil {
			log.Error().Err(err).Msg("vendor rates unavailable")
			httpError(w, http.StatusBadGateway, "failed to fetch vendor rates")
			return
		}

		percent := toFloat(r.FormValue("percent"), 0)
		res, err := service.FillGrid(grid, records, percent)
		if err != nil {
			if errors.Is(err, service.ErrMalformedInput) {
				httpError(w, http.StatusBadRequest, "input file is empty or has no header row")
				return
			}
			log.Error().Err(err).Msg("fill failed")
			httpError(w, http.StatusInternalServerError, "internal")
			return
		}

		log.Info().
			Int("rows", res.Summary.Rows).
			Int("filled", res.Summary.FilledCells).
			Int("cells", res.Summary.TotalCells).
			Dur("elapsed", time.Since(start)).
			Msg("bulk quotation done")

		if r.FormValue("format") == "xlsx" {
			writeWorkbook(w, log, res.Grid)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"result":  res,
			"message": fmt.Sprintf("Processed %d rows. Filled %d out of %d vehicle rate cells.", res.Summary.Rows, res.Summary.FilledCells, res.Summary.TotalCells),
		})
	}
}

// BestVendors reports, per route in the uploaded sheet, the cheapest vendor
// per vehicle column with the savings against the dearest one.
func BestVendors(cfg config.Config, logger zerolog.Logger, rc *rates.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := reqLogger(logger, r)
		defer r.Body.Close()

		if err := r.ParseMultipartForm(int64(cfg.MaxUploadMB) << 20); err != nil {
			httpError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			httpError(w, http.StatusBadRequest, "missing file: "+err.Error())
			return
		}
		defer file.Close()

		grid, err := fileio.ReadAnyGrid(file, header.Filename)
		if err != nil {
			httpError(w, http.StatusBadRequest, "failed to read spreadsheet: "+err.Error())
			return
		}
		records, err := loadRecords(r, rc)
		if err != nil {
			log.Error().Err(err).Msg("vendor rates unavailable")
			httpError(w, http.StatusBadGateway, "failed to fetch vendor rates")
			return
		}

		routes, err := service.BestVendors(grid, records)
		if err != nil {
			httpError(w, http.StatusBadRequest, "input file is empty or has no header row")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "routes": routes})
	}
}

// SearchQuotations resolves a single route query posted as JSON.
func SearchQuotations(cfg config.Config, logger zerolog.Logger, rc *rates.Client, std pincode.Standardizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := reqLogger(logger, r)
		defer r.Body.Close()

		var q model.SearchQuery
		if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
			httpError(w, http.StatusBadRequest, "invalid JSON payload")
			return
		}
		if q.FromLocation == "" || q.ToLocation == "" {
			httpError(w, http.StatusBadRequest, "from_location and to_location are required")
			return
		}

		records, err := rc.Get(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("vendor rates unavailable")
			httpError(w, http.StatusBadGateway, "failed to fetch vendor rates")
			return
		}

		idx := service.BuildLocationIndex(records)
		res := service.Search(r.Context(), q, records, idx, std, cfg.MatchThreshold)

		log.Info().
			Str("from", q.FromLocation).
			Str("to", q.ToLocation).
			Int("found", res.TotalFound).
			Msg("quotation search")
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "quotations": res})
	}
}

// VendorRates returns the current normalized rate set.
func VendorRates(logger zerolog.Logger, rc *rates.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := rc.Get(r.Context())
		if err != nil {
			rl := reqLogger(logger, r)
			rl.Error().Err(err).Msg("vendor rates unavailable")
			httpError(w, http.StatusBadGateway, "failed to fetch vendor rates")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "rates": records})
	}
}

// RefreshRates invalidates the cache and refetches.
func RefreshRates(logger zerolog.Logger, rc *rates.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc.Invalidate()
		records, err := rc.Get(r.Context())
		if err != nil {
			rl := reqLogger(logger, r)
			rl.Error().Err(err).Msg("vendor rates unavailable")
			httpError(w, http.StatusBadGateway, "failed to fetch vendor rates")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "records": len(records)})
	}
}

// Locations lists the distinct vendor locations.
func Locations(logger zerolog.Logger, rc *rates.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := rc.Get(r.Context())
		if err != nil {
			rl := reqLogger(logger, r)
			rl.Error().Err(err).Msg("vendor rates unavailable")
			httpError(w, http.StatusBadGateway, "failed to fetch vendor rates")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "locations": service.ListLocations(records)})
	}
}

// Vendors lists the distinct vendor names.
func Vendors(logger zerolog.Logger, rc *rates.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := rc.Get(r.Context())
		if err != nil {
			rl := reqLogger(logger, r)
			rl.Error().Err(err).Msg("vendor rates unavailable")
			httpError(w, http.StatusBadGateway, "failed to fetch vendor rates")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "vendors": service.ListVendors(records)})
	}
}

// Dashboard returns rate-set analytics.
func Dashboard(logger zerolog.Logger, rc *rates.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := rc.Get(r.Context())
		if err != nil {
			rl := reqLogger(logger, r)
			rl.Error().Err(err).Msg("vendor rates unavailable")
			httpError(w, http.StatusBadGateway, "failed to fetch vendor rates")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "analytics": service.Analytics(records)})
	}
}

// loadRecords prefers an uploaded rate sheet over the configured source.
func loadRecords(r *http.Request, rc *rates.Client) ([]model.RateRecord, error) {
	if file, header, err := r.FormFile("rates"); err == nil {
		defer file.Close()
		raw, err := fileio.ReadAnyMaps(file, header.Filename, atoi(r.FormValue("rates_header_row"), 1))
		if err != nil {
			return nil, err
		}
		return service.ToRecords(raw), nil
	}
	return rc.Get(r.Context())
}

func writeWorkbook(w http.ResponseWriter, log zerolog.Logger, grid [][]string) {
	b, err := fileio.WriteXLSXGrid(grid, "Rate Quotation")
	if err != nil {
		log.Error().Err(err).Msg("xlsx export failed")
		httpError(w, http.StatusInternalServerError, "export failed")
		return
	}
	name := fmt.Sprintf("FN_Quotation_Rate_%s.xlsx", time.Now().Format("2006.01.02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	_, _ = w.Write(b)
}

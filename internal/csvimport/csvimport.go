package csvimport

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cedarbrook-wellness/content-service/internal/storage"
	"github.com/cedarbrook-wellness/content-service/internal/types"
	uploadtypes "github.com/cedarbrook-wellness/content-service/internal/types/upload"
	"github.com/cedarbrook-wellness/content-service/internal/upload"
)

// Date layouts accepted for the weekOf field. The admin form sends
// ISO dates; older exports used US slashes.
var weekOfLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"01/02/2006",
}

// ParseWeekOf validates the weekOf metadata field before any rows are
// touched.
func ParseWeekOf(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, upload.NewError(upload.CodeMissingRequiredField, "weekOf is required")
	}
	for _, layout := range weekOfLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, upload.NewError(upload.CodeInvalidDate,
		fmt.Sprintf("weekOf %q is not a parsable date", value))
}

// Processor turns an assembled weekly sales CSV into an import record
// plus its rows.
type Processor struct {
	storage storage.Storage
}

func NewProcessor(storage storage.Storage) *Processor {
	return &Processor{storage: storage}
}

// Import parses and persists one CSV payload. Every data row counts as
// processed; a row also counts as analyzed when its quantity and
// revenue fields parse cleanly. Nothing is written until the whole
// payload has parsed. The context carries the route's upload deadline.
func (p *Processor) Import(ctx context.Context, filename, weekOf string, payload []byte) (*uploadtypes.CSVImportResult, error) {
	week, err := ParseWeekOf(weekOf)
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, upload.NewError(upload.CodeMissingFile, "no CSV payload received")
	}

	reader := csv.NewReader(bytes.NewReader(payload))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, upload.WrapError(upload.CodeMalformedMultipart, "failed to read CSV header", err)
	}
	cols := columnIndex(header)

	importID := uuid.New().String()
	var rows []types.SalesRecord
	processed := 0
	analyzed := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, upload.WrapError(upload.CodeUploadTimeout, "import exceeded the time budget", err)
		}
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, upload.WrapError(upload.CodeMalformedMultipart, "failed to parse CSV row", err)
		}
		processed++

		row := types.SalesRecord{
			ImportID: importID,
			ItemName: field(record, cols, "item"),
			Category: field(record, cols, "category"),
		}

		qty, qtyErr := strconv.Atoi(strings.TrimSpace(field(record, cols, "quantity")))
		revenue, revErr := strconv.ParseFloat(strings.TrimSpace(field(record, cols, "revenue")), 64)
		if qtyErr == nil && revErr == nil {
			row.Quantity = qty
			row.Revenue = revenue
			analyzed++
		}

		rows = append(rows, row)
	}

	if err := ctx.Err(); err != nil {
		return nil, upload.WrapError(upload.CodeUploadTimeout, "import exceeded the time budget", err)
	}
	if err := p.storage.CreateImport(importID, filename, week, processed, analyzed); err != nil {
		return nil, upload.WrapError(upload.CodeDatabaseFailure, "failed to record import", err)
	}
	if err := p.storage.CreateImportRows(importID, rows); err != nil {
		// The import header row exists without its rows; reported, not
		// compensated.
		slog.Error("Import rows failed after header insert",
			slog.String("import_id", importID),
			slog.String("error", err.Error()))
		return nil, upload.WrapError(upload.CodeDatabaseFailure, "failed to record import rows", err)
	}

	return &uploadtypes.CSVImportResult{
		ImportID:       importID,
		ProcessedItems: processed,
		AnalyzedItems:  analyzed,
	}, nil
}

// columnIndex maps recognized header names to their positions. Header
// matching is case-insensitive and tolerant of the few aliases seen in
// real exports.
func columnIndex(header []string) map[string]int {
	aliases := map[string]string{
		"item":      "item",
		"item_name": "item",
		"name":      "item",
		"product":   "item",
		"category":  "category",
		"dept":      "category",
		"quantity":  "quantity",
		"qty":       "quantity",
		"units":     "quantity",
		"revenue":   "revenue",
		"sales":     "revenue",
		"total":     "revenue",
	}

	cols := make(map[string]int)
	for i, h := range header {
		normalized := strings.ToLower(strings.TrimSpace(h))
		if canonical, ok := aliases[normalized]; ok {
			if _, seen := cols[canonical]; !seen {
				cols[canonical] = i
			}
		}
	}
	return cols
}

func field(record []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}

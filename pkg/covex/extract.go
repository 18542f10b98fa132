package covex

import (
	"errors"
	"fmt"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"github.com/mgaspar/covex/pkg/covex/models"
	"github.com/mgaspar/covex/pkg/covex/parser"
)

// Extract opens an Excel workbook and extracts all coverage records from it.
// A workbook that cannot be opened is fatal; a sheet whose header cannot be
// located is skipped with a warning and recorded in SkippedSheets.
func Extract(path string, opts Options) (*models.ExtractionResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrWorkbookUnreadable, path, err)
	}
	defer f.Close()

	result, err := ExtractWorkbook(f, opts)
	if err != nil {
		return nil, err
	}
	result.BookName = filepath.Base(path)
	return result, nil
}

// sheetResult holds one sheet's extraction output before the fan-in.
type sheetResult struct {
	records []models.Record
	diag    models.SheetDiagnostics
	skipped bool
}

// ExtractWorkbook extracts coverage records from an already-open workbook.
// Sheets are processed in workbook order; record order is sheets in workbook
// order, rows top to bottom, personnel columns left to right, regardless of
// the Parallel option.
func ExtractWorkbook(f *excelize.File, opts Options) (*models.ExtractionResult, error) {
	sheetList := f.GetSheetList()
	classifier := parser.NewClassifier(opts.Placeholders)

	// GetRows is not safe for concurrent use, so sheets are read up front and
	// only the parsing fans out. A sheet that cannot be read is skipped like
	// one without a header; only failing to open the workbook is fatal.
	grids := make([][][]string, len(sheetList))
	readFailed := make([]bool, len(sheetList))
	for i, name := range sheetList {
		rows, err := f.GetRows(name)
		if err != nil {
			log.Warnf("%v, skipping", NewSheetError(name, "rows", err))
			readFailed[i] = true
			continue
		}
		grids[i] = rows
	}

	results := make([]sheetResult, len(sheetList))
	extractOne := func(i int) {
		if readFailed[i] {
			results[i] = sheetResult{skipped: true}
			return
		}
		results[i] = extractSheet(sheetList[i], grids[i], classifier, opts)
	}

	if opts.Parallel {
		var g errgroup.Group
		for i := range sheetList {
			g.Go(func() error {
				extractOne(i)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range sheetList {
			extractOne(i)
		}
	}

	result := &models.ExtractionResult{
		Records:       []models.Record{},
		AccountCounts: make(map[string]int),
	}
	for i, sr := range results {
		if sr.skipped {
			result.SkippedSheets = append(result.SkippedSheets, sheetList[i])
			continue
		}
		result.Records = append(result.Records, sr.records...)
		result.SheetCounts = append(result.SheetCounts, sr.diag)
		for _, rec := range sr.records {
			result.AccountCounts[rec.Account]++
		}
	}
	return result, nil
}

// extractSheet runs header resolution and row extraction for one sheet.
func extractSheet(name string, rows [][]string, classifier *parser.Classifier, opts Options) sheetResult {
	header, err := resolveHeader(rows, opts)
	if err != nil {
		if errors.Is(err, ErrHeaderNotFound) {
			log.Warnf("sheet %q: header not found, skipping", name)
			return sheetResult{skipped: true}
		}
		log.Warnf("sheet %q: %v, skipping", name, err)
		return sheetResult{skipped: true}
	}

	var categoryRow []string
	if header.CategoryRow >= 0 && header.CategoryRow < len(rows) {
		categoryRow = rows[header.CategoryRow]
	}
	rc := &parser.RowContext{
		SheetName:  name,
		Header:     header,
		Roles:      parser.BuildRoleMap(categoryRow, rows[header.RoleRow]),
		Classifier: classifier,
	}

	start := header.RoleRow + 1
	end := len(rows)
	if opts.MaxDataRows > 0 && start+opts.MaxDataRows < end {
		end = start + opts.MaxDataRows
	}

	sr := sheetResult{diag: models.SheetDiagnostics{SheetName: name}}
	for r := start; r < end; r++ {
		recs := rc.ExtractRow(rows[r])
		if len(recs) == 0 {
			continue
		}
		sr.records = append(sr.records, recs...)
		sr.diag.PersonnelCount += len(recs)
		sr.diag.DataRows++
	}
	log.Debugf("sheet %q: %d people across %d rows", name, sr.diag.PersonnelCount, sr.diag.DataRows)
	return sr
}

// resolveHeader applies the configured header strategy.
func resolveHeader(rows [][]string, opts Options) (parser.SheetHeader, error) {
	switch opts.Strategy {
	case StrategyLabelSearch:
		return parser.ResolveHeaderByLabels(rows, parser.HeaderLabels{
			Account:    opts.Labels.Account,
			ClientType: opts.Labels.ClientType,
			Leader:     opts.Labels.Leader,
			Manager:    opts.Labels.Manager,
		})
	default:
		return parser.ResolveFixedHeader(rows, parser.FixedLayout{
			CategoryRow:       opts.FixedCategoryRow,
			RoleRow:           opts.FixedRoleRow,
			AccountCol:        opts.FixedAccountColumn,
			ClientTypeCol:     opts.FixedClientTypeColumn,
			LeaderCol:         opts.FixedLeaderColumn,
			ManagerCol:        opts.FixedManagerColumn,
			FirstPersonnelCol: opts.FixedFirstPersonnelColumn,
		})
	}
}

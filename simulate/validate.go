package simulate

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/stellarkit/contract-sim/wasm"
)

// ValidateModule streams the module bytes section by section and accumulates
// a structural report. Decode failures at the section level are recorded and
// the scan moves on to the next section; validity is judged only at the end,
// after the post-scan policy checks. The report is always fully populated
// with whatever was decoded before any failure point.
func ValidateModule(data []byte) StructuralReport {
	var rep StructuralReport

	s, err := wasm.NewScanner(data)
	if err != nil {
		rep.Errors = append(rep.Errors, fmt.Sprintf("WASM parsing error: %v", err))
	} else {
		if s.Version() != wasm.Version {
			rep.Warnings = append(rep.Warnings, fmt.Sprintf("Unusual WASM version: %d", s.Version()))
		}
		scanSections(s, &rep)
	}

	// Policy checks run regardless of decode errors.
	if rep.FunctionCount == 0 {
		rep.Errors = append(rep.Errors, "No functions found in WASM binary")
	}
	if len(rep.ExportNames) == 0 {
		rep.Warnings = append(rep.Warnings, "No exported functions found")
	}

	rep.Valid = len(rep.Errors) == 0

	Logger().Debug("structural scan complete",
		zap.Bool("valid", rep.Valid),
		zap.Uint32("functions", rep.FunctionCount),
		zap.Uint32("tables", rep.TableCount),
		zap.Uint64("memory_pages", rep.MemoryPages),
		zap.Int("errors", len(rep.Errors)),
		zap.Int("warnings", len(rep.Warnings)))

	return rep
}

func scanSections(s *wasm.Scanner, rep *StructuralReport) {
	for {
		sec, err := s.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			// A framing error ends the scan: the next section boundary can
			// no longer be located.
			rep.Errors = append(rep.Errors, fmt.Sprintf("WASM parsing error: %v", err))
			return
		}

		switch sec.ID {
		case wasm.SectionFunction:
			count, err := wasm.EntryCount(sec)
			if err != nil {
				rep.Errors = append(rep.Errors, fmt.Sprintf("WASM parsing error: %v", err))
				continue
			}
			rep.FunctionCount = count

		case wasm.SectionTable:
			count, err := wasm.EntryCount(sec)
			if err != nil {
				rep.Errors = append(rep.Errors, fmt.Sprintf("WASM parsing error: %v", err))
				continue
			}
			rep.TableCount = count

		case wasm.SectionData:
			count, err := wasm.EntryCount(sec)
			if err != nil {
				rep.Errors = append(rep.Errors, fmt.Sprintf("WASM parsing error: %v", err))
				continue
			}
			rep.DataSectionEntries = count

		case wasm.SectionMemory:
			memories, err := wasm.ParseMemories(sec)
			for _, m := range memories {
				rep.MemoryPages = m.Min
			}
			if err != nil {
				rep.Errors = append(rep.Errors, fmt.Sprintf("WASM parsing error: %v", err))
			}

		case wasm.SectionExport:
			exports, err := wasm.ParseExports(sec)
			for _, exp := range exports {
				rep.ExportNames = append(rep.ExportNames, exp.Name)
			}
			if err != nil {
				rep.Errors = append(rep.Errors, fmt.Sprintf("WASM parsing error: %v", err))
			}

		case wasm.SectionImport:
			imports, err := wasm.ParseImports(sec)
			for _, imp := range imports {
				rep.ImportNames = append(rep.ImportNames, imp.Module+"::"+imp.Name)
			}
			if err != nil {
				rep.Errors = append(rep.Errors, fmt.Sprintf("WASM parsing error: %v", err))
			}

		case wasm.SectionCode:
			count, err := wasm.EntryCount(sec)
			if err != nil {
				rep.Errors = append(rep.Errors, fmt.Sprintf("WASM parsing error: %v", err))
				continue
			}
			if count == 0 {
				rep.Warnings = append(rep.Warnings, "No code section found - contract may be empty")
			}

		default:
			// Unrecognized or irrelevant sections are skipped, not errors.
		}
	}
}

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go-process-dashboard/internal/config"
	"go-process-dashboard/internal/dataset"
	"go-process-dashboard/internal/engine"
	"go-process-dashboard/internal/model"
)

// Output is the machine-readable run summary emitted on stdout.
type Output struct {
	Success       bool   `json:"success"`
	OutputFile    string `json:"output_file,omitempty"`
	RowCount      int    `json:"row_count"`
	DegradedCells int    `json:"degraded_cells,omitempty"`
	Duration      string `json:"duration"`
	Error         string `json:"error,omitempty"`
}

func main() {
	start := time.Now()

	excelPath := flag.String("excel", config.DefaultExcelPath, "source spreadsheet path")
	sheetName := flag.String("sheet", config.DefaultSheetName, "sheet to read")
	format := flag.String("format", "xlsx", "output format: xlsx or pdf")
	outPath := flag.String("out", "", "output file (default ./controle_processos_filtrado.<format>)")
	secretariat := flag.String("secretariat", "", "filter: secretariat")
	agency := flag.String("agency", "", "filter: agency")
	campaign := flag.String("campaign", "", "filter: campaign")
	month := flag.Int("month", 0, "filter: competency month (1-12)")
	year := flag.Int("year", 0, "filter: competency year")
	from := flag.String("from", "", "filter: commitment date from (YYYY-MM-DD)")
	to := flag.String("to", "", "filter: commitment date to (YYYY-MM-DD)")
	search := flag.String("q", "", "filter: search over process id and observation")
	flag.Parse()

	if *format != "xlsx" && *format != "pdf" {
		emitJSON(Output{
			Success:  false,
			Error:    fmt.Sprintf("unknown format %q (want xlsx or pdf)", *format),
			Duration: time.Since(start).String(),
		})
		os.Exit(1)
	}
	if *outPath == "" {
		*outPath = "./controle_processos_filtrado." + *format
	}

	sel := model.FilterSelection{
		Secretariat:     *secretariat,
		Agency:          *agency,
		Campaign:        *campaign,
		CompetencyMonth: *month,
		CompetencyYear:  *year,
		SearchText:      *search,
	}
	if t, err := time.Parse("2006-01-02", *from); err == nil {
		sel.CommitmentFrom = &t
	}
	if t, err := time.Parse("2006-01-02", *to); err == nil {
		sel.CommitmentTo = &t
	}

	ds, stats, err := dataset.Load(*excelPath, *sheetName)
	if err != nil {
		emitJSON(Output{
			Success:  false,
			Error:    fmt.Sprintf("load failed: %v", err),
			Duration: time.Since(start).String(),
		})
		os.Exit(1)
	}

	subset := engine.Apply(ds, sel)

	var buf *bytes.Buffer
	if *format == "pdf" {
		buf, err = engine.WritePDF(subset)
	} else {
		buf, err = engine.WriteXLSX(subset)
	}
	if err != nil {
		emitJSON(Output{
			Success:  false,
			Error:    fmt.Sprintf("export failed: %v", err),
			Duration: time.Since(start).String(),
		})
		os.Exit(1)
	}
	if err := os.WriteFile(*outPath, buf.Bytes(), 0644); err != nil {
		emitJSON(Output{
			Success:  false,
			Error:    fmt.Sprintf("write failed: %v", err),
			Duration: time.Since(start).String(),
		})
		os.Exit(1)
	}

	emitJSON(Output{
		Success:       true,
		OutputFile:    *outPath,
		RowCount:      len(subset),
		DegradedCells: stats.DegradedCells,
		Duration:      time.Since(start).String(),
	})
}

func emitJSON(out Output) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("failed to encode output: %v", err)
	}
}

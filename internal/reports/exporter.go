package reports

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	ledgerSheet  = "Ledger"

	currencyFormat = "#,##0.00"
	dateNumFmt     = 14 // mm-dd-yy
)

// ledgerWorkbook builds the fund-flow XLSX export: a summary sheet with
// per-level and per-type totals, and a ledger sheet listing every
// transaction.
type ledgerWorkbook struct {
	file *excelize.File
}

func newLedgerWorkbook() *ledgerWorkbook {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", summarySheet)
	return &ledgerWorkbook{file: f}
}

func (w *ledgerWorkbook) headerStyle() (int, error) {
	return w.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
}

func (w *ledgerWorkbook) writeHeader(sheet string, columns []string) error {
	styleID, err := w.headerStyle()
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := w.file.SetCellValue(sheet, cell, col); err != nil {
			return err
		}
		w.file.SetCellStyle(sheet, cell, cell, styleID)
	}

	return w.file.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func (w *ledgerWorkbook) writeSummary(summary *FundFlowSummary) error {
	if err := w.writeHeader(summarySheet, []string{"Level", "Inflow", "Outflow", "Transactions"}); err != nil {
		return err
	}

	amountFmt := currencyFormat
	amountStyle, err := w.file.NewStyle(&excelize.Style{CustomNumFmt: &amountFmt})
	if err != nil {
		return err
	}

	row := 2
	for _, lt := range summary.ByLevel {
		w.file.SetCellValue(summarySheet, cellAt(1, row), string(lt.Level))
		w.file.SetCellValue(summarySheet, cellAt(2, row), lt.Inflow.InexactFloat64())
		w.file.SetCellValue(summarySheet, cellAt(3, row), lt.Outflow.InexactFloat64())
		w.file.SetCellValue(summarySheet, cellAt(4, row), lt.Transactions)
		w.file.SetCellStyle(summarySheet, cellAt(2, row), cellAt(3, row), amountStyle)
		row++
	}

	row++
	w.file.SetCellValue(summarySheet, cellAt(1, row), "By type")
	row++
	for _, tt := range summary.ByType {
		w.file.SetCellValue(summarySheet, cellAt(1, row), tt.Type)
		w.file.SetCellValue(summarySheet, cellAt(2, row), tt.Amount.InexactFloat64())
		w.file.SetCellValue(summarySheet, cellAt(4, row), tt.Count)
		w.file.SetCellStyle(summarySheet, cellAt(2, row), cellAt(2, row), amountStyle)
		row++
	}

	row++
	w.file.SetCellValue(summarySheet, cellAt(1, row), "Total amount")
	w.file.SetCellValue(summarySheet, cellAt(2, row), summary.TotalAmount.InexactFloat64())
	w.file.SetCellStyle(summarySheet, cellAt(2, row), cellAt(2, row), amountStyle)
	row++
	w.file.SetCellValue(summarySheet, cellAt(1, row), "Pending UCs")
	w.file.SetCellValue(summarySheet, cellAt(2, row), summary.PendingUCs)

	w.file.SetColWidth(summarySheet, "A", "A", 22)
	w.file.SetColWidth(summarySheet, "B", "D", 16)
	return nil
}

func (w *ledgerWorkbook) writeLedger(rows []LedgerRow) error {
	if _, err := w.file.NewSheet(ledgerSheet); err != nil {
		return err
	}

	columns := []string{"Date", "Project", "Type", "From", "To", "Amount", "Status", "UC Status", "UTR"}
	if err := w.writeHeader(ledgerSheet, columns); err != nil {
		return err
	}

	dateStyle, err := w.file.NewStyle(&excelize.Style{NumFmt: dateNumFmt})
	if err != nil {
		return err
	}
	amountFmt := currencyFormat
	amountStyle, err := w.file.NewStyle(&excelize.Style{CustomNumFmt: &amountFmt})
	if err != nil {
		return err
	}

	for i, lr := range rows {
		rowNum := i + 2
		w.file.SetCellValue(ledgerSheet, cellAt(1, rowNum), lr.Date)
		w.file.SetCellStyle(ledgerSheet, cellAt(1, rowNum), cellAt(1, rowNum), dateStyle)
		if lr.ProjectName != nil {
			w.file.SetCellValue(ledgerSheet, cellAt(2, rowNum), *lr.ProjectName)
		}
		w.file.SetCellValue(ledgerSheet, cellAt(3, rowNum), lr.Type)
		w.file.SetCellValue(ledgerSheet, cellAt(4, rowNum), string(lr.FromLevel))
		w.file.SetCellValue(ledgerSheet, cellAt(5, rowNum), string(lr.ToLevel))
		w.file.SetCellValue(ledgerSheet, cellAt(6, rowNum), lr.Amount.InexactFloat64())
		w.file.SetCellStyle(ledgerSheet, cellAt(6, rowNum), cellAt(6, rowNum), amountStyle)
		w.file.SetCellValue(ledgerSheet, cellAt(7, rowNum), lr.Status)
		w.file.SetCellValue(ledgerSheet, cellAt(8, rowNum), lr.UCStatus)
		if lr.UTR != nil {
			w.file.SetCellValue(ledgerSheet, cellAt(9, rowNum), *lr.UTR)
		}
	}

	if len(rows) > 0 {
		lastCol, _ := excelize.CoordinatesToCellName(len(columns), len(rows)+1)
		w.file.AutoFilter(ledgerSheet, "A1:"+lastCol, nil)
	}

	w.file.SetColWidth(ledgerSheet, "A", "A", 12)
	w.file.SetColWidth(ledgerSheet, "B", "B", 30)
	w.file.SetColWidth(ledgerSheet, "C", "I", 16)
	return nil
}

func (w *ledgerWorkbook) writeTo(out io.Writer) error {
	defer w.file.Close()
	return w.file.Write(out)
}

func cellAt(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return cell
}

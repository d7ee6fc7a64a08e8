// Package render turns the latest committed snapshot into a paper
// artifact. It plays the host-environment side of the export contract:
// the editor fires RequestRender and never waits on the outcome.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	mcfg "github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/smallbiznis/invoicedesk/internal/config"
	"github.com/smallbiznis/invoicedesk/internal/invoice/calc"
	"github.com/smallbiznis/invoicedesk/internal/invoice/domain"
	"github.com/smallbiznis/invoicedesk/internal/invoice/format"
	"go.uber.org/zap"
)

// DocumentSource hands the renderer the latest committed snapshot with
// its totals, as one consistent tuple.
type DocumentSource interface {
	Snapshot() (domain.Document, calc.Totals)
}

// PDFRenderer writes the current document as a PDF into the export
// directory.
type PDFRenderer struct {
	source DocumentSource
	dir    string
	log    *zap.Logger
}

func NewPDFRenderer(cfg config.Config, source DocumentSource, log *zap.Logger) *PDFRenderer {
	return &PDFRenderer{
		source: source,
		dir:    cfg.ExportDir,
		log:    log,
	}
}

// RequestRender renders whatever was last committed. Failures are
// logged and never reported back to the editor.
func (r *PDFRenderer) RequestRender() {
	doc, totals := r.source.Snapshot()

	data, err := r.generate(doc, totals)
	if err != nil {
		r.log.Error("invoice render failed", zap.Error(err))
		return
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		r.log.Error("export dir unavailable", zap.String("dir", r.dir), zap.Error(err))
		return
	}

	path := filepath.Join(r.dir, fileName(doc.Number))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		r.log.Error("export write failed", zap.String("path", path), zap.Error(err))
		return
	}

	r.log.Info("invoice exported", zap.String("path", path))
}

func (r *PDFRenderer) generate(doc domain.Document, totals calc.Totals) ([]byte, error) {
	cfg := mcfg.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, "Invoice", props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	// Invoice meta
	m.AddRow(18,
		col.New(6).Add(
			text.New("Invoice number: "+doc.Number, props.Text{Top: 0}),
			text.New("Date: "+doc.Date, props.Text{Top: 4}),
			text.New("Due date: "+doc.DueDate, props.Text{Top: 8}),
		),
		col.New(6),
	)

	// Parties
	m.AddRow(35,
		col.New(6).Add(
			text.New(doc.Sender.Name, props.Text{Style: fontstyle.Bold}),
			text.New(doc.Sender.Email, props.Text{Top: 5}),
			text.New(doc.Sender.Address, props.Text{Top: 9}),
			text.New(doc.Sender.Phone, props.Text{Top: 13}),
		),
		col.New(6).Add(
			text.New("Bill to", props.Text{Style: fontstyle.Bold}),
			text.New(doc.Client.Name, props.Text{Top: 5}),
			text.New(doc.Client.Email, props.Text{Top: 9}),
			text.New(doc.Client.Address, props.Text{Top: 13}),
		),
	)

	// Table header
	m.AddRow(10,
		text.NewCol(6, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qty/Hrs", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Rate", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, item := range doc.Items {
		m.AddRow(12,
			text.NewCol(6, item.Description, props.Text{Size: 9}),
			text.NewCol(2, format.Quantity(item.Quantity), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, format.Money(doc.CurrencySymbol, item.Rate), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, format.Money(doc.CurrencySymbol, item.Amount()), props.Text{Size: 9, Align: align.Right}),
		)
	}

	// Totals
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Subtotal", props.Text{Size: 9}),
		text.NewCol(2, format.Money(doc.CurrencySymbol, totals.Subtotal), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, fmt.Sprintf("Tax (%s%%)", format.Quantity(doc.TaxRate)), props.Text{Size: 9}),
		text.NewCol(2, format.Money(doc.CurrencySymbol, totals.TaxAmount), props.Text{Size: 9, Align: align.Right}),
	)
	m.AddRow(10,
		col.New(8),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 10}),
		text.NewCol(2, format.Money(doc.CurrencySymbol, totals.Total), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right}),
	)

	// Payment details
	m.AddRow(30,
		col.New(12).Add(
			text.New("Payment details", props.Text{Style: fontstyle.Bold, Top: 4}),
			text.New("Bank: "+doc.PaymentInfo.BankName, props.Text{Size: 9, Top: 9}),
			text.New("Account name: "+doc.PaymentInfo.AccountName, props.Text{Size: 9, Top: 13}),
			text.New("Account no: "+doc.PaymentInfo.AccountNumber, props.Text{Size: 9, Top: 17}),
			text.New(string(doc.PaymentInfo.CodeType)+": "+doc.PaymentInfo.SwiftCode, props.Text{Size: 9, Top: 21}),
			text.New("UPI: "+doc.PaymentInfo.UpiID, props.Text{Size: 9, Top: 25}),
		),
	)

	if doc.PaymentInfo.Notes != "" {
		m.AddRow(14,
			text.NewCol(12, doc.PaymentInfo.Notes, props.Text{Size: 8, Top: 2}),
		)
	}

	out, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return out.GetBytes(), nil
}

// fileName derives a safe export file name from the invoice number.
func fileName(number string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, strings.TrimSpace(number))
	if cleaned == "" {
		cleaned = "invoice"
	}
	return cleaned + ".pdf"
}

// NoOpRenderer discards render requests. Used when the host runs
// headless and in tests.
type NoOpRenderer struct{}

func (NoOpRenderer) RequestRender() {}

package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotePDF creates the quotation PDF using maroto/v2. The figures are
// the same print-currency projection the print view shows.
func GenerateQuotePDF(data QuoteExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Sayfa {current} / {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, data)
	addQuoteContactBlock(m, data)
	addQuoteItemsTable(m, data)
	addQuoteTotals(m, data)
	addQuoteFooter(m)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quote PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuoteHeader adds the shop name, document title and quote number.
func addQuoteHeader(m core.Maroto, data QuoteExportData) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New("TeknoFix Bilgisayar", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New("FIYAT TEKLIFI", props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New("Bilgisayar ve Elektronik Tamir Servisi", props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Teklif No: %s", data.QuoteNumber), props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)

	m.AddRows(row.New(3))
}

// addQuoteContactBlock adds the customer company block and the quote date.
func addQuoteContactBlock(m core.Maroto, data QuoteExportData) {
	labelStyle := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 100, Green: 100, Blue: 100},
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Left,
	}
	rightValueStyle := props.Text{
		Size:  8,
		Align: align.Right,
	}

	m.AddRows(
		row.New(5).Add(
			col.New(6).Add(text.New("FIRMA", labelStyle)),
			col.New(6).Add(text.New(fmt.Sprintf("Tarih: %s", data.QuoteDate), rightValueStyle)),
		),
		row.New(5).Add(
			col.New(6).Add(text.New(data.CompanyName, valueStyle)),
			col.New(6).Add(text.New(fmt.Sprintf("Para Birimi: %s", data.Currency), rightValueStyle)),
		),
	)

	if data.City != "" || data.Phone != "" {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(
					text.New(joinNonEmpty([]string{data.City, data.Phone}, " | "), valueStyle),
				),
			),
		)
	}

	m.AddRows(row.New(4))
}

// addQuoteItemsTable adds the line item table: only the public fields, in the
// print currency.
func addQuoteItemsTable(m core.Maroto, data QuoteExportData) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("No", headerText)).WithStyle(&headerCell),
			col.New(6).Add(text.New("Malzeme / Hizmet", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Adet", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Birim Fiyat", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Tutar", headerText)).WithStyle(&headerCell),
		),
	)

	altBg := &props.Color{Red: 248, Green: 249, Blue: 250}

	for i, r := range data.Rows {
		bodyText := props.Text{Size: 7, Align: align.Center}
		bodyTextLeft := props.Text{Size: 7, Align: align.Left}
		bodyTextRight := props.Text{Size: 7, Align: align.Right}

		var cellStyle *props.Cell
		if i%2 == 1 {
			cellStyle = &props.Cell{BackgroundColor: altBg}
		}

		colNo := col.New(1).Add(text.New(fmt.Sprintf("%d", r.No), bodyText))
		colDesc := col.New(6).Add(text.New(r.Description, bodyTextLeft))
		colQty := col.New(1).Add(text.New(r.Qty, bodyText))
		colUnit := col.New(2).Add(text.New(r.UnitPrice, bodyTextRight))
		colTotal := col.New(2).Add(text.New(r.LineTotal, bodyTextRight))

		if cellStyle != nil {
			colNo = colNo.WithStyle(cellStyle)
			colDesc = colDesc.WithStyle(cellStyle)
			colQty = colQty.WithStyle(cellStyle)
			colUnit = colUnit.WithStyle(cellStyle)
			colTotal = colTotal.WithStyle(cellStyle)
		}

		m.AddRows(row.New(7).Add(colNo, colDesc, colQty, colUnit, colTotal))
	}

	m.AddRows(row.New(2))
}

// addQuoteTotals adds the right-aligned totals block.
func addQuoteTotals(m core.Maroto, data QuoteExportData) {
	summaryBg := &props.Color{Red: 245, Green: 245, Blue: 245}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Right,
	}

	m.AddRows(
		row.New(7).Add(
			col.New(9).Add(text.New("Ara Toplam", labelStyle)).WithStyle(summaryCell),
			col.New(3).Add(text.New(data.Subtotal, valueStyle)).WithStyle(summaryCell),
		),
		row.New(7).Add(
			col.New(9).Add(text.New(fmt.Sprintf("KDV (%s)", data.KDVPercent), labelStyle)).WithStyle(summaryCell),
			col.New(3).Add(text.New(data.KDV, valueStyle)).WithStyle(summaryCell),
		),
	)

	grandBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	grandCell := &props.Cell{BackgroundColor: grandBg}
	grandStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}

	m.AddRows(
		row.New(8).Add(
			col.New(9).Add(text.New("GENEL TOPLAM", grandStyle)).WithStyle(grandCell),
			col.New(3).Add(text.New(data.GrandTotal, grandStyle)).WithStyle(grandCell),
		),
	)

	m.AddRows(row.New(3))
}

// addQuoteFooter adds the validity note.
func addQuoteFooter(m core.Maroto) {
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New("Bu teklif 15 gun gecerlidir. Fiyatlara isçilik dahildir.", props.Text{
					Size:  7,
					Style: fontstyle.Italic,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
	)
}

// joinNonEmpty joins the non-empty strings with the separator.
func joinNonEmpty(parts []string, sep string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += sep
		}
		out += p
	}
	return out
}

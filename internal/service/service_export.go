package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gchalakovmmi/nap/internal/config"
	"github.com/gchalakovmmi/nap/internal/docx"
	"github.com/gchalakovmmi/nap/internal/logger"
	"github.com/gchalakovmmi/nap/internal/store"
	"github.com/gchalakovmmi/nap/models"
)

// Fixed layout of the exported appendix. The letterhead prose comes from
// configuration; the measurements come from the agency template.
const (
	exportMarginCm     = 2.0
	exportTitleSizePt  = 14
	exportHeaderSizePt = 12
	exportFooterSizePt = 9

	letterheadSeparator = "________________________________________________"
)

// exportTableWidthsCm are the column widths of each group's price table:
// row number, item name, sale price with VAT, purchase price without VAT.
var exportTableWidthsCm = []float64{1.5, 8, 3, 3}

// exportService is the concrete implementation of ExportService. It joins the
// persisted groups with the catalog snapshot and renders one numbered price
// table per non-empty group.
type exportService struct {
	groups  store.GroupRepository
	catalog CatalogService

	// letterhead holds the deployment-specific prose printed above the
	// tables and in the page footer.
	letterhead config.Export

	logger *logger.Logger

	// now is the clock used for the document date and filename. Overridable
	// in tests.
	now func() time.Time
}

// NewExportService constructs an ExportService rendering the configured
// letterhead.
func NewExportService(groups store.GroupRepository, catalog CatalogService, cfg config.Export, logger *logger.Logger) ExportService {
	return &exportService{
		groups:     groups,
		catalog:    catalog,
		letterhead: cfg,
		logger:     logger,
		now:        time.Now,
	}
}

func (e *exportService) BuildDocument(ctx context.Context) (string, []byte, error) {
	log := logger.FromContext(ctx)

	groups, err := e.groups.GetGroups(ctx)
	if err != nil {
		log.Err(err).Msg("listing groups for export ended with error")
		return "", nil, fmt.Errorf("listing groups for export ended with error: %w", err)
	}
	if len(groups) == 0 {
		return "", nil, ErrNoGroupsFound
	}

	items, err := e.catalog.Items(ctx)
	if err != nil {
		log.Err(err).Msg("loading catalog for export ended with error")
		return "", nil, fmt.Errorf("loading catalog for export ended with error: %w", err)
	}
	itemsByID := make(map[string]models.Item, len(items))
	for _, item := range items {
		itemsByID[item.ID] = item
	}

	doc := docx.New()
	doc.SetPageMarginsCm(exportMarginCm, exportMarginCm, exportMarginCm, exportMarginCm)
	e.writeLetterhead(doc)

	for i, group := range groups {
		itemIDs, err := e.groups.GetItems(ctx, group.ID)
		if err != nil {
			log.Err(err).Int64("groupID", group.ID).Msg("listing group items for export ended with error")
			return "", nil, fmt.Errorf("listing group items for export ended with error: %w", err)
		}
		if len(itemIDs) == 0 {
			continue
		}

		e.writeGroupTable(doc, i+1, group.Name, itemIDs, itemsByID)
	}

	doc.SetFooter(e.letterhead.Footer, exportFooterSizePt)

	content, err := doc.Bytes()
	if err != nil {
		log.Err(err).Msg("packaging export document ended with error")
		return "", nil, fmt.Errorf("packaging export document ended with error: %w", err)
	}

	filename := "export_" + e.now().Format("20060102_150405") + ".docx"
	return filename, content, nil
}

// writeLetterhead renders the fixed header block: agency name, directorate
// lines, separator, contact line, protocol appendix reference, audited
// company details, and the document date.
func (e *exportService) writeLetterhead(doc *docx.Document) {
	doc.AddParagraph(docx.AlignCenter, docx.Run{Text: e.letterhead.Title, Bold: true, SizePt: exportTitleSizePt})
	doc.AddParagraph(docx.AlignCenter, docx.Run{Text: e.letterhead.Subtitle, Bold: true, SizePt: exportHeaderSizePt})
	doc.AddParagraph(docx.AlignCenter, docx.Run{Text: e.letterhead.Directorate, Bold: true, SizePt: exportHeaderSizePt})

	doc.AddEmptyParagraph()
	doc.AddParagraph(docx.AlignCenter, docx.Run{Text: letterheadSeparator})
	doc.AddParagraph(docx.AlignCenter, docx.Run{Text: e.letterhead.Address})

	doc.AddText(e.letterhead.Appendix)
	doc.AddText(e.letterhead.Obligee)
	doc.AddText(e.letterhead.EIK)
	doc.AddText(e.letterhead.Site)

	doc.AddText("Данни за цените на продуктите към дата: " + e.now().Format("02.01.2006"))
	doc.AddEmptyParagraph()
}

// writeGroupTable renders one group: a bold "N. Name" header followed by the
// price table. Rows are numbered "N.M" by the item's position in the group;
// items missing from the catalog are skipped but keep their slot in the
// numbering.
func (e *exportService) writeGroupTable(doc *docx.Document, number int, name string, itemIDs []int64, itemsByID map[string]models.Item) {
	doc.AddParagraph("", docx.Run{Text: fmt.Sprintf("%d. %s", number, name), Bold: true})

	table := doc.AddTable(exportTableWidthsCm)
	table.AddRow(
		docx.Cell{Text: "№", Bold: true, Align: docx.AlignCenter},
		docx.Cell{Text: "Марка", Bold: true, Align: docx.AlignCenter},
		docx.Cell{Text: "Продажна цена с ДДС", Bold: true, Align: docx.AlignCenter},
		docx.Cell{Text: "Доставна цена без ДДС", Bold: true, Align: docx.AlignCenter},
	)

	for j, itemID := range itemIDs {
		item, ok := itemsByID[strconv.FormatInt(itemID, 10)]
		if !ok {
			continue
		}

		clientPrice, clientErr := strconv.ParseFloat(item.ClientPrice, 64)
		vendorPrice, vendorErr := strconv.ParseFloat(item.VendorPrice, 64)
		if clientErr != nil || vendorErr != nil {
			clientPrice, vendorPrice = 0, 0
		}

		table.AddRow(
			docx.Cell{Text: fmt.Sprintf("%d.%d", number, j+1), Align: docx.AlignCenter},
			docx.Cell{Text: item.Name},
			docx.Cell{Text: fmt.Sprintf("%.4f", clientPrice), Align: docx.AlignRight},
			docx.Cell{Text: fmt.Sprintf("%.4f", vendorPrice), Align: docx.AlignRight},
		)
	}
	table.Close()

	doc.AddEmptyParagraph()
}

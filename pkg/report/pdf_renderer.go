package report

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/go-pdf/fpdf"
	log "github.com/sirupsen/logrus"

	"github.com/schichtlog/schichtlog/internal/utils"
	"github.com/schichtlog/schichtlog/pkg/analysis"
)

const (
	pageMargin = 20.0
	rowHeight  = 7.0
)

// Column x offsets of the shift table, tuned for landscape A4 (297 mm wide).
var tableColumns = struct {
	date, typeName, timeRange, station, vehicle, hours float64
}{
	date:      pageMargin + 3,
	typeName:  pageMargin + 35,
	timeRange: pageMargin + 80,
	station:   pageMargin + 125,
	vehicle:   pageMargin + 175,
	hours:     pageMargin + 235,
}

// PDFRenderer produces the paginated report document: summary block, distribution
// breakdown, and the itemized shift table with the header repeated on every page.
type PDFRenderer struct {
	clock utils.Clock
}

func NewPDFRenderer(clock utils.Clock) *PDFRenderer {
	return &PDFRenderer{clock: clock}
}

func (r *PDFRenderer) Render(data Data) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageWidth, pageHeight := pdf.GetPageSize()
	pdf.AddPage()

	y := pageMargin

	// breakPage starts a new page when the required space does not fit above the
	// bottom margin.
	breakPage := func(required float64) bool {
		if y+required > pageHeight-pageMargin {
			pdf.AddPage()
			y = pageMargin
			return true
		}
		return false
	}

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(pageMargin, y, tr("Schichttagebuch - Auswertung"))
	y += 10

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(100, 100, 100)
	pdf.Text(pageMargin, y, tr(data.Label))
	y += 10

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(pageMargin, y, pageWidth-pageMargin, y)
	y += 10

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(pageMargin, y, "Zusammenfassung")
	y += 8

	pdf.SetFillColor(245, 245, 245)
	pdf.RoundedRect(pageMargin, y, pageWidth-2*pageMargin, 30, 3, "1234", "F")

	pdf.SetFont("Helvetica", "", 11)
	y += 8
	pdf.Text(pageMargin+5, y, tr(fmt.Sprintf("Geleistete Stunden: %.1f h", data.Stats.ActualHours)))
	y += 7
	pdf.Text(pageMargin+5, y, tr(fmt.Sprintf("Anzahl Schichten: %d", data.Stats.ShiftCount)))
	y += 7
	pdf.Text(pageMargin+5, y, tr(fmt.Sprintf("Soll-Stunden: %.1f h", data.TargetHours)))
	y += 7

	// Saldo, green when at or over target, red otherwise.
	if data.Delta >= 0 {
		pdf.SetTextColor(34, 197, 94)
	} else {
		pdf.SetTextColor(239, 68, 68)
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(pageMargin+5, y, tr(fmt.Sprintf("Saldo: %s h", formatSigned(data.Delta))))
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 11)
	y += 12

	if len(data.Stats.Distribution) > 0 {
		breakPage(15 + float64(len(data.Stats.Distribution))*7)

		pdf.SetFont("Helvetica", "B", 14)
		pdf.Text(pageMargin, y, "Verteilung nach Schichtart")
		y += 8

		pdf.SetFont("Helvetica", "", 11)
		for _, entry := range data.Stats.Distribution {
			breakPage(10)
			percentage := float64(entry.Value) / float64(data.Stats.ShiftCount) * 100
			pdf.Text(pageMargin+5, y, tr(fmt.Sprintf("%s: %d (%.1f%%)", entry.Name, entry.Value, percentage)))
			y += 6
		}
		y += 5
	}

	if len(data.Shifts) > 0 {
		breakPage(20)

		pdf.SetFont("Helvetica", "B", 14)
		pdf.Text(pageMargin, y, "Schichten im Detail")
		y += 10

		drawTableHeader := func() {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.SetFillColor(249, 115, 22)
			pdf.SetTextColor(255, 255, 255)
			pdf.RoundedRect(pageMargin, y-5, pageWidth-2*pageMargin, 8, 2, "1234", "F")
			pdf.Text(tableColumns.date, y, "Datum")
			pdf.Text(tableColumns.typeName, y, "Schichtart")
			pdf.Text(tableColumns.timeRange, y, "Zeit")
			pdf.Text(tableColumns.station, y, "Wache")
			pdf.Text(tableColumns.vehicle, y, "Fahrzeug")
			pdf.Text(tableColumns.hours, y, "Stunden")
			y += 8
			pdf.SetTextColor(0, 0, 0)
			pdf.SetFont("Helvetica", "", 10)
		}
		drawTableHeader()

		nameByTypeId := make(map[string]string, len(data.ShiftTypes))
		for _, t := range data.ShiftTypes {
			nameByTypeId[t.ID] = t.Name
		}

		sorted := make([]shiftRow, 0, len(data.Shifts))
		for _, s := range data.Shifts {
			typeName := nameByTypeId[s.TypeID]
			if typeName == "" {
				typeName = analysis.UnknownTypeName
			}
			sorted = append(sorted, shiftRow{
				date:      formatGermanDate(s.Date),
				sortKey:   s.Date,
				typeName:  typeName,
				timeRange: fmt.Sprintf("%s - %s", s.StartTime, s.EndTime),
				station:   orDash(s.Station),
				vehicle:   normalizeVehicle(s.Vehicle),
				hours:     analysis.CalculateDuration(s.StartTime, s.EndTime),
			})
		}
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].sortKey < sorted[j].sortKey })

		for i, row := range sorted {
			if breakPage(8) {
				drawTableHeader()
			}
			if i%2 == 0 {
				pdf.SetFillColor(250, 250, 250)
				pdf.Rect(pageMargin, y-5, pageWidth-2*pageMargin, rowHeight, "F")
			}
			pdf.Text(tableColumns.date, y, row.date)
			pdf.Text(tableColumns.typeName, y, tr(row.typeName))
			pdf.Text(tableColumns.timeRange, y, row.timeRange)
			pdf.Text(tableColumns.station, y, tr(row.station))
			pdf.Text(tableColumns.vehicle, y, tr(row.vehicle))
			pdf.Text(tableColumns.hours, y, fmt.Sprintf("%.1f h", row.hours))
			y += rowHeight
		}
	}

	now := r.clock.Now()
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(150, 150, 150)
	footer := fmt.Sprintf("Erstellt am %s um %s", now.Format("02.01.2006"), now.Format("15:04:05"))
	pdf.SetXY(0, pageHeight-12)
	pdf.CellFormat(pageWidth, 5, tr(footer), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		err := fmt.Errorf("could not render report: %w", err)
		log.Error(err)
		return nil, err
	}
	return buf.Bytes(), nil
}

type shiftRow struct {
	date      string
	sortKey   string
	typeName  string
	timeRange string
	station   string
	vehicle   string
	hours     float64
}

var (
	vehicleIdPattern      = regexp.MustCompile(`71/(\d)`)
	vehicleRTWPrefix      = regexp.MustCompile(`(?i)^RTW Akkon\s*`)
	vehicleStationPrefix  = regexp.MustCompile(`(?i)^(HBN|Sendling|Hauptwache|Nordwache|Südwache)\s*`)
	maxVehicleLabelLength = 25
)

// normalizeVehicle shortens the free-text vehicle name to its call-sign digits
// ("71/2") when present; otherwise it strips the unit and station prefixes and
// truncates what remains.
func normalizeVehicle(vehicle string) string {
	if vehicle == "" {
		return "-"
	}
	if m := vehicleIdPattern.FindStringSubmatch(vehicle); m != nil {
		return "71/" + m[1]
	}

	vehicle = vehicleRTWPrefix.ReplaceAllString(vehicle, "")
	vehicle = vehicleStationPrefix.ReplaceAllString(vehicle, "")
	vehicle = strings.TrimSpace(vehicle)
	if runes := []rune(vehicle); len(runes) > maxVehicleLabelLength {
		vehicle = string(runes[:maxVehicleLabelLength-3]) + "..."
	}
	if vehicle == "" {
		return "-"
	}
	return vehicle
}

// formatGermanDate renders "2006-01-02" as "02.01.2006"; unparseable input comes
// back empty rather than failing the report.
func formatGermanDate(date string) string {
	d, ok := analysis.ParseDate(date, nil)
	if !ok {
		return ""
	}
	return d.Format("02.01.2006")
}

func formatSigned(value float64) string {
	if value > 0 {
		return fmt.Sprintf("+%.1f", value)
	}
	return fmt.Sprintf("%.1f", value)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

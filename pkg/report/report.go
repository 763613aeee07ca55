package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/schichtlog/schichtlog/pkg/analysis"
	"github.com/schichtlog/schichtlog/pkg/settings"
	"github.com/schichtlog/schichtlog/pkg/shift"
)

// Data is everything a renderer needs to produce the report document. It is a plain
// snapshot; rendering has no side effects beyond the returned bytes.
type Data struct {
	Label       string
	Stats       analysis.Stats
	TargetHours float64
	Delta       float64
	Shifts      []shift.Shift
	ShiftTypes  []settings.ShiftType
}

// Renderer turns report data into a binary document.
type Renderer interface {
	Render(data Data) ([]byte, error)
}

// Filename builds the deterministic download name for a report, e.g.
// "Schichttagebuch_März_2025_2025-03-31.pdf".
func Filename(label string, now time.Time) string {
	return fmt.Sprintf("Schichttagebuch_%s_%s.pdf",
		strings.Join(strings.Fields(label), "_"),
		now.Format("2006-01-02"),
	)
}

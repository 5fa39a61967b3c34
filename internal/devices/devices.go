package devices

import "github.com/sbilibin2017/qr-verification-service/internal/models"

// Device classes reported by the breakdown.
const (
	Mobile  = "Mobile"
	Desktop = "Desktop"
	Tablet  = "Tablet"
	Other   = "Other"
)

// Classifier turns a window's scan volume into a device-class breakdown.
// The default implementation is a fixed proportional estimate; a real
// classifier would parse stored user-agent strings and count occurrences.
type Classifier interface {
	Breakdown(totalScans int64) []models.DeviceTypeCount
}

// FixedRatioClassifier scales a constant 65/29/6 split against the
// observed event count. It does not inspect user agents.
type FixedRatioClassifier struct{}

// NewFixedRatioClassifier returns the placeholder classifier.
func NewFixedRatioClassifier() *FixedRatioClassifier {
	return &FixedRatioClassifier{}
}

// Breakdown returns the Mobile/Desktop/Tablet slices of totalScans.
func (c *FixedRatioClassifier) Breakdown(totalScans int64) []models.DeviceTypeCount {
	return []models.DeviceTypeCount{
		{Type: Mobile, Count: totalScans * 65 / 100, Percentage: 65},
		{Type: Desktop, Count: totalScans * 29 / 100, Percentage: 29},
		{Type: Tablet, Count: totalScans * 6 / 100, Percentage: 6},
	}
}

package devices

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedRatioClassifier_Breakdown(t *testing.T) {
	c := NewFixedRatioClassifier()

	got := c.Breakdown(100)
	assert.Len(t, got, 3)

	assert.Equal(t, Mobile, got[0].Type)
	assert.Equal(t, int64(65), got[0].Count)
	assert.Equal(t, 65, got[0].Percentage)

	assert.Equal(t, Desktop, got[1].Type)
	assert.Equal(t, int64(29), got[1].Count)

	assert.Equal(t, Tablet, got[2].Type)
	assert.Equal(t, int64(6), got[2].Count)
}

func TestFixedRatioClassifier_ZeroScans(t *testing.T) {
	c := NewFixedRatioClassifier()

	for _, d := range c.Breakdown(0) {
		assert.Equal(t, int64(0), d.Count)
	}
}

func TestFixedRatioClassifier_FloorsCounts(t *testing.T) {
	c := NewFixedRatioClassifier()

	got := c.Breakdown(7)
	assert.Equal(t, int64(4), got[0].Count) // 7 * 0.65 floored
	assert.Equal(t, int64(2), got[1].Count)
	assert.Equal(t, int64(0), got[2].Count)
}

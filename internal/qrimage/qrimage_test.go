package qrimage

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender_DataURL(t *testing.T) {
	url := "http://localhost:5173/verify/0123456789abcdef0123456789abcdef"

	dataURL, err := Render(url, DefaultOptions())
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(dataURL, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, "data:image/png;base64,"))
	assert.NoError(t, err)
	// PNG signature
	assert.True(t, len(raw) > 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, raw[:4])
}

func TestRender_Deterministic(t *testing.T) {
	url := "http://localhost:5173/verify/0123456789abcdef0123456789abcdef"

	first, err := Render(url, DefaultOptions())
	assert.NoError(t, err)
	second, err := Render(url, DefaultOptions())
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRender_EmptyURL(t *testing.T) {
	_, err := Render("", DefaultOptions())
	assert.Error(t, err)
}

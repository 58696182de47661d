package upload

import (
	"bytes"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PDFInspector validates PDFs with pdfcpu.
type PDFInspector struct{}

func (PDFInspector) PageCount(data []byte) (int, error) {
	return api.PageCount(bytes.NewReader(data), nil)
}

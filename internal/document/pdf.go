package document

import (
	"bytes"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

var disableConfigDir sync.Once

// pdfConfig keeps pdfcpu away from the user's config directory and tolerant
// of the slightly broken PDFs office printers receive every day.
func pdfConfig() *model.Configuration {
	disableConfigDir.Do(api.DisableConfigDir)
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

func countPDF(data []byte) (int, error) {
	return api.PageCount(bytes.NewReader(data), pdfConfig())
}

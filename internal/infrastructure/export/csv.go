// Package export serializa tablas de reportes a formatos de descarga.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/jhoicas/pinturas-api/internal/application/report"
)

// CSV serializa la tabla como CSV UTF-8 delimitado por comas: fila de
// encabezados y una fila por registro, con el quoting estándar del formato.
func CSV(t report.Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(t.Header); err != nil {
		return nil, fmt.Errorf("csv: escribir encabezado: %w", err)
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("csv: escribir fila: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: flush: %w", err)
	}
	return buf.Bytes(), nil
}

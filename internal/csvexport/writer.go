package csvexport

import (
	"encoding/csv"
	"io"
	"strconv"

	"sentsplit/internal/splitter"
)

// columns defines the CSV header row.
var columns = []string{
	"Document",
	"Sentence Number",
	"Sentence",
	"Math",
}

// Writer wraps csv.Writer for exporting split sentences as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteSentences writes one row per sentence of a document. Sentence numbers
// are 1-based within the document.
func (w *Writer) WriteSentences(document string, sentences []string) error {
	for i, s := range sentences {
		row := []string{document, strconv.Itoa(i + 1), s, formatBool(splitter.IsMathTagged(s))}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

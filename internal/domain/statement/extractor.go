package statement

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrDocumentParse indicates the uploaded bytes are not a readable PDF.
// It is fatal for the analysis session; no partial results are produced.
var ErrDocumentParse = errors.New("document is not a readable PDF")

// maxTextBytes caps extracted text; statements past this size are not
// statements.
const maxTextBytes = 4 << 20

// ExtractLines converts PDF bytes into an ordered sequence of text lines,
// page order preserved, top-to-bottom within each page. Text fragments on
// the same row are joined with single spaces; lines are neither reordered
// nor deduplicated.
func ExtractLines(data []byte) (lines []string, err error) {
	// The pdf library panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			lines = nil
			err = fmt.Errorf("%w: %v", ErrDocumentParse, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentParse, err)
	}

	total := 0
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		rows, rerr := page.GetTextByRow()
		if rerr != nil {
			return nil, fmt.Errorf("%w: %v", ErrDocumentParse, rerr)
		}

		for _, row := range rows {
			var sb strings.Builder
			for _, word := range row.Content {
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				sb.WriteString(word.S)
			}
			line := strings.TrimSpace(sb.String())
			if line == "" {
				continue
			}
			total += len(line)
			if total > maxTextBytes {
				return lines, nil
			}
			lines = append(lines, line)
		}
	}

	return lines, nil
}

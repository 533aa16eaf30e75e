package statement

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// statementPDF builds a one-page PDF with each line drawn at a distinct
// vertical position, the way bank statements lay out transaction rows.
func statementPDF(t *testing.T, lines []string) []byte {
	t.Helper()

	var content strings.Builder
	content.WriteString("BT\n/F1 12 Tf\n")
	y := 760
	for _, line := range lines {
		fmt.Fprintf(&content, "1 0 0 1 50 %d Tm\n(%s) Tj\n", y, line)
		y -= 16
	}
	content.WriteString("ET")

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 5 0 R >> >> /Contents 4 0 R >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", content.Len(), content.String()),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects)+1)
	for i, obj := range objects {
		offsets[i+1] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xrefPos := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= len(objects); i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(objects)+1, xrefPos)
	return buf.Bytes()
}

func TestExtractLines(t *testing.T) {
	t.Run("OneLinePerStatementRow", func(t *testing.T) {
		want := []string{
			"Statement of Account",
			"05 Jan 24 UPI/Zomato order Ref 991 400.00",
			"06 Jan 24 INTEREST credited 1,000.00",
		}

		lines, err := ExtractLines(statementPDF(t, want))

		require.NoError(t, err)
		assert.Equal(t, want, lines, "rows must come back as separate lines, top to bottom")
	})

	t.Run("RejectsNonPDFBytes", func(t *testing.T) {
		lines, err := ExtractLines([]byte("this is just text, not a pdf"))

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDocumentParse)
		assert.Nil(t, lines)
	})

	t.Run("RejectsEmptyInput", func(t *testing.T) {
		_, err := ExtractLines(nil)
		assert.ErrorIs(t, err, ErrDocumentParse)
	})

	t.Run("RejectsTruncatedHeader", func(t *testing.T) {
		// A valid magic number with nothing behind it must not panic.
		_, err := ExtractLines([]byte("%PDF-1.7"))
		assert.ErrorIs(t, err, ErrDocumentParse)
	})
}

// A multi-transaction statement must survive the whole text pipeline; if
// row boundaries are lost in extraction, grouping collapses everything
// into a single block and all but one transaction vanish.
func TestExtractGroupParsePipeline(t *testing.T) {
	pdfBytes := statementPDF(t, []string{
		"Statement of Account",
		"05 Jan 24 UPI/Zomato order Ref 991 400.00",
		"06 Jan 24 INTEREST credited 1,000.00",
	})

	lines, err := ExtractLines(pdfBytes)
	require.NoError(t, err)

	result := ParseBlocks(GroupBlocks(lines))

	require.Len(t, result.Transactions, 2)
	assert.Zero(t, result.DroppedBlocks())

	first := result.Transactions[0]
	assert.Equal(t, "2024-01-05", first.DateISO())
	assert.True(t, first.Amount.Equal(decimal.RequireFromString("400.00")))
	assert.Equal(t, TypeDebit, first.Type,
		"INTEREST on a later row must not bleed into this transaction")

	second := result.Transactions[1]
	assert.Equal(t, "2024-01-06", second.DateISO())
	assert.True(t, second.Amount.Equal(decimal.RequireFromString("1000.00")))
	assert.Equal(t, TypeCredit, second.Type)
}

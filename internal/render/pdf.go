package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
)

// PDF writes the paginated document using the core Helvetica fonts.
func PDF(w io.Writer, doc *Document, opts Options) error {
	spec := opts.Page.withDefaults()

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: spec.Width, Ht: spec.Height},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("classgrid", true)

	for _, page := range Paginate(doc, opts) {
		pdf.AddPage()
		for _, l := range page.Lines {
			style := ""
			if l.Bold {
				style = "B"
			}
			gray := int(l.Gray * 255)
			pdf.SetFont("Helvetica", style, l.Size)
			pdf.SetTextColor(gray, gray, gray)
			// Paginate measures from the bottom edge; fpdf from the top.
			pdf.Text(l.X, spec.Height-l.Y, toWinAnsi(l.Text))
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

// toWinAnsi re-encodes s for the core fonts, which read Windows-1252 bytes.
// Characters outside Windows-1252 become '?' and control characters spaces.
func toWinAnsi(s string) string {
	var b strings.Builder
	for _, r := range s {
		c, ok := charmap.Windows1252.EncodeRune(r)
		switch {
		case !ok:
			c = '?'
		case c < ' ':
			c = ' '
		}
		b.WriteByte(c)
	}
	return b.String()
}

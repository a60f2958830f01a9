package export

import (
	"bufio"
	"fmt"
	"os"

	"gowkb/internal/errors"
)

// TextWriter writes whitespace-separated "x re im" rows with a small header,
// a format gnuplot and numpy both load directly.
type TextWriter struct{}

// Write saves the sheet to path, replacing any existing file.
func (TextWriter) Write(path string, s Sheet) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.ExportError("text", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "# run %s\n", s.RunID)
	fmt.Fprintf(w, "# potential %s level %d energy %.12g\n", s.Potential, s.Level, s.Energy)
	fmt.Fprintln(w, "# x re im")
	for _, pt := range s.Samples {
		fmt.Fprintf(w, "%.12g %.12g %.12g\n", pt.X, real(pt.Y), imag(pt.Y))
	}

	if err := w.Flush(); err != nil {
		return errors.ExportError("text", err)
	}
	return nil
}

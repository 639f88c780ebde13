package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mj1618/selwatch/internal/model"
)

// WriteText writes one "- <index> <text>" line per selection range, followed
// by "- Caret <text>" when a caret range was found.
func WriteText(w io.Writer, snap model.Snapshot) error {
	bw := bufio.NewWriter(w)
	for _, r := range snap.Selection {
		fmt.Fprintf(bw, "- %d %s\n", r.Index, r.Text)
	}
	if snap.Caret != nil {
		fmt.Fprintf(bw, "- Caret %s\n", *snap.Caret)
	}
	return bw.Flush()
}

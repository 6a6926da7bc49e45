package output

import (
	"io"

	"github.com/punnyland/cornsmith/internal/corn"
)

// Formatter defines the interface for outputting joke ratings.
type Formatter interface {
	Format(w io.Writer, ratings []corn.Rating) error
}

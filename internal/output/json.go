package output

import (
	"encoding/json"
	"io"

	"github.com/punnyland/cornsmith/internal/corn"
)

// JSONFormatter outputs ratings as a JSON array.
type JSONFormatter struct{}

// Format writes ratings as a pretty-printed JSON array.
// An empty slice of ratings produces [].
func (f *JSONFormatter) Format(w io.Writer, ratings []corn.Rating) error {
	if ratings == nil {
		ratings = []corn.Rating{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ratings)
}

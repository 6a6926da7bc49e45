package output

import (
	"fmt"
	"io"

	"github.com/punnyland/cornsmith/internal/corn"
)

// TextFormatter outputs ratings in human-readable text format.
// When Color is true, the level is printed in cyan and the status in
// yellow (ok) or red (invalid).
type TextFormatter struct {
	Color bool
}

// Format writes each rating as a summary line in the pattern:
//
//	level N  confidence C  quality Q  status  joke
//
// followed by indented issue and hint lines when present.
func (f *TextFormatter) Format(w io.Writer, ratings []corn.Rating) error {
	for _, r := range ratings {
		status := "ok"
		if !r.Valid {
			status = "invalid"
		}
		var err error
		if f.Color {
			statusColor := "\033[33m"
			if !r.Valid {
				statusColor = "\033[31m"
			}
			_, err = fmt.Fprintf(w, "\033[36mlevel %d\033[0m  confidence %.2f  quality %3.0f  %s%-7s\033[0m  %s\n",
				r.Level, r.Confidence, r.Quality, statusColor, status, r.Joke)
		} else {
			_, err = fmt.Fprintf(w, "level %d  confidence %.2f  quality %3.0f  %-7s  %s\n",
				r.Level, r.Confidence, r.Quality, status, r.Joke)
		}
		if err != nil {
			return err
		}
		for _, issue := range r.Issues {
			if _, err := fmt.Fprintf(w, "  issue: %s\n", issue); err != nil {
				return err
			}
		}
		for _, rec := range r.Recommendations {
			if _, err := fmt.Fprintf(w, "  hint:  %s\n", rec); err != nil {
				return err
			}
		}
	}
	return nil
}

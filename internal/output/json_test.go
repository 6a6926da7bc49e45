package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/punnyland/cornsmith/internal/corn"
)

func TestJSONFormatter_ValidJSON(t *testing.T) {
	f := &JSONFormatter{}
	var buf bytes.Buffer

	ratings := []corn.Rating{
		{
			Joke:       "What do you call a bear with no teeth? A gummy bear!",
			Valid:      true,
			Level:      3,
			Confidence: 0.48,
			Quality:    72,
			Length:     52,
			PunCount:   1,
		},
	}

	err := f.Format(&buf, ratings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var result []corn.Rating
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, buf.String())
	}
	if len(result) != 1 {
		t.Fatalf("expected 1 element, got %d", len(result))
	}
	if result[0].Level != 3 || result[0].Joke != ratings[0].Joke {
		t.Errorf("round trip changed the rating: %+v", result[0])
	}
}

func TestJSONFormatter_FieldNames(t *testing.T) {
	f := &JSONFormatter{}
	var buf bytes.Buffer

	ratings := []corn.Rating{
		{Joke: "I used to be a banker, but I lost interest.", Valid: true, Level: 1, Confidence: 0.42, Quality: 55, Length: 44},
	}

	if err := f.Format(&buf, ratings); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var rawResult []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rawResult); err != nil {
		t.Fatalf("failed to unmarshal JSON: %v", err)
	}
	if len(rawResult) != 1 {
		t.Fatalf("expected 1 element, got %d", len(rawResult))
	}

	item := rawResult[0]
	expectedFields := []string{"joke", "valid", "corniness_level", "confidence", "quality_score", "length", "pun_count", "structure"}
	for _, field := range expectedFields {
		if _, ok := item[field]; !ok {
			t.Errorf("missing field %q in JSON output", field)
		}
	}
	if item["corniness_level"] != float64(1) {
		t.Errorf("corniness_level: got %v, want %v", item["corniness_level"], 1)
	}
}

func TestJSONFormatter_EmptyRatings(t *testing.T) {
	f := &JSONFormatter{}
	var buf bytes.Buffer

	err := f.Format(&buf, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	trimmed := bytes.TrimSpace(buf.Bytes())
	if string(trimmed) != "[]" {
		t.Errorf("expected raw output to be %q, got %q", "[]", string(trimmed))
	}
}

func TestJSONFormatter_ImplementsFormatter(t *testing.T) {
	var _ Formatter = &JSONFormatter{}
}

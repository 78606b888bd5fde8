// Package questionset loads remote question sets and parses them into the
// canonical question model. Sources are either line-delimited JSON objects
// or CSV; both are normalized into the same shape with best-effort coercion.
package questionset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/yared2/quizbot/internal/domain/entities"
)

// Format is the detected wire format of a question-set payload.
type Format int

const (
	FormatNDJSON Format = iota
	FormatCSV
)

func (f Format) String() string {
	if f == FormatCSV {
		return "csv"
	}
	return "ndjson"
}

// Detect decides the payload format. The source hint (URL or filename) wins
// when it carries a known extension; otherwise the trimmed text is sniffed:
// a leading '{' means NDJSON, anything else is treated as CSV.
func Detect(sourceHint, rawText string) Format {
	hint := strings.ToLower(sourceHint)
	switch {
	case strings.HasSuffix(hint, ".ndjson"), strings.HasSuffix(hint, ".jsonl"):
		return FormatNDJSON
	case strings.HasSuffix(hint, ".csv"):
		return FormatCSV
	}

	if strings.HasPrefix(strings.TrimSpace(rawText), "{") {
		return FormatNDJSON
	}
	return FormatCSV
}

// Parser turns raw NDJSON or CSV text into normalized questions.
type Parser struct {
	logger *zap.Logger
}

// NewParser creates a Parser that reports skipped records to the logger.
func NewParser(logger *zap.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse detects the format of rawText and parses it. Records that cannot be
// decoded are skipped with a diagnostic; the rest of the payload is still
// processed. The result has not yet been filtered for validity — that
// happens when a quiz state is built from it.
func (p *Parser) Parse(rawText, sourceHint string) []entities.Question {
	if Detect(sourceHint, rawText) == FormatCSV {
		return p.parseCSV(rawText)
	}
	return p.parseNDJSON(rawText)
}

// rawRecord is the loosely-typed shape a single source record may arrive
// in. Field aliases: options falls back to choices, answer to correct.
type rawRecord struct {
	ID          any            `json:"id"`
	Question    any            `json:"question"`
	Options     map[string]any `json:"options"`
	Choices     map[string]any `json:"choices"`
	Answer      any            `json:"answer"`
	Correct     any            `json:"correct"`
	Explanation any            `json:"explanation"`
}

func (p *Parser) parseNDJSON(text string) []entities.Question {
	var out []entities.Question

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	n := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n++

		var rec rawRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			p.logger.Warn("skipping bad ndjson line",
				zap.Int("line", n),
				zap.Error(err),
			)
			continue
		}

		out = append(out, normalize(rec, strconv.Itoa(n)))
	}

	return out
}

func (p *Parser) parseCSV(text string) []entities.Question {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil
	}

	// Header names are trimmed and lower-cased to build the column map.
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var out []entities.Question
	rowNum := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			p.logger.Warn("skipping bad csv row", zap.Error(err))
			continue
		}

		blank := true
		for _, v := range row {
			if strings.TrimSpace(v) != "" {
				blank = false
				break
			}
		}
		if blank {
			continue
		}
		rowNum++

		rec := rawRecord{
			ID:       field(row, "id"),
			Question: field(row, "question"),
			Options: map[string]any{
				"a": field(row, "a"),
				"b": field(row, "b"),
				"c": field(row, "c"),
				"d": field(row, "d"),
			},
			Correct:     field(row, "correct"),
			Explanation: field(row, "explanation"),
		}

		out = append(out, normalize(rec, strconv.Itoa(rowNum)))
	}

	return out
}

// normalize coerces a raw record into the canonical question shape: all
// four option keys present as strings, the answer trimmed and lower-cased,
// a missing id replaced by the record's row/line index. Applying it to an
// already-normalized record changes nothing.
func normalize(rec rawRecord, fallbackID string) entities.Question {
	opts := rec.Options
	if opts == nil {
		opts = rec.Choices
	}

	answer := rec.Answer
	if answer == nil {
		answer = rec.Correct
	}

	id := strings.TrimSpace(stringify(rec.ID))
	if id == "" {
		id = fallbackID
	}

	return entities.Question{
		ID:      id,
		Text:    stringify(rec.Question),
		Options: entities.Options{
			A: stringify(opts["a"]),
			B: stringify(opts["b"]),
			C: stringify(opts["c"]),
			D: stringify(opts["d"]),
		},
		Answer:      entities.ChoiceKey(strings.ToLower(strings.TrimSpace(stringify(answer)))),
		Explanation: stringify(rec.Explanation),
	}
}

// stringify renders any JSON-decoded scalar as its display string.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

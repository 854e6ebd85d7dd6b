package output

import (
	"io"

	"github.com/lgbarn/movegen-go/internal/config"
	"github.com/lgbarn/movegen-go/internal/worker"
)

// ResultWriter is the interface for writing analysis results.
type ResultWriter interface {
	// WriteResult writes a single result to the output.
	WriteResult(r worker.ProcessResult) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. For batch writers (like JSON), this also
	// writes any pending output.
	Close() error
}

// New returns the writer for cfg.Format.
func New(w io.Writer, cfg config.OutputConfig) ResultWriter {
	switch cfg.Format {
	case config.JSON:
		return NewJSONWriter(w, cfg)
	case config.NDJSON:
		cfg.Indent = false
		return NewJSONWriterSingle(w, cfg)
	default:
		return NewTextWriter(w, cfg)
	}
}

// TextWriter writes results in the text layout, followed by a summary
// line on Close.
type TextWriter struct {
	w       io.Writer
	cfg     config.OutputConfig
	summary Summary
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteResult writes a result immediately.
func (tw *TextWriter) WriteResult(r worker.ProcessResult) error {
	tw.summary.Add(r)
	return WriteText(tw.w, r, tw.cfg)
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close writes the summary line.
func (tw *TextWriter) Close() error {
	return WriteSummary(tw.w, tw.summary)
}

// JSONWriter buffers results and writes them as one JSON document on
// Close or Flush.
type JSONWriter struct {
	w         io.Writer
	cfg       config.OutputConfig
	positions []*JSONPosition
	summary   Summary
	single    bool // write each result immediately instead of batching
	written   bool
}

// NewJSONWriter creates a new batching JSON writer.
func NewJSONWriter(w io.Writer, cfg config.OutputConfig) *JSONWriter {
	return &JSONWriter{
		w:         w,
		cfg:       cfg,
		positions: make([]*JSONPosition, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes one object per
// result, one per line when indentation is off.
func NewJSONWriterSingle(w io.Writer, cfg config.OutputConfig) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg, single: true}
}

// WriteResult buffers a result (or writes it immediately in single mode).
func (jw *JSONWriter) WriteResult(r worker.ProcessResult) error {
	jp := ResultToJSON(r, jw.cfg.ShowMoves)
	if jw.single {
		return encodeJSON(jw.w, jp, jw.cfg.Indent)
	}
	jw.summary.Add(r)
	jw.positions = append(jw.positions, jp)
	return nil
}

// Flush writes all buffered results as a JSON document. A writer that has
// seen no results still writes one document, with an empty positions list.
func (jw *JSONWriter) Flush() error {
	if jw.single || (len(jw.positions) == 0 && jw.written) {
		return nil
	}
	err := encodeJSON(jw.w, &JSONOutput{Positions: jw.positions, Summary: jw.summary}, jw.cfg.Indent)
	jw.written = true
	jw.positions = jw.positions[:0]
	jw.summary = Summary{}
	return err
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/movegen-go/internal/config"
	"github.com/lgbarn/movegen-go/internal/errors"
	"github.com/lgbarn/movegen-go/internal/testutil"
	"github.com/lgbarn/movegen-go/internal/worker"
)

func analyse(t *testing.T, perftDepth int, fens ...string) []worker.ProcessResult {
	t.Helper()
	a := &worker.Analyzer{PerftDepth: perftDepth}
	results := make([]worker.ProcessResult, len(fens))
	for i, item := range worker.NewItems(fens) {
		results[i] = a.Process(item)
	}
	return results
}

func TestWriteText(t *testing.T) {
	r := analyse(t, 2, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")[0]
	cfg := config.OutputConfig{Format: config.Text, ShowBoard: true, ShowMoves: true}

	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteText(&buf, r, cfg))
	out := buf.String()

	testutil.AssertContains(t, out, "Position 1 (line 1): 4k3/8/8/8/8/8/8/4K3 w - - 0 1\n")
	testutil.AssertContains(t, out, "| k |")
	testutil.AssertContains(t, out, "white to move.\n")
	testutil.AssertContains(t, out, "Legal moves (5): e1")
	testutil.AssertContains(t, out, "Perft(2): ")
	testutil.AssertContains(t, out, "Status: insufficient material\n")
	testutil.AssertContains(t, out, "Zobrist: "+r.Key+"\n")
}

func TestWriteText_Options(t *testing.T) {
	r := analyse(t, 0, testutil.FoolsMateFEN)[0]

	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteText(&buf, r, config.OutputConfig{}))
	out := buf.String()

	testutil.AssertFalse(t, strings.Contains(out, "+---+"), "board should be hidden")
	testutil.AssertContains(t, out, "Legal moves (0)\n")
	testutil.AssertContains(t, out, "Status: checkmate\n")
	testutil.AssertFalse(t, strings.Contains(out, "Perft"), "perft not run")
}

func TestWriteText_Error(t *testing.T) {
	r := analyse(t, 0, "rnbqkbnr/pppppppp w KQkq - 0 1")[0]

	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteText(&buf, r, *config.NewOutputConfig()))

	testutil.AssertContains(t, buf.String(), "Error: position 1")
	testutil.AssertFalse(t, strings.Contains(buf.String(), "Zobrist"))
}

func TestTextWriter_Summary(t *testing.T) {
	results := analyse(t, 0, testutil.StartFEN, testutil.FoolsMateFEN, "bad")

	var buf bytes.Buffer
	w := NewTextWriter(&buf, config.OutputConfig{})
	for _, r := range results {
		testutil.AssertNoError(t, w.WriteResult(r))
	}
	testutil.AssertNoError(t, w.Flush())
	testutil.AssertNoError(t, w.Close())

	testutil.AssertContains(t, buf.String(), "3 positions, 1 errors, 0 duplicates, 1 checkmates, 0 stalemates\n")
}

func TestJSONWriter(t *testing.T) {
	results := analyse(t, 1, testutil.StartFEN, "")
	cfg := config.OutputConfig{Format: config.JSON, ShowMoves: true}

	var buf bytes.Buffer
	w := New(&buf, cfg)
	for _, r := range results {
		testutil.AssertNoError(t, w.WriteResult(r))
	}
	testutil.AssertEqual(t, buf.Len(), 0, "JSON is buffered until Close")
	testutil.AssertNoError(t, w.Close())

	var got JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	testutil.AssertEqual(t, len(got.Positions), 2)

	start := got.Positions[0]
	testutil.AssertEqual(t, start.MoveCount, 20)
	testutil.AssertEqual(t, start.Perft, uint64(20))
	testutil.AssertEqual(t, start.SideToMove, "white")
	testutil.AssertEqual(t, start.LegalMoves[0], "a2a3")
	testutil.AssertEqual(t, start.ID, results[0].ID)
	testutil.AssertTrue(t, start.Standard, "start position has standard material")

	testutil.AssertContains(t, got.Positions[1].Error, errors.ErrEmptyString.Error())
	testutil.AssertEqual(t, got.Summary, Summary{Positions: 2, Errors: 1})
}

func TestJSONWriterSingle(t *testing.T) {
	results := analyse(t, 0, testutil.StartFEN, testutil.KiwipeteFEN)

	var buf bytes.Buffer
	w := NewJSONWriterSingle(&buf, config.OutputConfig{})
	for _, r := range results {
		testutil.AssertNoError(t, w.WriteResult(r))
	}
	testutil.AssertNoError(t, w.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	testutil.AssertEqual(t, len(lines), 2)
	var second JSONPosition
	testutil.AssertNoError(t, json.Unmarshal([]byte(lines[1]), &second))
	testutil.AssertEqual(t, second.MoveCount, 48)
	testutil.AssertEqual(t, len(second.LegalMoves), 0, "moves omitted unless requested")
}

func TestJSONWriter_EmptyInput(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, config.OutputConfig{Format: config.JSON})
	testutil.AssertNoError(t, w.Close())

	var got map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	testutil.AssertEqual(t, string(got["positions"]), "[]")

	var summary Summary
	testutil.AssertNoError(t, json.Unmarshal(got["summary"], &summary))
	testutil.AssertEqual(t, summary, Summary{})
}

func TestJSONWriter_FlushThenClose(t *testing.T) {
	results := analyse(t, 0, testutil.StartFEN)

	var buf bytes.Buffer
	w := New(&buf, config.OutputConfig{Format: config.JSON})
	testutil.AssertNoError(t, w.WriteResult(results[0]))
	testutil.AssertNoError(t, w.Flush())
	testutil.AssertNoError(t, w.Close())

	dec := json.NewDecoder(&buf)
	var docs int
	for dec.More() {
		var doc JSONOutput
		testutil.AssertNoError(t, dec.Decode(&doc))
		docs++
	}
	testutil.AssertEqual(t, docs, 1, "Close after Flush adds no second document")
}

func TestNew_NDJSON(t *testing.T) {
	results := analyse(t, 0, testutil.StartFEN, testutil.FoolsMateFEN)

	var buf bytes.Buffer
	w := New(&buf, config.OutputConfig{Format: config.NDJSON, Indent: true})
	testutil.AssertNoError(t, w.WriteResult(results[0]))
	first := buf.String()
	testutil.AssertTrue(t, strings.HasSuffix(first, "}\n"), "each position is written as it arrives")
	testutil.AssertEqual(t, strings.Count(first, "\n"), 1, "ndjson ignores indentation")

	testutil.AssertNoError(t, w.WriteResult(results[1]))
	testutil.AssertNoError(t, w.Close())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	testutil.AssertEqual(t, len(lines), 2)
	var mate JSONPosition
	testutil.AssertNoError(t, json.Unmarshal([]byte(lines[1]), &mate))
	testutil.AssertTrue(t, mate.Checkmate)
}

func TestResultWriter_Interface(t *testing.T) {
	var buf bytes.Buffer
	var _ ResultWriter = NewTextWriter(&buf, config.OutputConfig{})
	var _ ResultWriter = NewJSONWriter(&buf, config.OutputConfig{})
}

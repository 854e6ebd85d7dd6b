package main

import (
	"testing"

	"github.com/lgbarn/movegen-go/internal/config"
	"github.com/lgbarn/movegen-go/internal/testutil"
)

func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func allSet(string) bool  { return true }
func noneSet(string) bool { return false }

func TestApplyFlags_OnlySetFlagsOverride(t *testing.T) {
	defer saveRestoreInt(workers, 6)()
	defer saveRestoreString(logLevel, "debug")()

	cfg := config.NewConfigBuilder().WithWorkers(2).WithLogLevel("warn").Build()
	applyFlags(cfg, noneSet)

	testutil.AssertEqual(t, cfg.Batch.Workers, 2)
	testutil.AssertEqual(t, cfg.Log.Level, "warn")

	applyFlags(cfg, func(name string) bool { return name == "workers" })
	testutil.AssertEqual(t, cfg.Batch.Workers, 6)
	testutil.AssertEqual(t, cfg.Log.Level, "warn")
}

func TestApplyOutputFlags(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		defer saveRestoreBool(jsonOutput, true)()
		b := config.NewConfigBuilder()
		applyOutputFlags(b, allSet)
		testutil.AssertEqual(t, b.Build().Output.Format, config.JSON)
	})

	t.Run("ndjson wins over json", func(t *testing.T) {
		defer saveRestoreBool(jsonOutput, true)()
		defer saveRestoreBool(ndjson, true)()
		b := config.NewConfigBuilder()
		applyOutputFlags(b, allSet)
		testutil.AssertEqual(t, b.Build().Output.Format, config.NDJSON)
	})

	t.Run("board and moves off", func(t *testing.T) {
		defer saveRestoreBool(noBoard, true)()
		defer saveRestoreBool(noMoves, true)()
		b := config.NewConfigBuilder()
		applyOutputFlags(b, allSet)
		cfg := b.Build()
		testutil.AssertFalse(t, cfg.Output.ShowBoard)
		testutil.AssertFalse(t, cfg.Output.ShowMoves)
		testutil.AssertEqual(t, cfg.Output.Format, config.Text)
	})
}

func TestApplyBatchFlags(t *testing.T) {
	defer saveRestoreInt(perftDepth, 3)()
	defer saveRestoreBool(detectDuplicates, true)()
	defer saveRestoreBool(exactDuplicates, true)()
	defer saveRestoreInt(duplicateCapacity, 1000)()

	b := config.NewConfigBuilder()
	applyBatchFlags(b, allSet)
	cfg := b.Build()

	testutil.AssertEqual(t, cfg.Batch.PerftDepth, 3)
	testutil.AssertEqual(t, cfg.Batch.Duplicates, config.DuplicateConfig{Enabled: true, ExactMatch: true, MaxCapacity: 1000})
}

func TestApplyFlags_KeepsUnrelatedFields(t *testing.T) {
	defer saveRestoreBool(ndjson, true)()

	cfg := config.NewConfigBuilder().WithWorkers(4).WithHistoryFile("h.txt").Build()
	applyFlags(cfg, func(name string) bool { return name == "ndjson" })

	testutil.AssertEqual(t, cfg.Output.Format, config.NDJSON)
	testutil.AssertEqual(t, cfg.Batch.Workers, 4)
	testutil.AssertEqual(t, cfg.REPL.HistoryFile, "h.txt")
	testutil.AssertNoError(t, cfg.Validate())
}

func TestApplyLogAndREPLFlags(t *testing.T) {
	defer saveRestoreString(logFormat, "json")()
	defer saveRestoreString(logFile, "movegen.log")()
	defer saveRestoreString(prompt, "> ")()
	defer saveRestoreString(historyFile, ".movegen_history")()

	cfg := config.NewConfig()
	applyFlags(cfg, allSet)

	testutil.AssertEqual(t, cfg.Log.Format, "json")
	testutil.AssertEqual(t, cfg.Log.File, "movegen.log")
	testutil.AssertEqual(t, cfg.REPL, config.REPLConfig{Prompt: "> ", HistoryFile: ".movegen_history"})
}

func TestLoadConfig_Default(t *testing.T) {
	cfg, err := loadConfig("")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, cfg, config.NewConfig())
}

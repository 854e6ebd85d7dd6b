package hashing

import (
	"sync"
	"testing"

	"github.com/lgbarn/movegen-go/internal/engine"
	"github.com/lgbarn/movegen-go/internal/testutil"
)

func TestThreadSafeDuplicateDetector_Concurrent(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 0)

	const numPositions = 100
	const numWorkers = 10
	perWorker := numPositions / numWorkers

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				detector.CheckAndAdd(engine.NewGameState())
			}
		}()
	}
	wg.Wait()

	testutil.AssertEqual(t, detector.DuplicateCount(), numPositions-1)
	testutil.AssertEqual(t, detector.UniqueCount(), 1)
}

func TestThreadSafeDuplicateDetector_DifferentPositions(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 0)

	fens := []string{
		engine.InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 1",
		"rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
		"rnbqkbnr/pppppppp/8/8/2P5/8/PP1PPPPP/RNBQKBNR b KQkq c3 0 1",
	}
	states := make([]*engine.GameState, len(fens))
	for i, fen := range fens {
		states[i] = testutil.MustGameState(t, fen)
	}

	var wg sync.WaitGroup
	for _, gs := range states {
		wg.Add(1)
		go func(gs *engine.GameState) {
			defer wg.Done()
			detector.CheckAndAdd(gs)
			_ = detector.IsFull()
		}(gs)
	}
	wg.Wait()

	testutil.AssertEqual(t, detector.DuplicateCount(), 0)
	testutil.AssertEqual(t, detector.UniqueCount(), len(fens))
}

func TestThreadSafeDuplicateDetector_MaxCapacity(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 3)

	// Walk forward from the start so every state is new.
	gs := engine.NewGameState()
	var states []*engine.GameState
	for i := 0; i < 6; i++ {
		states = append(states, gs)
		moves := engine.LegalMoves(gs.Position())
		next, err := gs.Apply(moves[len(moves)-1])
		testutil.AssertNoError(t, err)
		gs = next
	}

	var wg sync.WaitGroup
	for _, s := range states {
		wg.Add(1)
		go func(s *engine.GameState) {
			defer wg.Done()
			detector.CheckAndAdd(s)
		}(s)
	}
	wg.Wait()

	testutil.AssertTrue(t, detector.IsFull())
	testutil.AssertEqual(t, detector.UniqueCount(), 3)
}

// Package hashing provides Zobrist keys and duplicate detection for
// positions.
package hashing

import (
	"github.com/lgbarn/movegen-go/internal/engine"
)

// DuplicateDetector tracks seen positions for duplicate detection.
type DuplicateDetector struct {
	// hashTable stores seen signatures keyed by Zobrist hash
	hashTable map[uint64][]PositionSignature
	// useExactMatch also compares the move clocks
	useExactMatch bool
	// maxCapacity limits stored signatures; 0 means unlimited
	maxCapacity int
	// stored counts signatures in hashTable
	stored int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// PositionSignature stores identifying information about a position.
type PositionSignature struct {
	// Hash is the Zobrist key of the position
	Hash uint64
	// WeakHash is a material signature for extra confidence
	WeakHash uint32
	// HalfMoveClock and MoveNumber are compared only in exact mode
	HalfMoveClock uint
	MoveNumber    uint
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]PositionSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// Signature builds the signature of gs.
func Signature(gs *engine.GameState) PositionSignature {
	pos := gs.Position()
	return PositionSignature{
		Hash:          Zobrist(pos),
		WeakHash:      WeakHash(pos),
		HalfMoveClock: gs.PliesSinceLastCaptureOrPawnAdvance(),
		MoveNumber:    gs.CurrentMoveNumber(),
	}
}

// CheckAndAdd checks if gs was seen before and records it otherwise.
// Returns true if the position is a duplicate. Once the detector is full,
// new positions are checked but no longer recorded.
func (d *DuplicateDetector) CheckAndAdd(gs *engine.GameState) bool {
	if gs == nil {
		return false
	}

	sig := Signature(gs)

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.stored++
	return false
}

// signaturesMatch checks if two signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b PositionSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch {
		return a.HalfMoveClock == b.HalfMoveClock && a.MoveNumber == b.MoveNumber
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	return d.stored
}

// IsFull reports whether the capacity limit has been reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.stored >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]PositionSignature)
	d.stored = 0
	d.duplicateCount = 0
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tournament folds an ordered candidate sequence down to a
// single leader by pairwise comparison. The comparison is pairwise, not
// a globally consistent ranking, so candidates are processed strictly
// in discovery order and discarded candidates are never revisited.
package tournament

import (
	"context"
	"fmt"

	"github.com/CentML/paper-of-the-day/internal/paper"
)

// Comparator decides between the current leader and a challenger.
// It returns 1 if the first paper stays ahead, 2 if the second
// overtakes. Any error means no decision was reached and the
// tournament aborts.
type Comparator interface {
	Compare(ctx context.Context, first, second *paper.Paper) (int, error)
}

// State is the reducer's lifecycle state.
type State int

const (
	// NoLeader means no relevant candidate has been seen yet.
	NoLeader State = iota

	// HasLeader means the leader is the comparator's most recent winner
	// among all candidates seen so far.
	HasLeader

	// Aborted means a comparison could not be decided and no further
	// candidates will be processed.
	Aborted
)

func (s State) String() string {
	switch s {
	case NoLeader:
		return "no-leader"
	case HasLeader:
		return "has-leader"
	case Aborted:
		return "aborted"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// AbortError records the pairing that could not be decided.
type AbortError struct {
	LeaderID     string
	ChallengerID string
	Err          error
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("tournament aborted comparing %s against %s: %v", e.LeaderID, e.ChallengerID, e.Err)
}

func (e *AbortError) Unwrap() error { return e.Err }

// Tournament is the reducer's explicit fold state. It is only ever
// written by the sequential fold itself; replaying the same candidate
// sequence against a deterministic comparator reproduces the same
// leader.
type Tournament struct {
	cmp       Comparator
	leader    *paper.Paper
	evaluated int
	abortErr  error
}

// New returns a reducer in the NoLeader state.
func New(cmp Comparator) *Tournament {
	return &Tournament{cmp: cmp}
}

// State returns the current lifecycle state.
func (t *Tournament) State() State {
	switch {
	case t.abortErr != nil:
		return Aborted
	case t.leader != nil:
		return HasLeader
	}
	return NoLeader
}

// Leader returns the current leader, nil while NoLeader or after an
// abort that preceded any decision.
func (t *Tournament) Leader() *paper.Paper { return t.leader }

// Evaluated returns how many candidates have been folded in.
func (t *Tournament) Evaluated() int { return t.evaluated }

// Err returns the abort error, nil unless Aborted.
func (t *Tournament) Err() error { return t.abortErr }

// Advance folds in the next relevant candidate. The first candidate
// becomes the leader without a comparison; afterwards each candidate is
// compared against the leader and replaces it when the comparator
// answers 2. A comparator error transitions to Aborted; once aborted,
// Advance keeps returning the same error without further comparisons.
func (t *Tournament) Advance(ctx context.Context, c *paper.Paper) error {
	if t.abortErr != nil {
		return t.abortErr
	}

	t.evaluated++

	if t.leader == nil {
		t.leader = c
		return nil
	}

	choice, err := t.cmp.Compare(ctx, t.leader, c)
	if err != nil {
		t.abortErr = &AbortError{LeaderID: t.leader.ID(), ChallengerID: c.ID(), Err: err}
		return t.abortErr
	}
	if choice == 2 {
		t.leader = c
	}
	return nil
}

// Reduce folds candidates in order and returns the final leader (nil
// when candidates is empty) and the number evaluated before stopping.
func Reduce(ctx context.Context, cmp Comparator, candidates []*paper.Paper) (*paper.Paper, int, error) {
	t := New(cmp)
	for _, c := range candidates {
		if err := t.Advance(ctx, c); err != nil {
			return nil, t.evaluated, err
		}
	}
	return t.leader, t.evaluated, nil
}

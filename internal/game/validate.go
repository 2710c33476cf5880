package game

import "fmt"

// Repair validates session integrity and deterministically fixes what it
// can, returning a diagnostic string per fault found. It never discards the
// round: when a fault cannot be repaired unambiguously the best-available
// data is kept and the diagnostic reports it.
//
// Checks: exactly nine positions, each slot holding its own position number,
// and counters consistent with the putt log.
func (s *Session) Repair() []string {
	var diags []string

	// Wrong-length position array: keep what maps to a valid slot, fill
	// gaps with fresh zero-carryover positions.
	if len(s.Positions) != PositionCount {
		diags = append(diags, fmt.Sprintf("session %s has %d positions, want %d", s.SessionID, len(s.Positions), PositionCount))
		rebuilt := make([]*Position, PositionCount)
		for _, p := range s.Positions {
			if p == nil || p.Number < 1 || p.Number > PositionCount {
				continue
			}
			if rebuilt[p.Number-1] == nil {
				rebuilt[p.Number-1] = p
			}
		}
		for i, p := range rebuilt {
			if p == nil {
				rebuilt[i] = NewPosition(i+1, 0)
			}
		}
		s.Positions = rebuilt
	}

	seen := make(map[int]bool, PositionCount)
	for i, p := range s.Positions {
		want := i + 1
		if p == nil {
			diags = append(diags, fmt.Sprintf("position %d missing, rebuilt empty", want))
			s.Positions[i] = NewPosition(want, 0)
			continue
		}
		if p.Number != want || seen[p.Number] {
			diags = append(diags, fmt.Sprintf("slot %d holds position %d, rebuilt empty", want, p.Number))
			s.Positions[i] = NewPosition(want, 0)
			continue
		}
		seen[p.Number] = true

		// Counters must be re-derivable from the putt log.
		sunk := 0
		for _, putt := range p.Putts {
			if putt.Result == ResultSink {
				sunk++
			}
		}
		if p.AttemptsUsed != len(p.Putts) || p.PuttsSunk != sunk {
			diags = append(diags, fmt.Sprintf(
				"position %d counters inconsistent (used=%d putts=%d sunk=%d actual=%d), recomputed",
				p.Number, p.AttemptsUsed, len(p.Putts), p.PuttsSunk, sunk))
			p.AttemptsUsed = len(p.Putts)
			p.PuttsSunk = sunk
		}
	}

	if s.CurrentNumber < 1 || s.CurrentNumber > PositionCount {
		diags = append(diags, fmt.Sprintf("current position %d out of range, clamped", s.CurrentNumber))
		if s.CurrentNumber < 1 {
			s.CurrentNumber = 1
		} else {
			s.CurrentNumber = PositionCount
		}
	}

	return diags
}

// Package turtle implements an algebra over sequences of turtle moves:
// concatenation, repetition, reversal, dilation, normalization and
// recursive motif substitution. A Sequence tracks its net pose (the
// displacement and heading that replaying the moves from the origin
// would produce) incrementally across every edit, so renderers can read
// it back without replaying.
package turtle

import (
	"errors"
	"fmt"
	"math"
)

// The turtle starts at the origin pointing along +Y.
const initialHeading = 90

// ErrZeroDisplacement is returned when a length normalization is asked
// of a sequence whose start and end points coincide.
var ErrZeroDisplacement = errors.New("zero net displacement")

// Sequence is an ordered list of moves plus the cached net pose.
// It exclusively owns its moves: everything that enters a Sequence is
// copied, so no two sequences ever alias move storage.
type Sequence struct {
	moves      []Move
	netX, netY float64
	netHeading float64
}

// NewSequence returns an empty sequence at the initial pose (0, 0, 90).
func NewSequence() *Sequence {
	return &Sequence{netHeading: initialHeading}
}

// Len returns the number of moves.
func (s *Sequence) Len() int { return len(s.moves) }

// Moves returns a copy of the move list in execution order.
func (s *Sequence) Moves() []Move {
	out := make([]Move, len(s.moves))
	copy(out, s.moves)
	return out
}

// Net returns the cached net displacement from the origin.
func (s *Sequence) Net() (x, y float64) { return s.netX, s.netY }

// Heading returns the cached net heading in degrees.
func (s *Sequence) Heading() float64 { return s.netHeading }

// Displacement returns the straight-line distance from start to end.
func (s *Sequence) Displacement() float64 {
	return math.Hypot(s.netX, s.netY)
}

// Clone returns an independent deep copy.
func (s *Sequence) Clone() *Sequence {
	return &Sequence{
		moves:      s.Moves(),
		netX:       s.netX,
		netY:       s.netY,
		netHeading: s.netHeading,
	}
}

// Forward appends a forward move and advances the net position along
// the current heading. The heading itself is unchanged.
func (s *Sequence) Forward(distance float64) {
	s.moves = append(s.moves, Move{Kind: Forward, Amount: distance})
	rad := s.netHeading * math.Pi / 180
	s.netX += distance * math.Cos(rad)
	s.netY += distance * math.Sin(rad)
}

// Back appends a back move and retreats the net position along the
// current heading.
func (s *Sequence) Back(distance float64) {
	s.moves = append(s.moves, Move{Kind: Back, Amount: distance})
	rad := s.netHeading * math.Pi / 180
	s.netX -= distance * math.Cos(rad)
	s.netY -= distance * math.Sin(rad)
}

// normDeg reduces an angle into the canonical range [0, 360).
func normDeg(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// TurnLeft appends a counterclockwise turn. Headings are kept in the
// canonical range [0, 360).
func (s *Sequence) TurnLeft(degrees float64) {
	s.moves = append(s.moves, Move{Kind: TurnLeft, Amount: degrees})
	s.netHeading = normDeg(s.netHeading + degrees)
}

// TurnRight appends a clockwise turn.
func (s *Sequence) TurnRight(degrees float64) {
	s.moves = append(s.moves, Move{Kind: TurnRight, Amount: degrees})
	s.netHeading = normDeg(s.netHeading - degrees)
}

// AddMove appends a copy of m, dispatching on its kind so the pose
// bookkeeping runs exactly as if the corresponding primitive had been
// called. m may belong to another sequence; it is never aliased.
func (s *Sequence) AddMove(m Move) {
	switch m.Kind {
	case Forward:
		s.Forward(m.Amount)
	case Back:
		s.Back(m.Amount)
	case TurnLeft:
		s.TurnLeft(m.Amount)
	case TurnRight:
		s.TurnRight(m.Amount)
	}
}

// Append concatenates copies of other's moves onto s. other is not
// modified and shares no storage with s afterwards.
func (s *Sequence) Append(other *Sequence) {
	for _, m := range other.moves {
		s.AddMove(m)
	}
}

// AppendMoves concatenates copies of the given moves onto s.
func (s *Sequence) AppendMoves(moves []Move) {
	for _, m := range moves {
		s.AddMove(m)
	}
}

// Repeat rewrites s so the current run of moves occurs n times.
// A negative n reverses s first and repeats -n times. Repeat(0) empties
// the sequence and resets the pose to the origin.
func (s *Sequence) Repeat(n int) {
	if n < 0 {
		s.Reverse()
		s.Repeat(-n)
		return
	}
	if n == 0 {
		s.moves = nil
		s.netX, s.netY = 0, 0
		s.netHeading = initialHeading
		return
	}
	k := len(s.moves)
	for i := 0; i < n-1; i++ {
		for j := 0; j < k; j++ {
			s.AddMove(s.moves[j])
		}
	}
}

// Reverse reverses the direction of every move and the order of the
// sequence, so that the result retraces the original path end to start.
// The pose is recomputed in closed form: with d the net turn
// (heading - 90), the reversed displacement is -R(-d)·(x, y) and the
// heading becomes 180 - heading. This matches what replaying the
// reversed moves from the origin would give.
func (s *Sequence) Reverse() {
	for i := range s.moves {
		s.moves[i].Reverse()
	}
	for i, j := 0, len(s.moves)-1; i < j; i, j = i+1, j-1 {
		s.moves[i], s.moves[j] = s.moves[j], s.moves[i]
	}
	delta := (s.netHeading - initialHeading) * math.Pi / 180
	sin, cos := math.Sin(delta), math.Cos(delta)
	x, y := s.netX, s.netY
	s.netX = -(x*cos + y*sin)
	s.netY = -(-x*sin + y*cos)
	s.netHeading = normDeg(180 - s.netHeading)
}

// Dilate scales every length-bearing move by factor. Turn angles and
// the heading are unaffected; the net displacement scales with the
// moves.
func (s *Sequence) Dilate(factor float64) {
	for i := range s.moves {
		s.moves[i].Dilate(factor)
	}
	s.netX *= factor
	s.netY *= factor
}

// NormalizeAngle brackets the sequence with two corrective turns so
// that its net displacement lies exactly on the positive Y axis and its
// final heading is exactly 90. The path shape between the two turns is
// untouched. The pose becomes (0, r, 90) where r is the displacement
// magnitude.
func (s *Sequence) NormalizeAngle() {
	r := s.Displacement()
	theta := 180 / math.Pi * math.Atan2(-s.netX, s.netY)
	s.moves = append([]Move{{Kind: TurnRight, Amount: theta}}, s.moves...)
	s.TurnRight(s.netHeading - theta - initialHeading)
	s.netX, s.netY = 0, r
	s.netHeading = initialHeading
}

// NormalizeLength dilates the sequence so its net displacement
// magnitude equals target. Returns ErrZeroDisplacement when the
// sequence starts and ends at the same point, since no dilation can fix
// that.
func (s *Sequence) NormalizeLength(target float64) error {
	r := s.Displacement()
	if r == 0 {
		return ErrZeroDisplacement
	}
	s.Dilate(target / r)
	return nil
}

// Fractalize substitutes every Forward move with a copy of motif
// normalized to that move's length, and applies the substitution n
// times in total. Back moves and turns pass through unchanged. The
// motif is cloned for every substitution and never mutated.
//
// The result grows like k·m^n for k forward moves and an m-move motif;
// bounding n is the caller's job.
func (s *Sequence) Fractalize(motif *Sequence, n int) error {
	if n < 1 {
		return fmt.Errorf("fractalize: iterations must be >= 1, got %d", n)
	}
	if motif.Displacement() == 0 {
		return fmt.Errorf("fractalize: motif has %w", ErrZeroDisplacement)
	}
	for ; n > 0; n-- {
		old := s.moves
		s.moves = nil
		s.netX, s.netY = 0, 0
		s.netHeading = initialHeading
		for _, m := range old {
			if m.Kind == Forward {
				scaled := motif.Clone()
				if err := scaled.NormalizeLength(m.Amount); err != nil {
					return err
				}
				s.Append(scaled)
			} else {
				s.AddMove(m)
			}
		}
	}
	return nil
}

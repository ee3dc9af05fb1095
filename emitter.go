package gcodegen

// Emitter turns shapes into motion on a Machine. Every operation takes the current
// State and returns the State after the last move it emitted. Errors come only from
// the Machine; any geometry is accepted.
type Emitter struct {
	machine Machine
	tooling Tooling
}

func NewEmitter(m Machine, t Tooling) *Emitter {
	return &Emitter{
		machine: m,
		tooling: t,
	}
}

func (em *Emitter) Tooling() Tooling {
	return em.tooling
}

func (em *Emitter) rapidTo(st State, pos Position) (State, error) {
	err := em.machine.RapidTo(pos, em.tooling.RapidFeedRate)
	if err != nil {
		return st, err
	}
	st.Pos = pos
	return st, nil
}

func (em *Emitter) linearTo(st State, pos Position, feed float64) (State, error) {
	err := em.machine.LinearTo(pos, feed)
	if err != nil {
		return st, err
	}
	st.Pos = pos
	return st, nil
}

func (em *Emitter) retract(st State) (State, error) {
	pos := st.Pos
	pos.Z = em.tooling.SafeHeight
	st, err := em.rapidTo(st, pos)
	if err != nil {
		return st, err
	}
	st.Engaged = false
	return st, nil
}

func (em *Emitter) plunge(st State) (State, error) {
	pos := st.Pos
	pos.Z = em.tooling.CutDepth
	st, err := em.linearTo(st, pos, em.tooling.PlungeFeedRate)
	if err != nil {
		return st, err
	}
	st.Engaged = true
	return st, nil
}

// RapidMove moves to (x, y) at safe height, retracting first if the tool is engaged.
func (em *Emitter) RapidMove(st State, x, y float64) (State, error) {
	var err error
	if st.Engaged {
		st, err = em.retract(st)
		if err != nil {
			return st, err
		}
	}
	return em.rapidTo(st, Position{X: x, Y: y, Z: em.tooling.SafeHeight})
}

// CutLine cuts from the current position to (x, y), plunging first unless the tool
// is already engaged.
func (em *Emitter) CutLine(st State, pol Policy, x, y float64) (State, error) {
	var err error
	if !st.Engaged {
		st, err = em.plunge(st)
		if err != nil {
			return st, err
		}
	}
	st, err = em.linearTo(st, Position{X: x, Y: y, Z: em.tooling.CutDepth},
		em.tooling.CutFeedRate)
	if err != nil {
		return st, err
	}
	if pol.LiftAtEndOfMove {
		return em.retract(st)
	}
	return st, nil
}

func (em *Emitter) DrillPoint(st State, pol Policy, x, y float64) (State, error) {
	st, err := em.RapidMove(st, x, y)
	if err != nil {
		return st, err
	}
	st, err = em.plunge(st)
	if err != nil {
		return st, err
	}
	if pol.LiftAtEndOfMove {
		return em.retract(st)
	}
	return st, nil
}

// Rectangle cuts a closed rectangle with one corner at the current position and
// always retracts at the end.
func (em *Emitter) Rectangle(st State, width, height float64) (State, error) {
	corner := st.Pos
	st, err := em.RapidMove(st, corner.X, corner.Y)
	if err != nil {
		return st, err
	}
	st, err = em.plunge(st)
	if err != nil {
		return st, err
	}

	z := em.tooling.CutDepth
	for _, pos := range []Position{
		{X: corner.X + width, Y: corner.Y, Z: z},
		{X: corner.X + width, Y: corner.Y + height, Z: z},
		{X: corner.X, Y: corner.Y + height, Z: z},
		{X: corner.X, Y: corner.Y, Z: z},
	} {
		st, err = em.linearTo(st, pos, em.tooling.CutFeedRate)
		if err != nil {
			return st, err
		}
	}

	return em.retract(st)
}

// Circle cuts a circle centered on the current position and returns to the center,
// disengaged.
func (em *Emitter) Circle(st State, radius float64) (State, error) {
	center := st.Pos
	center.Z = em.tooling.SafeHeight

	st, err := em.RapidMove(st, center.X+radius, center.Y)
	if err != nil {
		return st, err
	}
	st, err = em.plunge(st)
	if err != nil {
		return st, err
	}

	cut := center
	cut.Z = em.tooling.CutDepth
	err = circleTo(cut, radius, func(pos Position) error {
		st, err = em.linearTo(st, pos, em.tooling.CutFeedRate)
		return err
	})
	if err != nil {
		return st, err
	}

	st, err = em.retract(st)
	if err != nil {
		return st, err
	}
	return em.rapidTo(st, center)
}

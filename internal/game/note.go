package game

type Judgement int8

const (
	Unjudged Judgement = iota
	Correct
	Incorrect
)

func (j Judgement) String() string {
	switch j {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	}
	return "unjudged"
}

const (
	QuarterNote = "\U0001D15F"
	TrebleClef  = "\U0001D11E"
	BassClef    = "\U0001D122"
)

type Note struct {
	Glyph     string
	Position  int // The staff slot, 0 to TopSlot
	Judgement Judgement
}

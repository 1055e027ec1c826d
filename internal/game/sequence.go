package game

import "github.com/Lazyfiki/SightRead/internal/random"

const (
	NotesPerStaff = 12
	TopSlot       = 10
)

// Sequence is one round of notes and the cursor into it. The cursor only
// equals NotesPerStaff transiently inside Judge.
type Sequence struct {
	notes  [NotesPerStaff]Note
	cursor int
	round  int
	src    random.Source
}

func NewSequence(src random.Source) *Sequence {
	s := &Sequence{src: src}
	s.Generate()
	return s
}

// Generate discards the current round, judged or not.
func (s *Sequence) Generate() {
	for i := range s.notes {
		s.notes[i] = Note{
			Glyph:    QuarterNote,
			Position: s.src.UniformInt(0, TopSlot),
		}
	}
	s.cursor = 0
}

func (s *Sequence) Current() Note {
	return s.notes[s.cursor]
}

func (s *Sequence) Judge(j Judgement) {
	s.notes[s.cursor].Judgement = j
	s.cursor++
	if s.cursor == NotesPerStaff {
		s.round++
		s.Generate()
	}
}

func (s *Sequence) Notes() [NotesPerStaff]Note {
	return s.notes
}

func (s *Sequence) Cursor() int {
	return s.cursor
}

// Round counts completed rounds.
func (s *Sequence) Round() int {
	return s.round
}

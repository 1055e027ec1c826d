package theme

import (
	"image/color"
	"testing"

	"github.com/Lazyfiki/SightRead/internal/game"
	"github.com/stretchr/testify/assert"
)

func TestNoteColor(t *testing.T) {
	var th Theme = &DefaultTheme{}
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, th.NoteColor(game.Unjudged))
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, th.NoteColor(game.Correct))
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, th.NoteColor(game.Incorrect))
}

func TestKeyColor(t *testing.T) {
	th := &DefaultTheme{}
	assert.Equal(t, white, th.KeyColor(game.Key{IsWhite: true}))
	assert.Equal(t, black, th.KeyColor(game.Key{}))
	assert.Equal(t, pressed, th.KeyColor(game.Key{IsPressed: true}))
	assert.Equal(t, pressed, th.KeyColor(game.Key{IsWhite: true, IsPressed: true}))
}

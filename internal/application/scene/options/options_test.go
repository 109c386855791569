package options

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/munchkin/internal/application/input"
	"github.com/younwookim/munchkin/internal/application/scene/scenetest"
	"github.com/younwookim/munchkin/internal/application/state"
	"github.com/younwookim/munchkin/internal/infrastructure/display"
)

var testResolutions = []display.Resolution{
	{Width: 800, Height: 600},
	{Width: 1280, Height: 720},
	{Width: 1920, Height: 1080},
}

func keyDown(k ebiten.Key) input.Event {
	return input.Event{Kind: input.KeyDown, Key: k}
}

func newOptions(t *testing.T) (*Options, *scenetest.Context) {
	t.Helper()
	ctx := scenetest.NewContext()
	return New(ctx, testResolutions, 10), ctx
}

func TestOptions_StartsFromLiveValues(t *testing.T) {
	o, _ := newOptions(t)

	res, vol := o.Pending()
	assert.Equal(t, display.Resolution{Width: 1920, Height: 1080}, res)
	assert.Equal(t, 50, vol)
	assert.Equal(t, RowResolution, o.Focus())
}

func TestOptions_UnknownCurrentResolutionIsOffered(t *testing.T) {
	ctx := scenetest.NewContext()
	ctx.Res = display.Resolution{Width: 1024, Height: 768}

	o := New(ctx, testResolutions, 10)

	res, _ := o.Pending()
	assert.Equal(t, ctx.Res, res)
}

func TestOptions_ShrinkAndApply(t *testing.T) {
	o, ctx := newOptions(t)

	events := []input.Event{
		keyDown(ebiten.KeyLeft), // 1280x720
		keyDown(ebiten.KeyLeft), // 800x600
		keyDown(ebiten.KeyDown), // volume row
		keyDown(ebiten.KeyRight),
		keyDown(ebiten.KeyRight),
		keyDown(ebiten.KeyRight), // 80
		keyDown(ebiten.KeyDown),  // apply row
		keyDown(ebiten.KeyEnter),
	}
	require.NoError(t, o.HandleEvents(events))

	require.Len(t, ctx.Changes, 1)
	assert.Equal(t, scenetest.Change{
		Resolution: display.Resolution{Width: 800, Height: 600},
		Volume:     80,
	}, ctx.Changes[0])
	assert.Empty(t, ctx.Transitions)
}

func TestOptions_VolumeIsClamped(t *testing.T) {
	o, _ := newOptions(t)

	o.focus = RowVolume
	for i := 0; i < 20; i++ {
		o.adjust(RowVolume, 1)
	}
	_, vol := o.Pending()
	assert.Equal(t, 100, vol)

	for i := 0; i < 20; i++ {
		o.adjust(RowVolume, -1)
	}
	_, vol = o.Pending()
	assert.Equal(t, 0, vol)
}

func TestOptions_EditsArePendingUntilApplied(t *testing.T) {
	o, ctx := newOptions(t)

	require.NoError(t, o.HandleEvents([]input.Event{keyDown(ebiten.KeyRight)}))

	assert.Empty(t, ctx.Changes)
	assert.Equal(t, display.Resolution{Width: 1920, Height: 1080}, ctx.Res)
}

func TestOptions_EscapeReturnsToMenu(t *testing.T) {
	o, ctx := newOptions(t)

	require.NoError(t, o.HandleEvents([]input.Event{keyDown(ebiten.KeyEscape)}))
	assert.Equal(t, []state.ID{state.Menu}, ctx.Transitions)
}

func TestOptions_QuitRequestsExit(t *testing.T) {
	o, ctx := newOptions(t)

	require.NoError(t, o.HandleEvents([]input.Event{{Kind: input.Quit}, keyDown(ebiten.KeyEnter)}))
	assert.Equal(t, []state.ID{state.Exit}, ctx.Transitions)
	assert.Empty(t, ctx.Changes)
}

func TestOptions_ClickBack(t *testing.T) {
	o, ctx := newOptions(t)
	back := o.buttons[RowBack].Rect

	click := input.Event{Kind: input.MouseDown, Button: ebiten.MouseButtonLeft, X: back.Min.X + 2, Y: back.Min.Y + 2}
	require.NoError(t, o.HandleEvents([]input.Event{click}))

	assert.Equal(t, state.Menu, ctx.State)
}

func TestOptions_ClickLeftHalfDecreasesVolume(t *testing.T) {
	o, _ := newOptions(t)
	row := o.buttons[RowVolume].Rect

	click := input.Event{Kind: input.MouseDown, Button: ebiten.MouseButtonLeft, X: row.Min.X + 1, Y: row.Min.Y + 1}
	require.NoError(t, o.HandleEvents([]input.Event{click}))

	_, vol := o.Pending()
	assert.Equal(t, 40, vol)
	assert.Equal(t, RowVolume, o.Focus())
}

func TestOptions_ApplyErrorKeepsScene(t *testing.T) {
	o, ctx := newOptions(t)
	ctx.ApplyErr = assert.AnError

	require.NoError(t, o.activate(RowApply, 1))
	assert.Empty(t, ctx.Changes)
	assert.Empty(t, ctx.Transitions)
}

func TestOptions_OnEnterReloads(t *testing.T) {
	o, ctx := newOptions(t)
	o.adjust(RowVolume, 1)

	ctx.Vol = 30
	ctx.Res = display.Resolution{Width: 1280, Height: 720}
	o.OnEnter()

	res, vol := o.Pending()
	assert.Equal(t, display.Resolution{Width: 1280, Height: 720}, res)
	assert.Equal(t, 30, vol)
}

func TestNewFactory(t *testing.T) {
	f := NewFactory(testResolutions, 5)
	s := f(scenetest.NewContext())

	o, ok := s.(*Options)
	require.True(t, ok)
	assert.Equal(t, 5, o.step)
}

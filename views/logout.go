package views

import (
	"git.sr.ht/~rockorager/vaxis"
	"git.sr.ht/~rockorager/vaxis/vxfw"
	"github.com/rs/zerolog"
)

// LogoutView asks the user to confirm signing out. There are no sessions,
// so confirming only records the request.
type LogoutView struct {
	logger    zerolog.Logger
	confirmed int
}

// NewLogoutView creates a LogoutView.
func NewLogoutView(logger zerolog.Logger) *LogoutView {
	return &LogoutView{logger: logger}
}

// Confirmed returns how many times the confirm action was triggered.
func (lv *LogoutView) Confirmed() int {
	return lv.confirmed
}

// Confirm runs the confirm action.
func (lv *LogoutView) Confirm() {
	lv.confirmed++
	lv.logger.Info().Msg("logout confirmed (no session to terminate)")
}

// Draw renders the confirmation prompt.
func (lv *LogoutView) Draw(ctx vxfw.DrawContext) (vxfw.Surface, error) {
	return drawCentered(ctx, lv, [][]vaxis.Segment{
		{{Text: "⏻", Style: vaxis.Style{Foreground: vaxis.IndexColor(1)}}},
		{},
		{{Text: "Logout", Style: vaxis.Style{Attribute: vaxis.AttrBold}}},
		{{Text: "Are you sure you want to logout?", Style: vaxis.Style{Attribute: vaxis.AttrDim}}},
		{},
		{{Text: " Confirm Logout ", Style: vaxis.Style{
			Foreground: vaxis.IndexColor(15),
			Background: vaxis.IndexColor(1),
			Attribute:  vaxis.AttrBold,
		}}},
		{{Text: "press Enter or y", Style: vaxis.Style{Attribute: vaxis.AttrDim}}},
	})
}

// HandleEvent triggers the confirm action on Enter or y.
func (lv *LogoutView) HandleEvent(ev vaxis.Event, phase vxfw.EventPhase) (vxfw.Command, error) {
	key, ok := ev.(vaxis.Key)
	if !ok {
		return nil, nil
	}
	if key.Matches(vaxis.KeyEnter) || key.Matches('y') {
		lv.Confirm()
		return vxfw.ConsumeAndRedraw(), nil
	}
	return nil, nil
}

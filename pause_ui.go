package main

import (
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/teddyburger/render"
	"github.com/milk9111/teddyburger/scores"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor  = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	buttonColor = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	textColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

type menuButton struct {
	label   string
	onClick func()
}

// NewPauseUI builds a centered pause menu with Resume and Quit buttons.
func NewPauseUI(g *Game) *ebitenui.UI {
	return newMenuUI(g, []string{"Paused"}, []menuButton{
		{label: "Resume", onClick: func() { g.paused = false }},
		{label: "Quit", onClick: func() { g.quit = true }},
	})
}

// NewGameOverUI shows the final score and high-score table with Restart,
// Copy and Quit buttons.
func NewGameOverUI(g *Game) *ebitenui.UI {
	lines := []string{"Game Over", g.world.ScoreString(), ""}
	hs := g.world.HighScores()
	if len(hs) > 0 {
		lines = append(lines, "High Scores")
		lines = append(lines, render.HighScoreLines(hs)...)
	}

	buttons := []menuButton{
		{label: "Restart", onClick: func() {
			if err := g.Restart(); err != nil {
				log.Printf("restart: %v", err)
			}
		}},
	}
	if g.clipboard && len(hs) > 0 {
		buttons = append(buttons, menuButton{label: "Copy Scores", onClick: func() {
			clipboard.Write(clipboard.FmtText, []byte(scores.Format(hs)))
		}})
	}
	buttons = append(buttons, menuButton{label: "Quit", onClick: func() { g.quit = true }})
	return newMenuUI(g, lines, buttons)
}

func newMenuUI(g *Game, lines []string, buttons []menuButton) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(panelColor)
	btnImg := imageui.NewNineSliceColor(buttonColor)

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	btnTextColor := &widget.ButtonTextColor{Idle: textColor}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(g.spec.World.Width/2), int(g.spec.World.Height/2)),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	for _, line := range lines {
		panel.AddChild(widget.NewText(
			widget.TextOpts.Text(line, &face, textColor),
			widget.TextOpts.WidgetOpts(center),
		))
	}
	for _, b := range buttons {
		onClick := b.onClick
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
			widget.ButtonOpts.Text(b.label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/teddyburger/obj"
)

const stickDeadZone = 0.3

// Input polls keyboard and the first gamepad once per frame.
type Input struct{}

func NewInput() *Input {
	return &Input{}
}

// Poll reads the current movement, fire and exit intent.
func (i *Input) Poll() obj.Input {
	var in obj.Input

	// Keyboard WASD or arrows
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft) {
		in.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight) {
		in.MoveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		in.MoveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		in.MoveY += 1
	}
	in.Fire = ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyControlLeft)
	in.Exit = inpututil.IsKeyJustPressed(ebiten.KeyF12)

	ids := ebiten.GamepadIDs()
	if len(ids) == 0 {
		return in
	}
	gid := ids[0]

	// Left stick overrides the keyboard outside the dead zone.
	if x := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal); x < -stickDeadZone || x > stickDeadZone {
		in.MoveX = x
	}
	if y := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical); y < -stickDeadZone || y > stickDeadZone {
		in.MoveY = y
	}
	in.Fire = in.Fire ||
		ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom) ||
		ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonFrontBottomRight)
	return in
}

// PausePressed reports a pause toggle this frame.
func (i *Input) PausePressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		return true
	}
	for _, gid := range ebiten.GamepadIDs() {
		if inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight) {
			return true
		}
	}
	return false
}

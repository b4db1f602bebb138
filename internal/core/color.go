package core

// Color names the role of a screen cell. Hosts map roles to terminal colors.
type Color uint8

const (
	ColorDefault Color = iota
	ColorNet
	ColorPlayer1
	ColorPlayer2
	ColorBall
	ColorFrame
	ColorText
	ColorDarkRed   // lost (#800000)
	ColorDarkGreen // won (#008000)
)

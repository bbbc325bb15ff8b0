package parameter

import "github.com/lixenwraith/shooter-snake/core"

// Palette
var (
	ColorBackground       = core.MustHex("#1a1a1a")
	ColorPlayerHead       = core.MustHex("#4caf50")
	ColorPlayerBody       = core.MustHex("#81c784")
	ColorOpponentBody     = core.MustHex("#e57373")
	ColorResourceOpponent = core.MustHex("#ffd700")
	ColorAggressive       = core.MustHex("#ff4444")
	ColorResource         = core.MustHex("#ffeb3b")
	ColorPlayerShot       = core.MustHex("#a5d6a7")
	ColorOpponentShot     = core.MustHex("#ff8a80")
	ColorText             = core.MustHex("#ffffff")
	ColorTextDim          = core.MustHex("#9e9e9e")
	ColorBorder           = core.MustHex("#555555")
	ColorOverlay          = core.MustHex("#000000")
)

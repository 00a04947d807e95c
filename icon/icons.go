package icon

import (
	"github.com/pencuri-cli/pencuri/color"
	"github.com/pencuri-cli/pencuri/style"
)

// Icon identifies a UI symbol.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Warn
	Info
	Search
	Link
	Mark
	Progress
	Play
	Movie
	Series
	Shield
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "🎉",
		nerd:    style.Fg(color.Green)(""),
		plain:   style.Fg(color.Green)("✓"),
		kaomoji: "(ᵔᴥᵔ)",
		squares: style.Fg(color.Green)("▣"),
	},
	Fail: {
		emoji:   "💀",
		nerd:    style.Fg(color.Red)(""),
		plain:   style.Fg(color.Red)("✖"),
		kaomoji: "(╯°□°)╯︵ ┻━┻",
		squares: style.Fg(color.Red)("▨"),
	},
	Warn: {
		emoji:   "⚠️",
		nerd:    style.Fg(color.Yellow)(""),
		plain:   style.Fg(color.Yellow)("!"),
		kaomoji: "(・_・;)",
		squares: style.Fg(color.Yellow)("▧"),
	},
	Info: {
		emoji:   "ℹ️",
		nerd:    style.Fg(color.Blue)(""),
		plain:   style.Fg(color.Blue)("i"),
		kaomoji: "(・ω・)",
		squares: style.Fg(color.Blue)("▤"),
	},
	Search: {
		emoji:   "🔍",
		nerd:    style.Fg(color.Blue)(""),
		plain:   style.Fg(color.Blue)("?"),
		kaomoji: "(・・ )?",
		squares: style.Fg(color.Blue)("◫"),
	},
	Link: {
		emoji:   "🔗",
		nerd:    style.Fg(color.Purple)(""),
		plain:   style.Fg(color.Purple)("~"),
		kaomoji: "(∩^o^)⊃━☆",
		squares: style.Fg(color.Purple)("◈"),
	},
	Mark: {
		emoji:   "📌",
		nerd:    style.Fg(color.Cyan)(""),
		plain:   style.Fg(color.Cyan)("*"),
		kaomoji: "(￣^￣)ゞ",
		squares: style.Fg(color.Cyan)("▪"),
	},
	Progress: {
		emoji:   "⏳",
		nerd:    style.Fg(color.Blue)(""),
		plain:   style.Fg(color.Blue)("…"),
		kaomoji: "(￣o￣) zzZZ",
		squares: style.Fg(color.Blue)("◴"),
	},
	Play: {
		emoji:   "🎬",
		nerd:    style.Fg(color.Green)(""),
		plain:   style.Fg(color.Green)(">"),
		kaomoji: "ヽ(>∀<☆)ノ",
		squares: style.Fg(color.Green)("▶"),
	},
	Movie: {
		emoji:   "🎞️",
		nerd:    style.Fg(color.Yellow)(""),
		plain:   style.Fg(color.Yellow)("M"),
		kaomoji: "(⌐■_■)",
		squares: style.Fg(color.Yellow)("▬"),
	},
	Series: {
		emoji:   "📺",
		nerd:    style.Fg(color.Cyan)(""),
		plain:   style.Fg(color.Cyan)("S"),
		kaomoji: "(o^▽^o)",
		squares: style.Fg(color.Cyan)("▦"),
	},
	Shield: {
		emoji:   "🛡️",
		nerd:    style.Fg(color.Red)(""),
		plain:   style.Fg(color.Red)("#"),
		kaomoji: "(ง •̀_•́)ง",
		squares: style.Fg(color.Red)("▩"),
	},
}

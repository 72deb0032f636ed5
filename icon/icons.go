package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Warn
	Mark
	Clipboard
	File
	Chapter
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "😿",
		nerd:    "",
		plain:   "✗",
		kaomoji: "(╥﹏╥)",
		squares: "🟥",
	},
	Warn: {
		emoji:   "⚠️",
		nerd:    "",
		plain:   "!",
		kaomoji: "(・_・;)",
		squares: "🟨",
	},
	Mark: {
		emoji:   "👉",
		nerd:    "",
		plain:   ">",
		kaomoji: "( ´ ▽ ` )ﾉ",
		squares: "🟦",
	},
	Clipboard: {
		emoji:   "📋",
		nerd:    "",
		plain:   "#",
		kaomoji: "(っ˘ڡ˘ς)",
		squares: "🟪",
	},
	File: {
		emoji:   "📄",
		nerd:    "",
		plain:   "*",
		kaomoji: "(¬‿¬)",
		squares: "⬜",
	},
	Chapter: {
		emoji:   "🔖",
		nerd:    "",
		plain:   "-",
		kaomoji: "(•̀ᴗ•́)",
		squares: "🟧",
	},
}

package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconGo        = "\ue627" // go gopher
	IconArrow     = "\uf061" // arrow right

	IconCheck   = "\uf00c" // check
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info

	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database

	// Docking
	IconMagnet   = "\uf076" // magnet
	IconPin      = "\uf08d" // thumb tack
	IconSettings = "\uf013" // cog
	IconPuzzle   = "\uf12e" // puzzle piece (extension)
	IconFloating = "\uf2d2" // window restore
)

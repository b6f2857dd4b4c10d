package cli

const (
	Reset         = "\x1b[0m"
	RedColour     = "\x1b[31m"
	GreenColour   = "\x1b[32m"
	YellowColour  = "\x1b[33m"
	BlueColour    = "\x1b[34m"
	MagentaColour = "\x1b[35m"
	CyanColour    = "\x1b[36m"
	GrayColour    = "\x1b[37m"
)

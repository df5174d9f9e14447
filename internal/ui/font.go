package ui

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace — моноширинный шрифт без внешних ассетов.
var DefaultFace font.Face = basicfont.Face7x13

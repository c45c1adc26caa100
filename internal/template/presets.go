package template

// Standard9x9 is the classic sudoku template: nine 3x3 box regions. Glyph
// case alternates only to make the boxes readable; any distinct glyphs work.
const Standard9x9 = `
aaaBBBccc
aaaBBBccc
aaaBBBccc
DDDeeeFFF
DDDeeeFFF
DDDeeeFFF
gggHHHiii
gggHHHiii
gggHHHiii
`

// Standard9x9Symbols is the alphabet matching Standard9x9.
const Standard9x9Symbols = "123456789"

// Small4x4 is a 4x4 board with 2x2 box regions, handy for quick runs.
const Small4x4 = `
aaBB
aaBB
CCdd
CCdd
`

// Small4x4Symbols is the alphabet matching Small4x4.
const Small4x4Symbols = "1234"

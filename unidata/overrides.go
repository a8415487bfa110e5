package unidata

import "github.com/npillmayer/translit/table"

// mathSymbolOverrides covers the Mathematical Alphanumeric Symbols ranges the
// generated blocks do not reach yet: bold, fraktur, and sans-serif alphabets
// plus bold digits. Letters missing from the fraktur run (C, H, I, R, Z) live
// in the Letterlike Symbols block instead.
//
// The list must stay sorted by code point; the pipeline consults it before
// the block tables and it wins on overlap.
var mathSymbolOverrides = []table.Override{
	// Bold capital A..Z
	{Rune: 0x1D400, Repl: "A"},
	{Rune: 0x1D401, Repl: "B"},
	{Rune: 0x1D402, Repl: "C"},
	{Rune: 0x1D403, Repl: "D"},
	{Rune: 0x1D404, Repl: "E"},
	{Rune: 0x1D405, Repl: "F"},
	{Rune: 0x1D406, Repl: "G"},
	{Rune: 0x1D407, Repl: "H"},
	{Rune: 0x1D408, Repl: "I"},
	{Rune: 0x1D409, Repl: "J"},
	{Rune: 0x1D40A, Repl: "K"},
	{Rune: 0x1D40B, Repl: "L"},
	{Rune: 0x1D40C, Repl: "M"},
	{Rune: 0x1D40D, Repl: "N"},
	{Rune: 0x1D40E, Repl: "O"},
	{Rune: 0x1D40F, Repl: "P"},
	{Rune: 0x1D410, Repl: "Q"},
	{Rune: 0x1D411, Repl: "R"},
	{Rune: 0x1D412, Repl: "S"},
	{Rune: 0x1D413, Repl: "T"},
	{Rune: 0x1D414, Repl: "U"},
	{Rune: 0x1D415, Repl: "V"},
	{Rune: 0x1D416, Repl: "W"},
	{Rune: 0x1D417, Repl: "X"},
	{Rune: 0x1D418, Repl: "Y"},
	{Rune: 0x1D419, Repl: "Z"},
	// Bold small a..z
	{Rune: 0x1D41A, Repl: "a"},
	{Rune: 0x1D41B, Repl: "b"},
	{Rune: 0x1D41C, Repl: "c"},
	{Rune: 0x1D41D, Repl: "d"},
	{Rune: 0x1D41E, Repl: "e"},
	{Rune: 0x1D41F, Repl: "f"},
	{Rune: 0x1D420, Repl: "g"},
	{Rune: 0x1D421, Repl: "h"},
	{Rune: 0x1D422, Repl: "i"},
	{Rune: 0x1D423, Repl: "j"},
	{Rune: 0x1D424, Repl: "k"},
	{Rune: 0x1D425, Repl: "l"},
	{Rune: 0x1D426, Repl: "m"},
	{Rune: 0x1D427, Repl: "n"},
	{Rune: 0x1D428, Repl: "o"},
	{Rune: 0x1D429, Repl: "p"},
	{Rune: 0x1D42A, Repl: "q"},
	{Rune: 0x1D42B, Repl: "r"},
	{Rune: 0x1D42C, Repl: "s"},
	{Rune: 0x1D42D, Repl: "t"},
	{Rune: 0x1D42E, Repl: "u"},
	{Rune: 0x1D42F, Repl: "v"},
	{Rune: 0x1D430, Repl: "w"},
	{Rune: 0x1D431, Repl: "x"},
	{Rune: 0x1D432, Repl: "y"},
	{Rune: 0x1D433, Repl: "z"},
	// Fraktur capital (C, H, I, R, Z are encoded in Letterlike Symbols)
	{Rune: 0x1D504, Repl: "A"},
	{Rune: 0x1D505, Repl: "B"},
	{Rune: 0x1D507, Repl: "D"},
	{Rune: 0x1D508, Repl: "E"},
	{Rune: 0x1D509, Repl: "F"},
	{Rune: 0x1D50A, Repl: "G"},
	{Rune: 0x1D50D, Repl: "J"},
	{Rune: 0x1D50E, Repl: "K"},
	{Rune: 0x1D50F, Repl: "L"},
	{Rune: 0x1D510, Repl: "M"},
	{Rune: 0x1D511, Repl: "N"},
	{Rune: 0x1D512, Repl: "O"},
	{Rune: 0x1D513, Repl: "P"},
	{Rune: 0x1D514, Repl: "Q"},
	{Rune: 0x1D516, Repl: "S"},
	{Rune: 0x1D517, Repl: "T"},
	{Rune: 0x1D518, Repl: "U"},
	{Rune: 0x1D519, Repl: "V"},
	{Rune: 0x1D51A, Repl: "W"},
	{Rune: 0x1D51B, Repl: "X"},
	{Rune: 0x1D51C, Repl: "Y"},
	// Fraktur small a..z
	{Rune: 0x1D51E, Repl: "a"},
	{Rune: 0x1D51F, Repl: "b"},
	{Rune: 0x1D520, Repl: "c"},
	{Rune: 0x1D521, Repl: "d"},
	{Rune: 0x1D522, Repl: "e"},
	{Rune: 0x1D523, Repl: "f"},
	{Rune: 0x1D524, Repl: "g"},
	{Rune: 0x1D525, Repl: "h"},
	{Rune: 0x1D526, Repl: "i"},
	{Rune: 0x1D527, Repl: "j"},
	{Rune: 0x1D528, Repl: "k"},
	{Rune: 0x1D529, Repl: "l"},
	{Rune: 0x1D52A, Repl: "m"},
	{Rune: 0x1D52B, Repl: "n"},
	{Rune: 0x1D52C, Repl: "o"},
	{Rune: 0x1D52D, Repl: "p"},
	{Rune: 0x1D52E, Repl: "q"},
	{Rune: 0x1D52F, Repl: "r"},
	{Rune: 0x1D530, Repl: "s"},
	{Rune: 0x1D531, Repl: "t"},
	{Rune: 0x1D532, Repl: "u"},
	{Rune: 0x1D533, Repl: "v"},
	{Rune: 0x1D534, Repl: "w"},
	{Rune: 0x1D535, Repl: "x"},
	{Rune: 0x1D536, Repl: "y"},
	{Rune: 0x1D537, Repl: "z"},
	// Sans-serif capital A..Z
	{Rune: 0x1D5A0, Repl: "A"},
	{Rune: 0x1D5A1, Repl: "B"},
	{Rune: 0x1D5A2, Repl: "C"},
	{Rune: 0x1D5A3, Repl: "D"},
	{Rune: 0x1D5A4, Repl: "E"},
	{Rune: 0x1D5A5, Repl: "F"},
	{Rune: 0x1D5A6, Repl: "G"},
	{Rune: 0x1D5A7, Repl: "H"},
	{Rune: 0x1D5A8, Repl: "I"},
	{Rune: 0x1D5A9, Repl: "J"},
	{Rune: 0x1D5AA, Repl: "K"},
	{Rune: 0x1D5AB, Repl: "L"},
	{Rune: 0x1D5AC, Repl: "M"},
	{Rune: 0x1D5AD, Repl: "N"},
	{Rune: 0x1D5AE, Repl: "O"},
	{Rune: 0x1D5AF, Repl: "P"},
	{Rune: 0x1D5B0, Repl: "Q"},
	{Rune: 0x1D5B1, Repl: "R"},
	{Rune: 0x1D5B2, Repl: "S"},
	{Rune: 0x1D5B3, Repl: "T"},
	{Rune: 0x1D5B4, Repl: "U"},
	{Rune: 0x1D5B5, Repl: "V"},
	{Rune: 0x1D5B6, Repl: "W"},
	{Rune: 0x1D5B7, Repl: "X"},
	{Rune: 0x1D5B8, Repl: "Y"},
	{Rune: 0x1D5B9, Repl: "Z"},
	// Sans-serif small a..z
	{Rune: 0x1D5BA, Repl: "a"},
	{Rune: 0x1D5BB, Repl: "b"},
	{Rune: 0x1D5BC, Repl: "c"},
	{Rune: 0x1D5BD, Repl: "d"},
	{Rune: 0x1D5BE, Repl: "e"},
	{Rune: 0x1D5BF, Repl: "f"},
	{Rune: 0x1D5C0, Repl: "g"},
	{Rune: 0x1D5C1, Repl: "h"},
	{Rune: 0x1D5C2, Repl: "i"},
	{Rune: 0x1D5C3, Repl: "j"},
	{Rune: 0x1D5C4, Repl: "k"},
	{Rune: 0x1D5C5, Repl: "l"},
	{Rune: 0x1D5C6, Repl: "m"},
	{Rune: 0x1D5C7, Repl: "n"},
	{Rune: 0x1D5C8, Repl: "o"},
	{Rune: 0x1D5C9, Repl: "p"},
	{Rune: 0x1D5CA, Repl: "q"},
	{Rune: 0x1D5CB, Repl: "r"},
	{Rune: 0x1D5CC, Repl: "s"},
	{Rune: 0x1D5CD, Repl: "t"},
	{Rune: 0x1D5CE, Repl: "u"},
	{Rune: 0x1D5CF, Repl: "v"},
	{Rune: 0x1D5D0, Repl: "w"},
	{Rune: 0x1D5D1, Repl: "x"},
	{Rune: 0x1D5D2, Repl: "y"},
	{Rune: 0x1D5D3, Repl: "z"},
	// Bold digits 0..9
	{Rune: 0x1D7CE, Repl: "0"},
	{Rune: 0x1D7CF, Repl: "1"},
	{Rune: 0x1D7D0, Repl: "2"},
	{Rune: 0x1D7D1, Repl: "3"},
	{Rune: 0x1D7D2, Repl: "4"},
	{Rune: 0x1D7D3, Repl: "5"},
	{Rune: 0x1D7D4, Repl: "6"},
	{Rune: 0x1D7D5, Repl: "7"},
	{Rune: 0x1D7D6, Repl: "8"},
	{Rune: 0x1D7D7, Repl: "9"},
}

package keyboard

// Scancode set 1 make codes, translated to their unshifted, caps-lock and
// shifted ASCII values. Entries that are not a printable key are 0. Kept as
// three literal tables (rather than computed case shifts) because the
// mapping is not a simple case fold — punctuation shifts to unrelated
// symbols and a few keys (backtick, comma) have no caps-lock variant.
const numScancodes = 0x3A + 1

var scancodeLower = [numScancodes]byte{
	0, 0, '1', '2', '3', '4', '5', '6', '7', '8', '9', '0',
	'-', '=', 0, 0, 'q', 'w', 'e', 'r', 't', 'y', 'u', 'i',
	'o', 'p', '[', ']', 0, 0, 'a', 's', 'd', 'f', 'g', 'h',
	'j', 'k', 'l', ';', '\'', '`', 0, '\\', 'z', 'x', 'c', 'v',
	'b', 'n', 'm', ',', '.', '/', 0, 0, 0, ' ',
}

var scancodeCaps = [numScancodes]byte{
	0, 0, '1', '2', '3', '4', '5', '6', '7', '8', '9', '0',
	'-', '=', 0, 0, 'Q', 'W', 'E', 'R', 'T', 'Y', 'U', 'I',
	'O', 'P', '[', ']', 0, 0, 'A', 'S', 'D', 'F', 'G', 'H',
	'J', 'K', 'L', ';', '\'', '`', 0, '\\', 'Z', 'X', 'C', 'V',
	'B', 'N', 'M', ',', '.', '/', 0, 0, 0, ' ',
}

var scancodeShift = [numScancodes]byte{
	0, 0, '!', '@', '#', '$', '%', '^', '&', '*', '(', ')',
	'_', '+', 0, 0, 'Q', 'W', 'E', 'R', 'T', 'Y', 'U', 'I',
	'O', 'P', '{', '}', 0, 0, 'A', 'S', 'D', 'F', 'G', 'H',
	'J', 'K', 'L', ':', '"', '~', 0, '|', 'Z', 'X', 'C', 'V',
	'B', 'N', 'M', '<', '>', '?', 0, 0, 0, ' ',
}

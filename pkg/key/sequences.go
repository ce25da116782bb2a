// ABOUTME: CSI and SS3 escape sequence table plus Split for multi-key reads
// ABOUTME: Split cuts a raw input buffer into one string per key press

package key

import "unicode/utf8"

// sequences maps standard CSI and SS3 escape sequences to events.
var sequences = map[string]Event{
	// CSI sequences
	"\x1b[A":  {Type: Up},
	"\x1b[B":  {Type: Down},
	"\x1b[C":  {Type: Right},
	"\x1b[D":  {Type: Left},
	"\x1b[H":  {Type: Home},
	"\x1b[F":  {Type: End},
	"\x1b[1~": {Type: Home},
	"\x1b[4~": {Type: End},
	"\x1b[5~": {Type: PageUp},
	"\x1b[6~": {Type: PageDown},
	"\x1b[3~": {Type: Delete},
	"\x1b[Z":  {Type: BackTab, Shift: true},

	// SS3 variants (application cursor mode)
	"\x1bOA": {Type: Up},
	"\x1bOB": {Type: Down},
	"\x1bOC": {Type: Right},
	"\x1bOD": {Type: Left},
	"\x1bOH": {Type: Home},
	"\x1bOF": {Type: End},
}

// Split cuts buf into individual key sequences. An incomplete trailing
// escape sequence is returned as its own element.
func Split(buf string) []string {
	var keys []string
	for len(buf) > 0 {
		n := sequenceLen(buf)
		keys = append(keys, buf[:n])
		buf = buf[n:]
	}
	return keys
}

// sequenceLen returns the byte length of the key sequence at the start of s.
func sequenceLen(s string) int {
	if s[0] != 0x1b {
		_, n := utf8.DecodeRuneInString(s)
		return n
	}
	if len(s) == 1 {
		return 1
	}

	switch s[1] {
	case '[':
		// CSI: parameters and intermediates, then a final byte in 0x40..0x7e.
		for i := 2; i < len(s); i++ {
			if s[i] >= 0x40 && s[i] <= 0x7e {
				return i + 1
			}
		}
		return len(s)
	case 'O':
		return min(3, len(s))
	case 0x1b:
		return 1
	}
	_, n := utf8.DecodeRuneInString(s[1:])
	return 1 + n
}

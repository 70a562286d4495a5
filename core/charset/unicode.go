package charset

// FromRune maps a Unicode code point to a character of the repertoire.
// ASCII maps to itself. Other runes are tried against every charset with an
// associated legacy encoding, in order of charset ids; the first charset
// able to encode r wins. If no charset can represent r, FromRune returns
// false.
func FromRune(r rune) (Char, bool) {
	if r < 0x80 {
		return Char(r), true
	}
	for _, cs := range All() {
		if cs.codec.enc == nil {
			continue
		}
		if c, ok := cs.fromRune(r); ok {
			return c, true
		}
	}
	tracer().Debugf("no charset for %#U", r)
	return 0, false
}

// FromRune maps r to a character of charset cs.
func (cs *Charset) FromRune(r rune) (Char, bool) {
	if cs.codec.enc == nil {
		return 0, false
	}
	return cs.fromRune(r)
}

func (cs *Charset) fromRune(r rune) (Char, bool) {
	enc, err := cs.codec.enc.NewEncoder().Bytes([]byte(string(r)))
	if err != nil {
		return 0, false
	}
	var b1, b2 int
	switch cs.codec.form {
	case formRightHalf:
		if len(enc) != 1 || enc[0] < 0xA0 {
			return 0, false
		}
		b1 = int(enc[0] & 0x7F)
	case formKana:
		if len(enc) != 1 || enc[0] < 0xA1 || enc[0] > 0xDF {
			return 0, false
		}
		b1 = int(enc[0] & 0x7F)
	case formEUC:
		if len(enc) != 2 || !euc(enc[0]) || !euc(enc[1]) {
			return 0, false
		}
		b1, b2 = int(enc[0]&0x7F), int(enc[1]&0x7F)
	case formEUC3:
		if len(enc) != 3 || enc[0] != 0x8F || !euc(enc[1]) || !euc(enc[2]) {
			return 0, false
		}
		b1, b2 = int(enc[1]&0x7F), int(enc[2]&0x7F)
	case formBig5:
		if len(enc) != 2 {
			return 0, false
		}
		id, c1, c2, ok := splitBig5(enc[0], enc[1])
		if !ok || id != cs.ID {
			return 0, false
		}
		b1, b2 = c1, c2
	default:
		return 0, false
	}
	c := Make(cs.ID, b1, b2)
	if !Valid(c, false) {
		return 0, false
	}
	return c, true
}

func euc(b byte) bool {
	return b >= 0xA1 && b <= 0xFE
}

// Big5 code points are folded into two 94×94 charsets, the first one
// holding lead bytes below 0xC9.
const big5SameRow = (0xFF - 0xA1) + (0x7F - 0x40)

func splitBig5(lead, trail byte) (id ID, c1, c2 int, ok bool) {
	if lead < 0xA1 || lead > 0xFE {
		return NoCharset, 0, 0, false
	}
	if !(trail >= 0x40 && trail <= 0x7E) && !(trail >= 0xA1 && trail <= 0xFE) {
		return NoCharset, 0, 0, false
	}
	off := 0x40
	if trail >= 0x7F {
		off = 0x62
	}
	tmp := (int(lead)-0xA1)*big5SameRow + int(trail) - off
	id = 0x98
	if lead >= 0xC9 {
		id = 0x99
		tmp -= (0xC9 - 0xA1) * big5SameRow
	}
	c1 = tmp/(0xFF-0xA1) + 0x21
	c2 = tmp%(0xFF-0xA1) + 0x21
	return id, c1, c2, c1 <= 0x7E
}

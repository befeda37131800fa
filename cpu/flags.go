package cpu

// Flags is the condition code state written by CMP.
type Flags uint8

const (
	FLAG_EQ = Flags(0b001) // Equal.
	FLAG_GT = Flags(0b010) // Greater than.
	FLAG_LT = Flags(0b100) // Less than.
)

// Compare returns the flags for a three-way comparison of a and b.
// Exactly one flag is set.
func Compare(a, b uint8) Flags {
	switch {
	case a < b:
		return FLAG_LT
	case a > b:
		return FLAG_GT
	}
	return FLAG_EQ
}

// Equal is true only when the flags are exactly {equal}.
func (fl Flags) Equal() bool {
	return fl == FLAG_EQ
}

// Greater is true only when the flags are exactly {greater-than}.
func (fl Flags) Greater() bool {
	return fl == FLAG_GT
}

// Less is true only when the flags are exactly {less-than}.
func (fl Flags) Less() bool {
	return fl == FLAG_LT
}

// String returns the flags as "LGE", with '-' for each clear bit.
func (fl Flags) String() string {
	out := []byte("---")
	if fl&FLAG_LT != 0 {
		out[0] = 'L'
	}
	if fl&FLAG_GT != 0 {
		out[1] = 'G'
	}
	if fl&FLAG_EQ != 0 {
		out[2] = 'E'
	}
	return string(out)
}

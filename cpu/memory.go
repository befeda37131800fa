package cpu

const (
	MEMORY_SIZE    = 256  // Bytes of addressable memory.
	REGISTER_COUNT = 8    // General purpose registers, including the stack pointer.
	STACK_TOP      = 0xf3 // Reset value of the stack pointer.
)

// Memory is the flat byte store of the machine. Addresses are bytes, so
// every address is in range and address arithmetic wraps.
type Memory [MEMORY_SIZE]uint8

// Read returns the byte at address mar.
func (mem *Memory) Read(mar uint8) (mdr uint8) {
	return mem[mar]
}

// Write stores mdr at address mar.
func (mem *Memory) Write(mar uint8, mdr uint8) {
	mem[mar] = mdr
}

// Load copies data into memory starting at address 0.
func (mem *Memory) Load(data []uint8) (err error) {
	if len(data) > len(mem) {
		err = ErrProgramTooLarge
		return
	}

	copy(mem[:], data)

	return
}

// Reset zeros all of memory.
func (mem *Memory) Reset() {
	clear(mem[:])
}

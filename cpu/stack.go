package cpu

// The stack lives in memory, grows downward, and is addressed by the stack
// pointer register. Underflow and overflow wrap around memory.

// Push decrements the stack pointer and writes value at the new top.
func (cpu *Cpu) Push(value uint8) {
	cpu.Register[REG_SP]--
	cpu.Memory.Write(cpu.Register[REG_SP], value)
}

// Pop reads the top of stack, then increments the stack pointer.
func (cpu *Cpu) Pop() (value uint8) {
	value = cpu.Peek()
	cpu.Register[REG_SP]++
	return
}

// Peek returns the top of stack without moving the stack pointer.
func (cpu *Cpu) Peek() (value uint8) {
	return cpu.Memory.Read(cpu.Register[REG_SP])
}

// StackDepth returns the number of bytes pushed below STACK_TOP. A negative
// depth means more has been popped than pushed.
func (cpu *Cpu) StackDepth() int {
	return STACK_TOP - int(cpu.Register[REG_SP])
}

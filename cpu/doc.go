// Package cpu implements the LS-8 microprocessor.
//
// The CPU consists of a program counter (PC), 256 bytes of memory, eight 8-bit
// general-purpose registers (r0-r7, with r7 reserved as the stack pointer), an
// ALU, and a three bit flags register written by CMP and read by the
// conditional jumps.
//
// Each instruction is a single byte followed by zero to two operand bytes:
//
//	AABCDDDD
//	||||`---- opcode within the category
//	|||`----- special (control flow) category
//	||`------ ALU category
//	`-------- operand count
//
// Programs are loaded from text, one binary byte per line.
package cpu

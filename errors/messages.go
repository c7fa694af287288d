package errors

var messages = map[Errno]string{
	InvalidROM:           "invalid ROM: %s",
	FileFormat:           "file format error: %s",
	CPUHalt:              "CPU halted at $%04x on opcode $%02x",
	ExternalSinkOverflow: "%s sink overflowed, frame dropped",
	InputInvalid:         "invalid input: %s",
}

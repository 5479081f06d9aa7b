package serverpackets

import "unicode/utf16"

const (
	opcodeFail = 0xFF
)

// Fail reason codes.
const (
	ReasonMalformed       = 0x01
	ReasonIndexRange      = 0x02
	ReasonCoordinateRange = 0x03
	ReasonDegenerate      = 0x04
)

// Fail [0xFF] — сервер → клиент запрос отклонён
//
// Format:
//   [opcodeFail]                         // opcode
//   [reason byte]                        // ReasonXXX constants
//   [message UTF-16LE null-terminated]
//
// Returns: number of bytes written to buf
func Fail(buf []byte, reason byte, message string) int {
	pos := 0

	// Opcode
	buf[pos] = opcodeFail
	pos++

	// Reason
	buf[pos] = reason
	pos++

	// Message (UTF-16LE null-terminated)
	messageRunes := utf16.Encode([]rune(message))
	for _, r := range messageRunes {
		buf[pos] = byte(r)
		buf[pos+1] = byte(r >> 8)
		pos += 2
	}

	// Null terminator
	buf[pos] = 0
	buf[pos+1] = 0
	pos += 2

	return pos
}

// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package max7219

// Command is a register address on the MAX7219/MAX7221. The digit registers
// each hold one display position, the remaining registers control chip state.
// Register values never exceed one byte.
type Command byte

const (
	CmdNoop        Command = 0x00
	CmdDigit0      Command = 0x01
	CmdDigit1      Command = 0x02
	CmdDigit2      Command = 0x03
	CmdDigit3      Command = 0x04
	CmdDigit4      Command = 0x05
	CmdDigit5      Command = 0x06
	CmdDigit6      Command = 0x07
	CmdDigit7      Command = 0x08
	CmdDecodeMode  Command = 0x09
	CmdIntensity   Command = 0x0a
	CmdScanLimit   Command = 0x0b
	CmdShutdown    Command = 0x0c
	CmdDisplayTest Command = 0x0f
)

// DecodeMode selects whether digit register writes are interpreted as raw
// segment patterns or as Code B BCD values. Refer to the datasheet for more
// information.
type DecodeMode byte

const (
	// DecodeNone is RAW mode, or not decoded. Each bit of a digit register
	// drives one segment directly.
	DecodeNone DecodeMode = 0x00
	// DecodeB0 enables Code B decoding for digit 0 only.
	DecodeB0 DecodeMode = 0x01
	// DecodeB3 enables Code B decoding for digits 3 down to 0.
	DecodeB3 DecodeMode = 0x0f
	// DecodeB enables Code B decoding for all eight digits. E.G. given a
	// binary 0, the chip turns on the segments that display the character 0.
	DecodeB DecodeMode = 0xff
)

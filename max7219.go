// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package max7219

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
)

// Dev drives a chain of MAX7219/MAX7221 chips through a Connector. It
// sequences initialization and tracks the last programmed decode mode so
// redundant register writes are skipped.
//
// A Dev is not safe for concurrent use; it owns its transport and frame
// buffer exclusively and callers sharing one must serialize access.
type Dev struct {
	c Connector
	// decode is the last mode written to the chain, one value for the whole
	// Dev rather than per device.
	decode DecodeMode

	// Text cursor and written patterns for the display.TextDisplay surface.
	row, col int
	shadow   [MaxDevices][fieldWidth]byte
}

// New returns a Dev on a custom Connector. The chain starts blanked and
// powered down; call PowerOn to light it.
func New(c Connector) (*Dev, error) {
	d := &Dev{c: c}
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

// NewPins returns a Dev that bit-bangs the chain through the given data,
// load/chip-select and clock pins. devices is clamped to 1..MaxDevices.
func NewPins(din, cs, clk gpio.PinOut, devices int) (*Dev, error) {
	return New(NewPinConnector(din, cs, clk, devices))
}

// NewSPI returns a Dev on an SPI port with hardware chip select. devices is
// clamped to 1..MaxDevices.
func NewSPI(p spi.Port, devices int) (*Dev, error) {
	c, err := NewSPIConnector(p, devices)
	if err != nil {
		return nil, err
	}
	return New(c)
}

// NewSPICS returns a Dev on an SPI port with the load line driven through
// the given pin. devices is clamped to 1..MaxDevices.
func NewSPICS(p spi.Port, cs gpio.PinOut, devices int) (*Dev, error) {
	c, err := NewSPICSConnector(p, cs, devices)
	if err != nil {
		return nil, err
	}
	return New(c)
}

// Init puts every chained device in a known state: test mode off, all eight
// digits scanned, raw decode, blank digits, then the whole chain powered
// down. It runs at construction and can be called again to resynchronize
// after a transport error.
func (d *Dev) Init() error {
	for addr := range d.c.Devices() {
		if err := d.Test(addr, false); err != nil {
			return err
		}
		if err := d.WriteData(addr, CmdScanLimit, 0x07); err != nil {
			return err
		}
		if err := d.WriteData(addr, CmdDecodeMode, byte(DecodeNone)); err != nil {
			return err
		}
		if err := d.ClearDisplay(addr); err != nil {
			return err
		}
	}
	d.decode = DecodeNone
	d.row, d.col = 0, 0
	return d.PowerOff()
}

// Devices returns the configured chain length.
func (d *Dev) Devices() int {
	return d.c.Devices()
}

// PowerOn takes every chained device out of shutdown.
func (d *Dev) PowerOn() error {
	for addr := range d.c.Devices() {
		if err := d.WriteData(addr, CmdShutdown, 0x01); err != nil {
			return err
		}
	}
	return nil
}

// PowerOff puts every chained device in shutdown. Register contents are
// preserved.
func (d *Dev) PowerOff() error {
	for addr := range d.c.Devices() {
		if err := d.WriteData(addr, CmdShutdown, 0x00); err != nil {
			return err
		}
	}
	return nil
}

// ClearDisplay blanks all eight digits of the device at addr.
func (d *Dev) ClearDisplay(addr int) error {
	for digit := CmdDigit0; digit <= CmdDigit7; digit++ {
		if err := d.WriteData(addr, digit, 0x00); err != nil {
			return err
		}
	}
	clear(d.shadow[addr][:])
	return nil
}

// SetIntensity sets the brightness of the device at addr. intensity is
// masked to the valid 0x00..0x0f range. Keep in mind that the brighter the
// display, the more current drawn.
func (d *Dev) SetIntensity(addr int, intensity byte) error {
	return d.WriteData(addr, CmdIntensity, intensity&0x0f)
}

// SetDecodeMode programs the decode mode of the device at addr. The write
// is skipped when the chain is already in the requested mode.
func (d *Dev) SetDecodeMode(addr int, mode DecodeMode) error {
	if mode == d.decode {
		return nil
	}
	if err := d.WriteData(addr, CmdDecodeMode, byte(mode)); err != nil {
		return err
	}
	d.decode = mode
	return nil
}

// Test turns the device's test mode on or off. Test mode lights every
// segment at maximum intensity; be aware of the current draw on long chains.
func (d *Dev) Test(addr int, on bool) error {
	data := byte(0x00)
	if on {
		data = 0x01
	}
	return d.WriteData(addr, CmdDisplayTest, data)
}

// WriteData writes data to the register described by cmd on the device at
// addr.
func (d *Dev) WriteData(addr int, cmd Command, data byte) error {
	return d.c.WriteRaw(addr, byte(cmd), data)
}

// WriteRaw writes data to a register given by its raw byte value.
func (d *Dev) WriteRaw(addr int, register, data byte) error {
	return d.c.WriteRaw(addr, register, data)
}

// WriteStr displays up to eight characters on the device at addr, mapped
// through the segment font. The first character lands in the highest digit
// register so it reads leftmost on common modules; WriteDigits uses the
// opposite, ascending register order. Bit 7 of dots turns the decimal point
// on for the first character, bit 6 for the second, and so on.
//
// The device is temporarily forced to raw decode; the previous mode is
// restored before returning.
func (d *Dev) WriteStr(addr int, text []byte, dots byte) error {
	prev := d.decode
	if err := d.SetDecodeMode(addr, DecodeNone); err != nil {
		return err
	}
	digit := CmdDigit7
	for i, c := range text {
		dot := dots&(0x80>>i) != 0
		if err := d.WriteData(addr, digit, SegmentPattern(c, dot)); err != nil {
			return err
		}
		if digit == CmdDigit0 {
			break
		}
		digit--
	}
	return d.SetDecodeMode(addr, prev)
}

// WriteBCD displays up to eight characters on the device at addr using the
// chip's own Code B decoder. Valid input is 0-9, dash and the letters E, H,
// L and P, where uppercase turns the decimal point on; everything else
// blanks the position.
//
// The device is temporarily forced to full Code B decode; the previous mode
// is restored before returning.
func (d *Dev) WriteBCD(addr int, bcd []byte) error {
	prev := d.decode
	if err := d.SetDecodeMode(addr, DecodeB); err != nil {
		return err
	}
	digit := CmdDigit7
	for _, c := range bcd {
		if err := d.WriteData(addr, digit, CodeB(c)); err != nil {
			return err
		}
		if digit == CmdDigit0 {
			break
		}
		digit--
	}
	return d.SetDecodeMode(addr, prev)
}

// WriteDigits writes up to eight raw bytes to the digit registers of the
// device at addr in ascending register order, unmodified. The device is
// temporarily forced to raw decode; the previous mode is restored before
// returning.
func (d *Dev) WriteDigits(addr int, raw []byte) error {
	prev := d.decode
	if err := d.SetDecodeMode(addr, DecodeNone); err != nil {
		return err
	}
	digit := CmdDigit0
	for _, b := range raw {
		if err := d.WriteData(addr, digit, b); err != nil {
			return err
		}
		if digit == CmdDigit7 {
			break
		}
		digit++
	}
	return d.SetDecodeMode(addr, prev)
}

// WriteInt displays value as signed decimal, right justified across the
// eight digits of the device at addr. Values too wide for the display, sign
// included, show as "Err".
func (d *Dev) WriteInt(addr int, value int) error {
	return d.WriteStr(addr, decimalField(value), 0)
}

// WriteHex displays value as unsigned hexadecimal, right justified across
// the eight digits of the device at addr. Values too wide for the display
// show as "Err".
func (d *Dev) WriteHex(addr int, value uint64) error {
	return d.WriteStr(addr, hexField(value), 0)
}

// String implements conn.Resource.
func (d *Dev) String() string {
	return fmt.Sprintf("max7219.Dev{%s}", d.c)
}

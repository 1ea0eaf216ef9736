// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package segterm implements a max7219.Connector that renders the chain to
// terminal (stdout) using ANSI color codes.
//
// Useful while you are waiting for your segment display modules to come by
// mail: the full driver stack runs against it unchanged.
package segterm

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/devices/v3/max7219"
)

// Opts represents the options available for this connector.
type Opts struct {
	// Devices is the emulated chain length, clamped to 1..max7219.MaxDevices.
	Devices int
	// Palette defaults to ansi256.Default.
	Palette *ansi256.Palette
	// W defaults to a colorable stdout.
	W io.Writer

	_ struct{}
}

// unit is the register state of one emulated chip.
type unit struct {
	digits    [8]byte
	decode    byte
	intensity byte
	scan      byte
	on        bool
	test      bool
}

// Display emulates a chain of MAX7219 chips on the console.
type Display struct {
	devices int
	palette ansi256.Palette
	w       io.Writer

	units [max7219.MaxDevices]unit
	buf   bytes.Buffer
}

// New returns a Display that renders the chain state at the console.
//
// Permits local testing of display code without hardware.
func New(opts *Opts) *Display {
	devices := opts.Devices
	if devices < 1 {
		devices = 1
	}
	if devices > max7219.MaxDevices {
		devices = max7219.MaxDevices
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	return &Display{devices: devices, palette: *p, w: w}
}

// Devices implements max7219.Connector.
func (d *Display) Devices() int {
	return d.devices
}

func (d *Display) String() string {
	return fmt.Sprintf("segterm.Display{%d}", d.devices)
}

// WriteRaw implements max7219.Connector. It decodes the register write into
// the emulated chip state and redraws the chain.
func (d *Display) WriteRaw(addr int, register, data byte) error {
	if addr < 0 || addr >= d.devices {
		return fmt.Errorf("segterm: %w: address %d on a chain of %d", max7219.ErrAddressOutOfRange, addr, d.devices)
	}
	u := &d.units[addr]
	switch {
	case register >= byte(max7219.CmdDigit0) && register <= byte(max7219.CmdDigit7):
		u.digits[register-byte(max7219.CmdDigit0)] = data
	case register == byte(max7219.CmdDecodeMode):
		u.decode = data
	case register == byte(max7219.CmdIntensity):
		u.intensity = data & 0x0f
	case register == byte(max7219.CmdScanLimit):
		u.scan = data & 0x07
	case register == byte(max7219.CmdShutdown):
		u.on = data&0x01 != 0
	case register == byte(max7219.CmdDisplayTest):
		u.test = data&0x01 != 0
	}
	return d.refresh()
}

// refresh redraws the whole chain on one line, one block per digit, colored
// by the unit's intensity.
func (d *Display) refresh() (err error) {
	// This code is designed to minimize the amount of memory allocated per
	// call.
	d.buf.Reset()
	_, _ = d.buf.WriteString("\r\033[0m")
	for ix := range d.devices {
		if ix > 0 {
			_ = d.buf.WriteByte(' ')
		}
		u := &d.units[ix]
		for col := range 8 {
			_, _ = io.WriteString(&d.buf, d.palette.Block(u.color(7-col)))
		}
	}
	_, _ = d.buf.WriteString("\033[0m ")
	if _, werr := d.buf.WriteTo(d.w); werr != nil {
		err = fmt.Errorf("segterm: %w: %v", max7219.ErrBusFault, werr)
	}
	return
}

// color returns the rendered color of the digit register, taking shutdown,
// test mode and intensity into account.
func (u *unit) color(digit int) color.NRGBA {
	lit := u.lit(digit)
	if !u.on && !u.test {
		lit = false
	}
	if !lit {
		return color.NRGBA{R: 0x28, G: 0x14, A: 255}
	}
	level := (int(u.intensity) + 1) * 255 / 16
	if u.test {
		level = 255
	}
	return color.NRGBA{R: byte(level), G: byte(level * 5 / 8), A: 255}
}

// lit reports whether any segment of the digit register is on.
func (u *unit) lit(digit int) bool {
	v := u.digits[digit]
	if u.decode&(1<<digit) != 0 {
		return v&0x0f != 0x0f || v&0x80 != 0
	}
	return v != 0
}

// Text returns the characters currently shown, one line per chained device,
// decoding Code B values and raw segment patterns back through the driver's
// tables. Positions with a lit decimal point carry a trailing dot.
func (d *Display) Text() string {
	var sb strings.Builder
	for ix := range d.devices {
		if ix > 0 {
			_ = sb.WriteByte('\n')
		}
		u := &d.units[ix]
		for col := range 8 {
			digit := 7 - col
			v := u.digits[digit]
			if u.decode&(1<<digit) != 0 {
				_ = sb.WriteByte(codeBText[v&0x0f])
			} else {
				_ = sb.WriteByte(patternText(v))
			}
			if v&0x80 != 0 {
				_ = sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// codeBText maps Code B values back to characters.
const codeBText = "0123456789-EHLP "

// glyphCandidates orders the reverse font lookup; listed first wins for
// patterns shared between characters (e.g. '0' and 'O').
const glyphCandidates = "0123456789 -_AbCcdEFGHhJLNnoPqrStUuy"

var textForPattern = func() map[byte]byte {
	m := make(map[byte]byte, len(glyphCandidates))
	for i := 0; i < len(glyphCandidates); i++ {
		c := glyphCandidates[i]
		p := max7219.SegmentPattern(c, false)
		if _, ok := m[p]; !ok {
			m[p] = c
		}
	}
	return m
}()

func patternText(v byte) byte {
	if c, ok := textForPattern[v&0x7f]; ok {
		return c
	}
	return '?'
}

var _ max7219.Connector = &Display{}

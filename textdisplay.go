// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package max7219

import (
	"errors"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
)

// Dev implements display.TextDisplay over the chain: one row per chained
// device, eight columns per row. Characters written at the cursor are mapped
// through the segment font; a '.' is merged into the preceding position
// instead of occupying its own digit.

// AutoScroll is not supported by this device. Returns
// display.ErrNotImplemented.
func (d *Dev) AutoScroll(enabled bool) error {
	return wrap(display.ErrNotImplemented)
}

// Clear blanks every chained device and moves the cursor home.
func (d *Dev) Clear() error {
	for addr := range d.c.Devices() {
		if err := d.ClearDisplay(addr); err != nil {
			return err
		}
	}
	return d.Home()
}

// Cols returns the number of characters per chained device.
func (d *Dev) Cols() int {
	return fieldWidth
}

// Rows returns the number of chained devices.
func (d *Dev) Rows() int {
	return d.c.Devices()
}

// MinCol returns the min column position.
func (d *Dev) MinCol() int {
	return 0
}

// MinRow returns the min row position.
func (d *Dev) MinRow() int {
	return 0
}

// Cursor accepts CursorOff only; a segment display has no visible cursor.
func (d *Dev) Cursor(mode ...display.CursorMode) error {
	for _, m := range mode {
		if m != display.CursorOff {
			return wrap(display.ErrNotImplemented)
		}
	}
	return nil
}

// Display turns the chain on or off via the shutdown register. Digit
// contents are preserved while off.
func (d *Dev) Display(on bool) error {
	if on {
		return d.PowerOn()
	}
	return d.PowerOff()
}

// Home moves the cursor to (MinRow(), MinCol()).
func (d *Dev) Home() error {
	return d.MoveTo(d.MinRow(), d.MinCol())
}

// Move the cursor forward or backward within the current row.
func (d *Dev) Move(dir display.CursorDirection) error {
	switch dir {
	case display.Forward:
		if d.col < d.Cols()-1 {
			d.col++
		}
	case display.Backward:
		if d.col > d.MinCol() {
			d.col--
		}
	default:
		return wrap(display.ErrNotImplemented)
	}
	return nil
}

// MoveTo moves the cursor to an arbitrary position.
func (d *Dev) MoveTo(row, col int) error {
	if row < d.MinRow() || row >= d.Rows() ||
		col < d.MinCol() || col >= d.Cols() {
		return wrap(errors.New("invalid MoveTo() offset"))
	}
	d.row, d.col = row, col
	return nil
}

// Write displays p at the cursor, advancing it and wrapping to the next
// chained device at the end of a row. Bytes past the last device are
// dropped. A '.' sets the decimal point of the previous position when there
// is one.
func (d *Dev) Write(p []byte) (int, error) {
	prev := d.decode
	if d.row < d.Rows() {
		if err := d.SetDecodeMode(d.row, DecodeNone); err != nil {
			return 0, err
		}
	}
	n := 0
	for _, c := range p {
		if c == '.' && (d.col > 0 || d.row > 0) {
			row, col := d.row, d.col-1
			if col < 0 {
				row, col = row-1, fieldWidth-1
			}
			d.shadow[row][col] |= SegDP
			if err := d.writeCell(row, col); err != nil {
				return n, err
			}
			n++
			continue
		}
		if d.row >= d.Rows() {
			break
		}
		d.shadow[d.row][d.col] = SegmentPattern(c, false)
		if err := d.writeCell(d.row, d.col); err != nil {
			return n, err
		}
		n++
		d.col++
		if d.col == fieldWidth {
			d.col = 0
			d.row++
		}
	}
	row := min(d.row, d.Rows()-1)
	return n, d.SetDecodeMode(row, prev)
}

// WriteString displays text at the cursor.
func (d *Dev) WriteString(text string) (int, error) {
	return d.Write([]byte(text))
}

// writeCell sends the shadowed pattern of one text position. Column 0 is
// the highest digit register so rows read left to right.
func (d *Dev) writeCell(row, col int) error {
	return d.WriteData(row, CmdDigit7-Command(col), d.shadow[row][col])
}

// Halt blanks the chain and powers it down.
func (d *Dev) Halt() error {
	if err := d.Clear(); err != nil {
		return err
	}
	return d.PowerOff()
}

var _ display.TextDisplay = &Dev{}
var _ conn.Resource = &Dev{}

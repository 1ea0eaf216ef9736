// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package max7219

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// MaxDevices is the longest chain of MAX7219 chips a single connector
// drives. Longer chains need a second load line.
const MaxDevices = 8

// Connector shifts register writes out to a chain of MAX7219 chips. One
// frame covers the 2-byte slot of every chained device; the addressed device
// gets the (register, data) pair and every other slot carries the no-op
// register so a write does not disturb the rest of the chain.
//
// A failed transfer aborts immediately. The load line state after a partial
// failure is unspecified; callers should re-run Dev.Init to resynchronize.
type Connector interface {
	// Devices returns the configured chain length.
	Devices() int
	// WriteRaw writes data to the given register of the device at addr.
	// addr 0 is the device closest to the microcontroller.
	WriteRaw(addr int, register, data byte) error
	fmt.Stringer
}

// frame owns the scratch transmission buffer shared by all transports. The
// buffer is transient: it is zeroed on every load so no state leaks between
// transfers.
type frame struct {
	devices int
	buf     [MaxDevices * 2]byte
}

func newFrame(devices int) frame {
	if devices < 1 {
		devices = 1
	}
	if devices > MaxDevices {
		devices = MaxDevices
	}
	return frame{devices: devices}
}

func (f *frame) Devices() int {
	return f.devices
}

// load rebuilds the frame for a single register write and returns the slice
// covering the active chain.
func (f *frame) load(addr int, register, data byte) ([]byte, error) {
	if addr < 0 || addr >= f.devices {
		return nil, addrFault(addr, f.devices)
	}
	clear(f.buf[:])
	f.buf[addr*2] = register
	f.buf[addr*2+1] = data
	return f.buf[:f.devices*2], nil
}

// PinConnector bit-bangs frames over three discrete output pins. Each byte
// is shifted out MSB first; every bit is presented on the data pin and
// clocked with a low-to-high-to-low pulse. The load pin brackets the frame.
type PinConnector struct {
	frame
	din gpio.PinOut
	cs  gpio.PinOut
	clk gpio.PinOut
}

// NewPinConnector returns a Connector that drives the chain through the
// given data, load/chip-select and clock pins. devices is clamped to
// 1..MaxDevices.
func NewPinConnector(din, cs, clk gpio.PinOut, devices int) *PinConnector {
	return &PinConnector{frame: newFrame(devices), din: din, cs: cs, clk: clk}
}

func (c *PinConnector) WriteRaw(addr int, register, data byte) error {
	w, err := c.load(addr, register, data)
	if err != nil {
		return err
	}
	if err := c.cs.Out(gpio.Low); err != nil {
		return pinFault(err)
	}
	for _, b := range w {
		if err := c.shiftOut(b); err != nil {
			return err
		}
	}
	// The rising edge latches every device's slot at once.
	if err := c.cs.Out(gpio.High); err != nil {
		return pinFault(err)
	}
	return nil
}

func (c *PinConnector) shiftOut(value byte) error {
	for i := 7; i >= 0; i-- {
		level := gpio.Low
		if value&(1<<i) != 0 {
			level = gpio.High
		}
		if err := c.din.Out(level); err != nil {
			return pinFault(err)
		}
		if err := c.clk.Out(gpio.High); err != nil {
			return pinFault(err)
		}
		if err := c.clk.Out(gpio.Low); err != nil {
			return pinFault(err)
		}
	}
	return nil
}

func (c *PinConnector) String() string {
	return fmt.Sprintf("max7219.PinConnector{%s, %s, %s, %d}", c.din.Name(), c.cs.Name(), c.clk.Name(), c.devices)
}

// SPIConnector transfers frames over an SPI port whose chip select is
// controlled by the port hardware.
type SPIConnector struct {
	frame
	c spi.Conn
}

// NewSPIConnector connects to the given port and returns a Connector that
// transfers whole frames in one bus write. devices is clamped to
// 1..MaxDevices.
func NewSPIConnector(p spi.Port, devices int) (*SPIConnector, error) {
	// The chip works in Mode0 at up to 10MHz.
	c, err := p.Connect(10*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, busFault(err)
	}
	return &SPIConnector{frame: newFrame(devices), c: c}, nil
}

func (c *SPIConnector) WriteRaw(addr int, register, data byte) error {
	w, err := c.load(addr, register, data)
	if err != nil {
		return err
	}
	if err := c.c.Tx(w, nil); err != nil {
		return busFault(err)
	}
	return nil
}

func (c *SPIConnector) String() string {
	return fmt.Sprintf("max7219.SPIConnector{%s, %d}", c.c, c.devices)
}

// SPICSConnector transfers frames over an SPI port while toggling the load
// line itself through a discrete pin. Useful when the chip is not wired to
// the port's chip select, or when the port has none.
type SPICSConnector struct {
	frame
	c  spi.Conn
	cs gpio.PinOut
}

// NewSPICSConnector connects to the given port with hardware chip select
// disabled and brackets every transfer with the given load pin. devices is
// clamped to 1..MaxDevices.
func NewSPICSConnector(p spi.Port, cs gpio.PinOut, devices int) (*SPICSConnector, error) {
	c, err := p.Connect(10*physic.MegaHertz, spi.Mode0|spi.NoCS, 8)
	if err != nil {
		return nil, busFault(err)
	}
	return &SPICSConnector{frame: newFrame(devices), c: c, cs: cs}, nil
}

func (c *SPICSConnector) WriteRaw(addr int, register, data byte) error {
	w, err := c.load(addr, register, data)
	if err != nil {
		return err
	}
	if err := c.cs.Out(gpio.Low); err != nil {
		return pinFault(err)
	}
	if err := c.c.Tx(w, nil); err != nil {
		return busFault(err)
	}
	if err := c.cs.Out(gpio.High); err != nil {
		return pinFault(err)
	}
	return nil
}

func (c *SPICSConnector) String() string {
	return fmt.Sprintf("max7219.SPICSConnector{%s, %s, %d}", c.c, c.cs.Name(), c.devices)
}

var _ Connector = &PinConnector{}
var _ Connector = &SPIConnector{}
var _ Connector = &SPICSConnector{}

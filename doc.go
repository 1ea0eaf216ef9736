// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package max7219 controls chains of MAX7219/MAX7221 segmented LED display
// drivers.
//
// Up to eight chips can be daisy-chained and addressed individually through
// one connection: every transfer shifts a frame covering all chained devices,
// with the no-op register padding the devices that are not addressed. The
// driver offers semantic operations (power, intensity, decode mode, string,
// BCD, integer and hexadecimal writes) on top of that framing, plus the
// display.TextDisplay interface treating the chain as one row of eight
// characters per device.
//
// Three transports are provided: bit-banging through three gpio pins, an SPI
// port with hardware chip select, and an SPI port with the load line driven
// through a discrete pin. Custom transports implement Connector; the segterm
// subpackage contains one that renders the chain to a terminal for testing
// without hardware.
//
// # Wiring
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 5V
//	DIN         → SPI MOSI (or any GPIO for bit-banging)
//	CS/LOAD     → SPI Chip Select (or any GPIO)
//	CLK         → SPI Clock (or any GPIO)
//
// The chain starts blanked and powered down; call PowerOn after construction.
//
// # Datasheet
//
// https://www.analog.com/media/en/technical-documentation/data-sheets/MAX7219-MAX7221.pdf
package max7219

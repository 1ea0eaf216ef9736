// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package max7219

import (
	"errors"
	"fmt"
)

var (
	// ErrPinFault indicates that driving a logical pin (data, clock or load)
	// failed. The in-flight frame is aborted and the load line state is
	// unspecified.
	ErrPinFault = errors.New("pin fault")
	// ErrBusFault indicates that a bulk serial transfer failed. The in-flight
	// frame is aborted.
	ErrBusFault = errors.New("bus fault")
	// ErrAddressOutOfRange indicates a device address at or beyond the
	// configured chain length.
	ErrAddressOutOfRange = errors.New("device address out of range")
)

func wrap(err error) error {
	return fmt.Errorf("max7219: %w", err)
}

func pinFault(err error) error {
	return fmt.Errorf("max7219: %w: %v", ErrPinFault, err)
}

func busFault(err error) error {
	return fmt.Errorf("max7219: %w: %v", ErrBusFault, err)
}

func addrFault(addr, devices int) error {
	return fmt.Errorf("max7219: %w: address %d on a chain of %d", ErrAddressOutOfRange, addr, devices)
}

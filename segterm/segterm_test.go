// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package segterm

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/devices/v3/max7219"
)

func testDisplay(t *testing.T, devices int) (*max7219.Dev, *Display, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	d := New(&Opts{Devices: devices, W: &buf})
	dev, err := max7219.New(d)
	if err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	return dev, d, &buf
}

func TestBlankAfterInit(t *testing.T) {
	_, d, _ := testDisplay(t, 2)
	expected := strings.Repeat(" ", 8) + "\n" + strings.Repeat(" ", 8)
	if diff := cmp.Diff(d.Text(), expected); diff != "" {
		t.Errorf("text difference (-got +want):\n%s", diff)
	}
}

func TestWriteStrText(t *testing.T) {
	dev, d, buf := testDisplay(t, 1)
	if err := dev.PowerOn(); err != nil {
		t.Fatal(err)
	}
	if err := dev.WriteStr(0, []byte("12345678"), 0); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(d.Text(), "12345678"); diff != "" {
		t.Errorf("text difference (-got +want):\n%s", diff)
	}
	if buf.Len() == 0 || !strings.Contains(buf.String(), "\r") {
		t.Error("expected terminal redraws on register writes")
	}
}

func TestWriteBCDText(t *testing.T) {
	dev, d, _ := testDisplay(t, 2)
	// Leave the chain in Code B decode so the digits render as characters.
	if err := dev.SetDecodeMode(1, max7219.DecodeB); err != nil {
		t.Fatal(err)
	}
	if err := dev.WriteBCD(1, []byte("-1234567")); err != nil {
		t.Fatal(err)
	}
	expected := strings.Repeat(" ", 8) + "\n-1234567"
	if diff := cmp.Diff(d.Text(), expected); diff != "" {
		t.Errorf("text difference (-got +want):\n%s", diff)
	}
}

func TestDecimalPointText(t *testing.T) {
	dev, d, _ := testDisplay(t, 1)
	if err := dev.WriteStr(0, []byte("1 Hello"), 0x80); err != nil {
		t.Fatal(err)
	}
	if got := d.Text(); !strings.HasPrefix(got, "1.") {
		t.Errorf("expected a merged decimal point, got %q", got)
	}
}

func TestAddressOutOfRange(t *testing.T) {
	d := New(&Opts{Devices: 2, W: &bytes.Buffer{}})
	if err := d.WriteRaw(2, 0x01, 0x00); !errors.Is(err, max7219.ErrAddressOutOfRange) {
		t.Errorf("expected ErrAddressOutOfRange, got %v", err)
	}
}

func TestClamping(t *testing.T) {
	if n := New(&Opts{Devices: 99, W: &bytes.Buffer{}}).Devices(); n != max7219.MaxDevices {
		t.Errorf("expected %d devices, got %d", max7219.MaxDevices, n)
	}
	if n := New(&Opts{W: &bytes.Buffer{}}).Devices(); n != 1 {
		t.Errorf("expected 1 device, got %d", n)
	}
}

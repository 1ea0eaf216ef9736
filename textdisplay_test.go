// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package max7219

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/display/displaytest"
)

// This tests all functions in the TextDisplay interface.
func TestInterface(t *testing.T) {
	dev, _ := testDev(t, 2)
	errs := displaytest.TestTextDisplay(dev, false)
	for _, err := range errs {
		if !errors.Is(err, display.ErrNotImplemented) {
			t.Error(err)
		}
	}
}

func TestGeometry(t *testing.T) {
	dev, _ := testDev(t, 3)
	if rows := dev.Rows(); rows != 3 {
		t.Errorf("Rows() = %d, expected 3", rows)
	}
	if cols := dev.Cols(); cols != 8 {
		t.Errorf("Cols() = %d, expected 8", cols)
	}
	if dev.MinRow() != 0 || dev.MinCol() != 0 {
		t.Error("expected zero-based cursor coordinates")
	}
}

func TestTextWrite(t *testing.T) {
	dev, record := testDev(t, 1)

	n, err := dev.WriteString("12")
	if err != nil {
		t.Error(err)
	}
	if n != 2 {
		t.Errorf("wrote %d characters, expected 2", n)
	}
	expected := []conntest.IO{
		frameFor(1, 0, 0x08, SegmentPattern('1', false)),
		frameFor(1, 0, 0x07, SegmentPattern('2', false)),
	}
	if diff := cmp.Diff(record.Ops, expected); diff != "" {
		t.Errorf("cursor write difference (-got +want):\n%s", diff)
	}
}

func TestTextWriteDotMerge(t *testing.T) {
	dev, record := testDev(t, 1)

	if _, err := dev.WriteString("1.2"); err != nil {
		t.Error(err)
	}
	expected := []conntest.IO{
		frameFor(1, 0, 0x08, SegmentPattern('1', false)),
		frameFor(1, 0, 0x08, SegmentPattern('1', true)), // dot merged into '1'
		frameFor(1, 0, 0x07, SegmentPattern('2', false)),
	}
	if diff := cmp.Diff(record.Ops, expected); diff != "" {
		t.Errorf("dot merge difference (-got +want):\n%s", diff)
	}
}

func TestTextWriteWraps(t *testing.T) {
	dev, record := testDev(t, 2)

	n, err := dev.WriteString("abcdefgh12345678")
	if err != nil {
		t.Error(err)
	}
	if n != 16 {
		t.Errorf("wrote %d characters, expected 16", n)
	}
	if len(record.Ops) != 16 {
		t.Fatalf("expected 16 digit writes, got %d", len(record.Ops))
	}
	// The 9th character lands on the second chained device.
	if diff := cmp.Diff(record.Ops[8], frameFor(2, 1, 0x08, SegmentPattern('1', false))); diff != "" {
		t.Errorf("row wrap difference (-got +want):\n%s", diff)
	}

	// The chain is full; further writes are dropped.
	record.Ops = nil
	n, err = dev.WriteString("xyz")
	if err != nil {
		t.Error(err)
	}
	if n != 0 || len(record.Ops) != 0 {
		t.Errorf("expected writes past the last device to be dropped, wrote %d", n)
	}
}

func TestTextMoveTo(t *testing.T) {
	dev, record := testDev(t, 2)

	if err := dev.MoveTo(1, 3); err != nil {
		t.Error(err)
	}
	if _, err := dev.WriteString("7"); err != nil {
		t.Error(err)
	}
	expected := []conntest.IO{frameFor(2, 1, 0x05, SegmentPattern('7', false))}
	if diff := cmp.Diff(record.Ops, expected); diff != "" {
		t.Errorf("MoveTo write difference (-got +want):\n%s", diff)
	}

	for _, bad := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 8}} {
		if err := dev.MoveTo(bad[0], bad[1]); err == nil {
			t.Errorf("MoveTo(%d, %d) accepted an out of range position", bad[0], bad[1])
		}
	}
}

func TestTextClearAndHalt(t *testing.T) {
	dev, record := testDev(t, 1)

	if _, err := dev.WriteString("8"); err != nil {
		t.Error(err)
	}
	record.Ops = nil
	if err := dev.Halt(); err != nil {
		t.Error(err)
	}
	var expected []conntest.IO
	for digit := byte(0x01); digit <= 0x08; digit++ {
		expected = append(expected, frameFor(1, 0, digit, 0x00))
	}
	expected = append(expected, frameFor(1, 0, 0x0c, 0x00))
	if diff := cmp.Diff(record.Ops, expected); diff != "" {
		t.Errorf("Halt difference (-got +want):\n%s", diff)
	}
}

func TestTextDisplayOnOff(t *testing.T) {
	dev, record := testDev(t, 1)

	if err := dev.Display(true); err != nil {
		t.Error(err)
	}
	if err := dev.Display(false); err != nil {
		t.Error(err)
	}
	expected := []conntest.IO{
		frameFor(1, 0, 0x0c, 0x01),
		frameFor(1, 0, 0x0c, 0x00),
	}
	if diff := cmp.Diff(record.Ops, expected); diff != "" {
		t.Errorf("Display difference (-got +want):\n%s", diff)
	}
}

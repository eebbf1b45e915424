package elfwriter

import (
	"bytes"
	"testing"
)

func TestWriteReadRoundTripTextOnly(t *testing.T) {
	text := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	buf := Write(text, nil, 0, 4, 1, 1)

	obj, err := Read(buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(obj.Sections) != 1 {
		t.Fatalf("got %d sections, want 1 (.text only)", len(obj.Sections))
	}
	s := obj.Sections[0]
	if s.Name != ".text" {
		t.Fatalf("section name = %q, want .text", s.Name)
	}
	if !bytes.Equal(s.Data, text) {
		t.Fatalf("section data = %v, want %v", s.Data, text)
	}
	if s.Flags&shfExec == 0 {
		t.Fatal(".text section missing SHF_EXECINSTR")
	}
}

func TestWriteReadRoundTripTextDataBss(t *testing.T) {
	text := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	data := []byte{1, 2, 3}
	buf := Write(text, data, 16, 4, 4, 8)

	obj, err := Read(buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	byName := map[string]ObjectSection{}
	for _, s := range obj.Sections {
		byName[s.Name] = s
	}

	textSec, ok := byName[".text"]
	if !ok || !bytes.Equal(textSec.Data, text) {
		t.Fatalf(".text section missing or mismatched: %+v", textSec)
	}
	dataSec, ok := byName[".data"]
	if !ok || !bytes.Equal(dataSec.Data, data) {
		t.Fatalf(".data section missing or mismatched: %+v", dataSec)
	}
	bssSec, ok := byName[".bss"]
	if !ok {
		t.Fatal(".bss section missing")
	}
	if bssSec.Type != shtNoBits {
		t.Fatalf(".bss type = %d, want SHT_NOBITS (%d)", bssSec.Type, shtNoBits)
	}
	if bssSec.Data != nil {
		t.Fatalf(".bss must carry no file bytes, got %d", len(bssSec.Data))
	}
}

func TestReadRejectsBadMagic(t *testing.T) {
	buf := Write([]byte{0x01, 0x02, 0x03, 0x04}, nil, 0, 4, 1, 1)
	buf[0] = 0x00
	if _, err := Read(buf); err == nil {
		t.Fatal("Read accepted a file with corrupted magic bytes")
	}
}

func TestReadRejectsTruncatedFile(t *testing.T) {
	buf := Write([]byte{0x01, 0x02, 0x03, 0x04}, nil, 0, 4, 1, 1)
	if _, err := Read(buf[:len(buf)-8]); err == nil {
		t.Fatal("Read accepted a file truncated inside its section-header table")
	}
}

func TestWriteOmitsEmptySections(t *testing.T) {
	buf := Write(nil, nil, 0, 4, 1, 1)
	obj, err := Read(buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(obj.Sections) != 0 {
		t.Fatalf("got %d sections for an empty object, want 0", len(obj.Sections))
	}
}

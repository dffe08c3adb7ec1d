package ppm

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gogpu/iraster"
)

func testFramebuffer() *iraster.Framebuffer {
	fb := iraster.NewFramebuffer(2, 2)
	fb.SetPixel(0, 0, iraster.U8(255, 0, 10, 99))
	fb.SetPixel(1, 0, iraster.U8(1, 2, 3, 0))
	fb.SetPixel(0, 1, iraster.U8(15, 15, 100, 0))
	fb.SetPixel(1, 1, iraster.U8(0, 0, 0, 255))
	return fb
}

func TestEncodeBinary(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testFramebuffer(), true); err != nil {
		t.Fatalf("Encode() = %v", err)
	}
	want := append([]byte("P6 2 2 255\n"),
		255, 0, 10, 1, 2, 3,
		15, 15, 100, 0, 0, 0,
	)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("P6 output = %q, want %q", buf.Bytes(), want)
	}
}

func TestEncodeASCII(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testFramebuffer(), false); err != nil {
		t.Fatalf("Encode() = %v", err)
	}
	want := "P3 2 2 255\n" +
		"255 0 10 1 2 3 \n" +
		"15 15 100 0 0 0 \n"
	if buf.String() != want {
		t.Errorf("P3 output = %q, want %q", buf.String(), want)
	}
}

func TestEncodeBinarySize(t *testing.T) {
	cfg := iraster.DefaultConfig()
	fb, err := iraster.RenderScene(cfg, iraster.SceneSphere)
	if err != nil {
		t.Fatalf("RenderScene() = %v", err)
	}
	var buf bytes.Buffer
	if err := EncodeBinary(&buf, fb); err != nil {
		t.Fatalf("EncodeBinary() = %v", err)
	}
	header := "P6 256 256 255\n"
	if got, want := buf.Len(), len(header)+256*256*3; got != want {
		t.Errorf("len = %d, want %d", got, want)
	}
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestEncodeWriteError(t *testing.T) {
	fb := iraster.NewFramebuffer(64, 64)
	for _, binary := range []bool{true, false} {
		if err := Encode(failingWriter{}, fb, binary); !errors.Is(err, errDiskFull) {
			t.Errorf("Encode(binary=%v) error = %v, want %v", binary, err, errDiskFull)
		}
	}
}

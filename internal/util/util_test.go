package util

import "testing"

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "zero bytes", bytes: 0, expected: "0"},
		{name: "bytes under kilobyte", bytes: 512, expected: "512B"},
		{name: "exact kilobyte", bytes: 1000, expected: "1.00KB"},
		{name: "fractional kilobyte", bytes: 1500, expected: "1.50KB"},
		{name: "megabyte", bytes: 5_000_000, expected: "5.00MB"},
		{name: "binary megabyte", bytes: 1024 * 1024, expected: "1.05MB"},
		{name: "gigabyte", bytes: 5_000_000_000, expected: "5.00GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatBytes(tt.bytes); got != tt.expected {
				t.Fatalf("FormatBytes(%d) = %s, want %s", tt.bytes, got, tt.expected)
			}
		})
	}
}

func TestContentChecksum(t *testing.T) {
	t.Parallel()

	const emptySHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

	if got := ContentChecksum(nil); got != emptySHA256 {
		t.Fatalf("ContentChecksum(nil) = %s, want %s", got, emptySHA256)
	}

	if ContentChecksum([]byte("shoe.png")) == ContentChecksum([]byte("boot.png")) {
		t.Fatal("different content produced the same checksum")
	}
}

func TestParseByteSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "5MB", want: 5_000_000},
		{raw: "100KB", want: 100_000},
		{raw: " 2mb ", want: 2_000_000},
		{raw: "5MiB", want: 5 * 1024 * 1024},
		{raw: "0", wantErr: true},
		{raw: "lots", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			got, err := ParseByteSize(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseByteSize(%q) expected error", tt.raw)
				}

				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("ParseByteSize(%q) = %d, %v; want %d", tt.raw, got, err, tt.want)
			}
		})
	}
}

func TestParseByteSizeRoundTripsThroughFormatBytes(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"5MB", "100KB", "2GB"} {
		size, err := ParseByteSize(raw)
		if err != nil {
			t.Fatalf("ParseByteSize(%q): %v", raw, err)
		}
		back, err := ParseByteSize(FormatBytes(size))
		if err != nil || back != size {
			t.Fatalf("FormatBytes(%d) = %s parses to %d, %v", size, FormatBytes(size), back, err)
		}
	}
}

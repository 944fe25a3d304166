package shared

import "testing"

func TestFormatSize(t *testing.T) {
	tc := []struct {
		name string
		size int64
		want string
	}{
		{name: "zero bytes", size: 0, want: "0.00 B"},
		{name: "just under a kilobyte", size: 1023, want: "1023.00 B"},
		{name: "one kilobyte", size: 1024, want: "1.00 kB"},
		{name: "one and a half kilobytes", size: 1536, want: "1.50 kB"},
		{name: "one megabyte", size: 1048576, want: "1.00 MB"},
		{name: "two kilobytes", size: 2048, want: "2.00 kB"},
		{name: "one gigabyte", size: 1 << 30, want: "1.00 GB"},
		{name: "one terabyte", size: 1 << 40, want: "1.00 TB"},
		{name: "one petabyte", size: 1 << 50, want: "1.00 PB"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatSize(tt.size)
			if got != tt.want {
				t.Errorf("FormatSize(%d) = %v, want %v", tt.size, got, tt.want)
			}
		})
	}
}

package cmd

import "testing"

func TestParseSize(t *testing.T) {
	cases := []struct {
		spec    string
		want    int64
		wantErr bool
	}{
		{"1024", 1024, false},
		{"512B", 512, false},
		{"1KiB", 1024, false},
		{"32KiB", 32 * 1024, false},
		{"1MiB", 1024 * 1024, false},
		{"2GiB", 2 * 1024 * 1024 * 1024, false},
		{" 4KiB ", 4 * 1024, false},
		{"", 0, true},
		{"abc", 0, true},
		{"-1KiB", 0, true},
		{"0", 0, true},
	}
	for _, tc := range cases {
		got, err := parseSize(tc.spec)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseSize(%q) = %d, want error", tc.spec, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseSize(%q): %v", tc.spec, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseSize(%q) = %d, want %d", tc.spec, got, tc.want)
		}
	}
}

func TestParseSizes(t *testing.T) {
	got, err := parseSizes([]string{"1KiB", "1MiB"})
	if err != nil {
		t.Fatalf("parseSizes: %v", err)
	}
	if len(got) != 2 || got[0] != 1024 || got[1] != 1024*1024 {
		t.Errorf("parseSizes = %v", got)
	}

	if _, err := parseSizes([]string{"1KiB", "nope"}); err == nil {
		t.Error("expected error for invalid size in list")
	}
}

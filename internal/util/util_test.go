package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	cases := map[int64]string{
		0:                "0 B",
		1023:             "1023 B",
		1024:             "1.0 KB",
		1536:             "1.5 KB",
		5 << 20:          "5.0 MB",
		10<<20 + 512<<10: "10.5 MB",
		3 << 30:          "3.0 GB",
		1 << 40:          "1.0 TB",
		1<<62 + 1<<61:    "6.0 EB",
	}

	for n, want := range cases {
		assert.Equal(t, want, FormatBytes(n), "FormatBytes(%d)", n)
	}
}

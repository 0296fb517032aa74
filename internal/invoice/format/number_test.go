package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextNumber(t *testing.T) {
	cases := []struct {
		name string
		last string
		want string
	}{
		{name: "increments suffix", last: "FAC-107", want: "FAC-108"},
		{name: "keeps prefix", last: "2024-9", want: "2024-10"},
		{name: "empty history", last: "", want: "FAC-100"},
		{name: "whitespace history", last: "   ", want: "FAC-100"},
		{name: "no dash", last: "FAC107", want: "FAC-100"},
		{name: "non numeric suffix", last: "FAC-7b", want: "FAC-100"},
		{name: "too many parts", last: "FAC-2024-07", want: "FAC-100"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NextNumber(tc.last, "FAC-100"))
		})
	}
}

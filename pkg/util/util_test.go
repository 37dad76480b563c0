package util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixSums(t *testing.T) {
	tests := []struct {
		name string
		vals []int
		want []int
	}{
		{name: "empty", vals: nil, want: []int{0}},
		{name: "single", vals: []int{5}, want: []int{0, 5}},
		{name: "many", vals: []int{3, 1, 4, 1}, want: []int{0, 3, 4, 8, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrefixSums(tt.vals))
		})
	}
}

func TestReverseGDoesNotMutateInput(t *testing.T) {
	in := []string{"a", "b", "c"}
	out := ReverseG(in)
	assert.Equal(t, []string{"c", "b", "a"}, out)
	assert.Equal(t, []string{"a", "b", "c"}, in)
}

func TestWrapErrorf(t *testing.T) {
	orig := errors.New("boom")
	err := WrapErrorf(orig, ErrNotFound, "bus %s", "750")

	assert.Equal(t, "bus 750: boom", err.Error())
	assert.ErrorIs(t, err, orig)

	var uerr *Error
	assert.True(t, errors.As(err, &uerr))
	assert.Equal(t, ErrNotFound, uerr.Code())
}

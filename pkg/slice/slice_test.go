// Copyright (c) 2026 GStone. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/gstone/pkg/slice"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, slice.Map([]int{1, 2}, strconv.Itoa))

	empty := slice.Map(nil, strconv.Itoa)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestFilter(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	assert.Equal(t, []int{2, 4}, slice.Filter([]int{1, 2, 3, 4}, even))
	assert.NotNil(t, slice.Filter(nil, even))
	assert.NotNil(t, slice.Filter([]int{1, 3}, even))
}

func TestFilterMap(t *testing.T) {
	trimmed := slice.FilterMap([]string{" a ", "", "  ", "b"}, func(s string) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	})

	assert.Equal(t, []string{"a", "b"}, trimmed)
}

package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type handle struct{ id int }

func TestIsTypedNil(t *testing.T) {
	var (
		nilPtr    *handle
		nilSlice  []string
		nilMap    map[string]int
		nilFunc   func()
		nilChan   chan int
		nilStruct *struct{}
	)

	cases := []struct {
		name string
		val  any
		want bool
	}{
		{name: "nil", val: nil, want: true},
		{name: "nil_ptr", val: nilPtr, want: true},
		{name: "nil_slice", val: nilSlice, want: true},
		{name: "nil_map", val: nilMap, want: true},
		{name: "nil_func", val: nilFunc, want: true},
		{name: "nil_chan", val: nilChan, want: true},
		{name: "nil_empty_struct_ptr", val: nilStruct, want: true},
		{name: "non_nil_ptr", val: &handle{id: 1}, want: false},
		{name: "struct_value", val: handle{}, want: false},
		{name: "string", val: "name", want: false},
		{name: "int", val: 123, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsTypedNil(tc.val))
		})
	}
}

package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameError_Error(t *testing.T) {
	var nilErr *NameError
	assert.Equal(t, "<nil>", nilErr.Error())
	assert.Nil(t, nilErr.Unwrap())

	err := &NameError{Op: "insert", Name: "a", Err: ErrDuplicateName}
	assert.Equal(t, `registry: insert "a": name already used`, err.Error())
	assert.True(t, errors.Is(err, ErrDuplicateName))
	assert.False(t, errors.Is(err, ErrNameNotFound))
}

package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.NotNil(printer)
	assert.Equal("operand missing", From("operand missing"))
	assert.Equal("'x' is not a valid input value", From("'%v' is not a valid input value", "x"))
}

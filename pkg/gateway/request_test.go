package gateway_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Slymcode/cipmn-crm/pkg/gateway"
)

func TestRecord_ID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "42", gateway.Record{"id": 42.0}.ID()) // JSON numbers decode as float64
	assert.Equal(t, "abc", gateway.Record{"id": "abc"}.ID())
	assert.Empty(t, gateway.Record{"name": "no id"}.ID())
	assert.Empty(t, gateway.Record{"id": nil}.ID())
}

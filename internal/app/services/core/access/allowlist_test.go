package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAllowList(t *testing.T) {
	raw := " Root@PideLocal.es ,\"ops@pidelocal.es\";\n'owner@pidelocal.es'\r\n,, ;"
	list := ParseAllowList(raw)

	assert.Equal(t, 3, list.Len())
	assert.True(t, list.Contains("root@pidelocal.es"))
	assert.True(t, list.Contains("OPS@pidelocal.es"))
	assert.True(t, list.Contains(" owner@pidelocal.es "))
	assert.False(t, list.Contains("someone@pidelocal.es"))
	assert.False(t, list.Contains(""))
}

func TestParseAllowList_Empty(t *testing.T) {
	list := ParseAllowList("")
	assert.Equal(t, 0, list.Len())
	assert.False(t, list.Contains("root@pidelocal.es"))
}

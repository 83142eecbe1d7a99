package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAVSResult(t *testing.T) {
	assert.Nil(t, NewAVSResult(""))

	avs := NewAVSResult("I")
	if assert.NotNil(t, avs) {
		assert.Equal(t, "I", avs.Code)
		assert.Equal(t, "Address not verified.", avs.Message)
	}

	assert.Equal(t, "", NewAVSResult("9").Message)
}

func TestResponse_Accessors(t *testing.T) {
	var r Response
	assert.Equal(t, "", r.AuthorizationID())
	assert.Equal(t, "", r.CVVCode())

	id, cvv := "2rc4br", "M"
	r = Response{Authorization: &id, CVVResult: &cvv}
	assert.Equal(t, "2rc4br", r.AuthorizationID())
	assert.Equal(t, "M", r.CVVCode())
}

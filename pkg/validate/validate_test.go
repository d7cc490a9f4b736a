package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type createReq struct {
	Name string `validate:"required,min=2,max=64"`
	Type string `validate:"required,oneof=career_center job_search_group mentorship_program"`
}

func TestStructValid(t *testing.T) {
	errs := Struct(&createReq{Name: "mentors", Type: "mentorship_program"})
	assert.Nil(t, errs)
}

func TestStructFieldErrors(t *testing.T) {
	errs := Struct(&createReq{Name: "x", Type: "club"})
	assert.Len(t, errs, 2)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "must be at least 2", errs[0].Message)
	assert.Equal(t, "type", errs[1].Field)
	assert.Contains(t, errs[1].Message, "must be one of")
}

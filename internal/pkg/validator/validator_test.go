package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email  string  `json:"email" validate:"required,email"`
	Rating float64 `json:"rating" validate:"required,gte=1,lte=5"`
	Note   string  `json:"-" validate:"max=3"`
}

func TestValidate(t *testing.T) {
	assert.Nil(t, Validate(sample{Email: "a@b.co", Rating: 4}))

	errs := Validate(sample{Rating: 9, Note: "long"})
	assert.Equal(t, "required", errs["email"])
	assert.Equal(t, "lte", errs["rating"])
	assert.Equal(t, "max", errs["Note"])
	assert.True(t, HasTag(errs, "required"))
	assert.False(t, HasTag(errs, "oneof"))
}

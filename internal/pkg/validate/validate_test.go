package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type titled struct {
	Title string `json:"title" validate:"notblank"`
	Body  string `json:"body"`
}

func TestStruct_NotBlank(t *testing.T) {
	assert.NoError(t, Struct(titled{Title: "A"}))
	assert.NoError(t, Struct(titled{Title: "  padded  "}))

	err := Struct(titled{Title: ""})
	assert.EqualError(t, err, "field 'title' failed 'notblank'")

	assert.Error(t, Struct(titled{Title: " \t\n"}))
}

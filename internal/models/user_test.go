package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateUserRequestIsEmpty(t *testing.T) {
	assert.True(t, (&UpdateUserRequest{}).IsEmpty())

	name := "Diego"
	assert.False(t, (&UpdateUserRequest{Name: &name}).IsEmpty())

	phone := "3041301189"
	assert.False(t, (&UpdateUserRequest{Phone: &phone}).IsEmpty())
}

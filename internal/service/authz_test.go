package service

import (
	"testing"

	"kiit_connect/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	student := &model.Principal{Email: "s@kiit.ac.in", Role: model.RoleStudent}
	admin := &model.Principal{Email: "a@kiit.ac.in", Role: model.RoleAdmin}

	assert.NoError(t, Authorize(student, model.RoleStudent))
	assert.NoError(t, Authorize(admin, model.RoleStudent))
	assert.NoError(t, Authorize(admin, model.RoleAdmin))

	assert.ErrorIs(t, Authorize(student, model.RoleAdmin), ErrInsufficientRole)
	assert.ErrorIs(t, Authorize(nil, model.RoleStudent), ErrInsufficientRole)
	assert.ErrorIs(t, Authorize(&model.Principal{Role: "guest"}, model.RoleStudent), ErrInsufficientRole)
	assert.ErrorIs(t, Authorize(admin, "superuser"), ErrInsufficientRole)
}

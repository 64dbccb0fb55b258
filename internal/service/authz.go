package service

import (
	"fmt"

	"kiit_connect/internal/model"
)

// roleRank orders roles; a higher rank satisfies every lower requirement.
var roleRank = map[string]int{
	model.RoleStudent: 1,
	model.RoleAdmin:   2,
}

// Authorize checks that principal holds at least the required role
func Authorize(principal *model.Principal, required string) error {
	if principal == nil {
		return ErrInsufficientRole
	}
	have, known := roleRank[principal.Role]
	need, ok := roleRank[required]
	if !known || !ok || have < need {
		return fmt.Errorf("%w: %s role required", ErrInsufficientRole, required)
	}
	return nil
}

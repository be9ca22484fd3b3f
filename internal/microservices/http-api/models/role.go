package models

import (
	"fmt"
	"strings"
)

// Role is the closed set of account kinds on the marketplace.
type Role string

const (
	RoleCreator Role = "creator"
	RoleBrand   Role = "brand"
)

// Roles lists every valid role.
var Roles = []Role{RoleCreator, RoleBrand}

// ParseRole accepts any casing and surrounding whitespace.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleCreator, RoleBrand:
		return r, nil
	default:
		return "", fmt.Errorf("invalid role %q: must be one of creator, brand", s)
	}
}

func (r Role) Valid() bool {
	switch r {
	case RoleCreator, RoleBrand:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

package service

import (
	"fmt"
	"strings"

	"estateadmin/internal/domain/models"
)

// notBlank rejects strings that are only whitespace
func notBlank(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be blank")
	}
	return nil
}

func projectTypeValues() []interface{} {
	types := models.ProjectTypes()
	values := make([]interface{}, len(types))
	for i, t := range types {
		values[i] = t
	}
	return values
}

func projectStatusValues() []interface{} {
	statuses := models.ProjectStatuses()
	values := make([]interface{}, len(statuses))
	for i, s := range statuses {
		values[i] = s
	}
	return values
}

func userRoleValues() []interface{} {
	roles := models.UserRoles()
	values := make([]interface{}, len(roles))
	for i, r := range roles {
		values[i] = r
	}
	return values
}

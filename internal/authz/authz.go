// Package authz implements the access predicates for VPN locations.
package authz

// GroupsAllowed reports whether a user with userGroups may access a location
// restricted to allowedGroups. An empty allowedGroups set means the location
// is open to all users.
func GroupsAllowed(allowedGroups, userGroups []string) bool {
	if len(allowedGroups) == 0 {
		return true
	}
	allowed := make(map[string]struct{}, len(allowedGroups))
	for _, g := range allowedGroups {
		allowed[g] = struct{}{}
	}
	for _, g := range userGroups {
		if _, ok := allowed[g]; ok {
			return true
		}
	}
	return false
}

// Package ownership implements the access boundary for user-owned resources.
// Resource ids are not secret, so this check is the only thing preventing
// cross-user access on by-id lookups.
package ownership

import "errors"

// ErrAccessDenied is returned when a resource belongs to a different user.
var ErrAccessDenied = errors.New("access denied: you can only access your own resources")

// Check fails when the resource's owning user and the requesting user differ.
// It must run after the resource is loaded and before any part of it is
// returned or mutated.
func Check(resourceOwnerID, userID uint) error {
	if resourceOwnerID != userID {
		return ErrAccessDenied
	}
	return nil
}

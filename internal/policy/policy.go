// Package policy is the single authority for "can actor A perform action X on
// target T". Decisions are pure functions over the actor and target metadata:
// no I/O, no transport concerns. Handlers resolve the target first, so a
// missing target is reported as not-found before any policy decision runs.
package policy

import (
	"fmt"

	"inkwell/internal/entity"
)

// CanCreateBlog allows authors and admins to publish.
func CanCreateBlog(actor entity.Actor) error {
	if actor.Role == entity.RoleAuthor || actor.Role == entity.RoleAdmin {
		return nil
	}
	return fmt.Errorf("%w: only authors can create blogs", entity.ErrForbidden)
}

// CanMutateBlog covers update and delete: the owning author or an admin.
func CanMutateBlog(actor entity.Actor, authorID string) error {
	if actor.ID == authorID || actor.Role == entity.RoleAdmin {
		return nil
	}
	return fmt.Errorf("%w: you can only modify your own blogs", entity.ErrForbidden)
}

// CanAdminister gates the whole admin namespace.
func CanAdminister(actor entity.Actor) error {
	if actor.Role == entity.RoleAdmin {
		return nil
	}
	return fmt.Errorf("%w: administrator privileges required", entity.ErrForbidden)
}

// CanLike requires only an authenticated actor; likes act on the actor's own
// membership in the blog's like set.
func CanLike(actor entity.Actor) error {
	if actor.ID != "" {
		return nil
	}
	return fmt.Errorf("%w: authentication required", entity.ErrForbidden)
}

// CanComment requires only an authenticated actor.
func CanComment(actor entity.Actor) error {
	if actor.ID != "" {
		return nil
	}
	return fmt.Errorf("%w: authentication required", entity.ErrForbidden)
}

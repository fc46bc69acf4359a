package output

import "uploadcheck/internal/domain/entities"

// ProfileStore looks up upload profiles by context.
type ProfileStore interface {
	Profile(context string) (entities.Profile, error)
	Profiles() []entities.Profile
}

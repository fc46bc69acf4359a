package input

import (
	"uploadcheck/internal/domain/entities"
	"uploadcheck/internal/ports/output"
)

// UploadUseCase checks selected files and builds the upload page state.
type UploadUseCase interface {
	Validate(context string, file entities.Candidate) (entities.Verdict, error)
	SelectFile(context string, file entities.Candidate, loc output.Localizer) (entities.FormState, entities.Verdict, error)
	Footer(loc output.Localizer) entities.Footer
	Profile(context string) (entities.Profile, error)
	Profiles() []entities.Profile
}

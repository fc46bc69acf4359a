package application

import (
	"github.com/dustin/go-humanize"

	"uploadcheck/internal/domain"
	"uploadcheck/internal/domain/entities"
	"uploadcheck/internal/ports/input"
	"uploadcheck/internal/ports/output"
	"uploadcheck/pkg/filename"
)

// OGLURL is where the footer licence link points.
const OGLURL = "http://www.nationalarchives.gov.uk/doc/open-government-licence/version/3"

var _ input.UploadUseCase = (*UploadService)(nil)

type UploadService struct {
	profiles output.ProfileStore
}

func NewUploadService(profiles output.ProfileStore) *UploadService {
	return &UploadService{profiles: profiles}
}

func (s *UploadService) Profile(context string) (entities.Profile, error) {
	return s.profiles.Profile(context)
}

func (s *UploadService) Profiles() []entities.Profile {
	return s.profiles.Profiles()
}

// Validate checks one selected file against the profile of an upload context.
func (s *UploadService) Validate(context string, file entities.Candidate) (entities.Verdict, error) {
	profile, err := s.profiles.Profile(context)
	if err != nil {
		return entities.Verdict{}, err
	}
	name := filename.Base(file.RawName)
	outcome := profile.Check(name, file.Size)

	v := entities.Verdict{
		Context:    profile.Context,
		FileName:   name,
		Size:       file.Size,
		Outcome:    outcome,
		MessageKey: profile.MessageKey(outcome),
		Args:       map[string]any{"name": name},
	}
	switch outcome {
	case domain.OutcomeTooLong:
		v.Args["max"] = profile.MaxNameLength
	case domain.OutcomeTooLarge:
		v.Args["max"] = humanize.Bytes(uint64(profile.MaxSizeBytes))
	}
	return v, nil
}

// SelectFile handles a file being chosen on the upload page and returns
// the resulting page state.
func (s *UploadService) SelectFile(context string, file entities.Candidate, loc output.Localizer) (entities.FormState, entities.Verdict, error) {
	v, err := s.Validate(context, file)
	if err != nil {
		return entities.FormState{}, entities.Verdict{}, err
	}

	state := entities.FormState{
		FileName:          v.FileName,
		HeaderBarVisible:  true,
		RemoveLinkVisible: true,
	}
	if v.Outcome.Valid() {
		return state, v, nil
	}

	msg := loc.Text(v.MessageKey, v.Args)
	state.SubmitDisabled = true
	state.SummaryVisible = true
	state.InlineError = msg
	state.SummaryError = msg
	state.FormError = true
	state.FileAlert = true
	return state, v, nil
}

// Footer returns the licence notice in the localizer's language.
func (s *UploadService) Footer(loc output.Localizer) entities.Footer {
	return entities.Footer{
		Language: loc.Language(),
		Lead:     loc.Text("ogl.pt.1", nil),
		LinkText: loc.Text("ogl.link.text", nil),
		LinkURL:  OGLURL,
		Tail:     loc.Text("ogl.pt.2", nil),
	}
}

package profiles

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"uploadcheck/internal/domain"
	"uploadcheck/internal/domain/entities"
	"uploadcheck/internal/ports/output"
)

//go:embed profiles.yaml
var embeddedProfiles []byte

var _ output.ProfileStore = (*Store)(nil)

type profileFile struct {
	Profiles []profileDoc `yaml:"profiles" validate:"required,min=1,dive"`
}

type profileDoc struct {
	Context       string `yaml:"context" validate:"required,alphanum"`
	Extension     string `yaml:"extension" validate:"required,alphanum"`
	MaxNameLength int    `yaml:"max_name_length" validate:"gte=0"`
	MaxSize       string `yaml:"max_size" validate:"required"`
	NamePattern   string `yaml:"name_pattern"`
	MessagePrefix string `yaml:"message_prefix" validate:"required"`
}

// Store is a read-only set of upload profiles keyed by context.
type Store struct {
	byContext map[string]entities.Profile
	order     []string
}

// Load reads profiles from path, or the embedded defaults when path is empty.
func Load(path string) (*Store, error) {
	if path == "" {
		return Parse(embeddedProfiles)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profiles: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML profile document.
func Parse(data []byte) (*Store, error) {
	var doc profileFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("profiles: decode: %w", err)
	}
	if err := validator.New().Struct(doc); err != nil {
		return nil, fmt.Errorf("profiles: %w: %v", domain.ErrInvalidProfile, err)
	}

	s := &Store{byContext: make(map[string]entities.Profile, len(doc.Profiles))}
	for _, d := range doc.Profiles {
		p, err := d.toProfile()
		if err != nil {
			return nil, err
		}
		if _, dup := s.byContext[p.Context]; dup {
			return nil, fmt.Errorf("profiles: %w: %s", domain.ErrDuplicateContext, p.Context)
		}
		s.byContext[p.Context] = p
		s.order = append(s.order, p.Context)
	}
	return s, nil
}

func (d profileDoc) toProfile() (entities.Profile, error) {
	size, err := humanize.ParseBytes(d.MaxSize)
	if err != nil {
		return entities.Profile{}, fmt.Errorf("profiles: %w: %s max_size %q: %v", domain.ErrInvalidProfile, d.Context, d.MaxSize, err)
	}
	pattern := d.NamePattern
	if pattern == "" {
		pattern = entities.DefaultNamePattern
	}
	rx, err := regexp.Compile(pattern)
	if err != nil {
		return entities.Profile{}, fmt.Errorf("profiles: %w: %s name_pattern: %v", domain.ErrInvalidProfile, d.Context, err)
	}
	return entities.Profile{
		Context:       d.Context,
		Extension:     d.Extension,
		MaxNameLength: d.MaxNameLength,
		MaxSizeBytes:  int64(size),
		NamePattern:   rx,
		MessagePrefix: d.MessagePrefix,
	}, nil
}

// Profile returns the profile for an upload context.
func (s *Store) Profile(context string) (entities.Profile, error) {
	p, ok := s.byContext[context]
	if !ok {
		return entities.Profile{}, fmt.Errorf("%w: %q", domain.ErrUnknownContext, context)
	}
	return p, nil
}

// Profiles returns all profiles in file order.
func (s *Store) Profiles() []entities.Profile {
	out := make([]entities.Profile, 0, len(s.order))
	for _, c := range s.order {
		out = append(out, s.byContext[c])
	}
	return out
}

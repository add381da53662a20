// Package seed loads a guild's roster and rotations from a YAML file and
// applies them through the rotation service.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/KirkDiggler/lootwheel/internal/models"
	engine "github.com/KirkDiggler/lootwheel/internal/rotation"
	rotationService "github.com/KirkDiggler/lootwheel/internal/services/rotation"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// File is the seed document
type File struct {
	Members []Member `yaml:"members"`
	Items   []Item   `yaml:"items"`
}

// Member is a roster entry, written either as a bare name or as a mapping
type Member struct {
	Name string `yaml:"name"`
	Role string `yaml:"role,omitempty"`
}

// UnmarshalYAML accepts "- Alice" as well as "- name: Alice"
func (m *Member) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		m.Name = value.Value
		return nil
	}
	type plain Member
	return value.Decode((*plain)(m))
}

// Item is a loot item and its rotation order. An empty order rotates
// through the roster.
type Item struct {
	Name     string   `yaml:"name"`
	Rarity   string   `yaml:"rarity,omitempty"`
	Category string   `yaml:"category,omitempty"`
	Order    []string `yaml:"order,omitempty"`
}

// Load reads and parses a seed file
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	return Parse(data)
}

// Parse decodes a seed document and checks that every order only names
// listed members
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *File) validate() error {
	var errs []string
	known := make(map[string]bool, len(f.Members))
	for i, m := range f.Members {
		name := engine.CleanName(m.Name)
		if name == "" {
			errs = append(errs, fmt.Sprintf("members[%d].name is required", i))
			continue
		}
		known[strings.ToLower(name)] = true
	}
	for i, item := range f.Items {
		if engine.CleanName(item.Name) == "" {
			errs = append(errs, fmt.Sprintf("items[%d].name is required", i))
		}
		if item.Rarity != "" && !models.Rarity(item.Rarity).Valid() {
			errs = append(errs, fmt.Sprintf("items[%d].rarity %q is not a rarity", i, item.Rarity))
		}
		for j, name := range item.Order {
			if !known[strings.ToLower(engine.CleanName(name))] {
				errs = append(errs, fmt.Sprintf("items[%d].order[%d] %q is not a member", i, j, name))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("seed: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Result counts what Apply changed
type Result struct {
	MembersAdded   int
	MembersSkipped int
	ItemsAdded     int
	ItemsSkipped   int
}

// Config holds configuration for the seeder
type Config struct {
	Service rotationService.Service
	Logger  *zap.Logger
}

// Seeder applies seed files
type Seeder struct {
	service rotationService.Service
	logger  *zap.Logger
}

// New creates a seeder
func New(cfg *Config) (*Seeder, error) {
	if cfg == nil || cfg.Service == nil {
		return nil, errors.New("rotation service cannot be nil")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{service: cfg.Service, logger: logger}, nil
}

// Apply adds the file's members and items to a guild. Members and items
// that already exist are left untouched, so applying twice is harmless.
func (s *Seeder) Apply(ctx context.Context, guildID string, f *File) (*Result, error) {
	if f == nil {
		return nil, errors.New("seed file cannot be nil")
	}

	res := &Result{}
	for _, m := range f.Members {
		_, err := s.service.AddParticipant(ctx, &rotationService.AddParticipantInput{
			GuildID: guildID,
			Admin:   true,
			Name:    m.Name,
			Role:    m.Role,
		})
		switch {
		case errors.Is(err, engine.ErrParticipantExists):
			res.MembersSkipped++
		case err != nil:
			return res, fmt.Errorf("add member %q: %w", m.Name, err)
		default:
			res.MembersAdded++
		}
	}

	for _, item := range f.Items {
		_, err := s.service.AddItem(ctx, &rotationService.AddItemInput{
			GuildID:         guildID,
			Admin:           true,
			Name:            item.Name,
			Rarity:          models.Rarity(item.Rarity),
			Category:        item.Category,
			ParticipantRefs: item.Order,
		})
		switch {
		case errors.Is(err, engine.ErrItemExists):
			res.ItemsSkipped++
		case err != nil:
			return res, fmt.Errorf("add item %q: %w", item.Name, err)
		default:
			res.ItemsAdded++
		}
	}

	s.logger.Info("seed applied",
		zap.String("guild_id", guildID),
		zap.Int("members_added", res.MembersAdded),
		zap.Int("items_added", res.ItemsAdded),
	)
	return res, nil
}

// Package bank reads the static interview question dataset. The dataset is a
// JSON hierarchy of role -> level -> competency area -> example questions and
// is re-read from disk on every query, so edits to the file take effect
// without a restart.
package bank

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"
)

// DefaultLimit is the number of questions handed to the prompt builder when
// the caller does not ask for a specific count.
const DefaultLimit = 10

// Bank answers queries against the question dataset at a fixed path.
type Bank struct {
	path string
}

// New creates a Bank reading from the given JSON file.
func New(path string) *Bank {
	return &Bank{path: path}
}

type frameworkFile struct {
	Framework []roleEntry `json:"qualitativeInterviewFramework"`
}

type roleEntry struct {
	Role   string       `json:"role"`
	Levels []levelEntry `json:"levels"`
}

type levelEntry struct {
	Level           string           `json:"level"`
	CompetencyAreas []competencyArea `json:"competencyAreas"`
}

type competencyArea struct {
	Name      string   `json:"competencyArea"`
	Questions []string `json:"qualitativeQuestionExamples"`
}

// Roles returns every role present in the dataset, in file order.
func (b *Bank) Roles() ([]string, error) {
	data, err := b.load()
	if err != nil {
		return nil, err
	}

	roles := make([]string, 0, len(data.Framework))
	for _, entry := range data.Framework {
		roles = append(roles, entry.Role)
	}
	return roles, nil
}

// Levels returns the levels defined for a role, in file order. Role matching
// is case-insensitive. An unknown role yields an empty list.
func (b *Bank) Levels(role string) ([]string, error) {
	data, err := b.load()
	if err != nil {
		return nil, err
	}

	for _, entry := range data.Framework {
		if strings.EqualFold(entry.Role, role) {
			levels := make([]string, 0, len(entry.Levels))
			for _, lvl := range entry.Levels {
				levels = append(levels, lvl.Level)
			}
			return levels, nil
		}
	}
	return []string{}, nil
}

// Questions flattens every competency area's example questions under the
// matching (role, level) node, both matched case-insensitively. When more
// than limit questions are available it returns a uniform random sample of
// exactly limit questions without replacement; otherwise all of them.
// An unmatched role or level yields an empty list.
func (b *Bank) Questions(role, level string, limit int) ([]string, error) {
	data, err := b.load()
	if err != nil {
		return nil, err
	}

	var all []string
	for _, entry := range data.Framework {
		if !strings.EqualFold(entry.Role, role) {
			continue
		}
		for _, lvl := range entry.Levels {
			if !strings.EqualFold(lvl.Level, level) {
				continue
			}
			for _, area := range lvl.CompetencyAreas {
				all = append(all, area.Questions...)
			}
		}
	}

	if limit > 0 && len(all) > limit {
		sampled := make([]string, 0, limit)
		for _, i := range rand.Perm(len(all))[:limit] {
			sampled = append(sampled, all[i])
		}
		return sampled, nil
	}

	if all == nil {
		return []string{}, nil
	}
	return all, nil
}

func (b *Bank) load() (*frameworkFile, error) {
	raw, err := os.ReadFile(b.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question bank %s: %w", b.path, err)
	}

	var data frameworkFile
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse question bank %s: %w", b.path, err)
	}
	return &data, nil
}

package bank

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFramework = `{
  "qualitativeInterviewFramework": [
    {
      "role": "Data Scientist",
      "levels": [
        {
          "level": "Junior",
          "competencyAreas": [
            {
              "competencyArea": "Statistics",
              "qualitativeQuestionExamples": ["Q1", "Q2", "Q3"]
            },
            {
              "competencyArea": "Communication",
              "qualitativeQuestionExamples": ["Q4", "Q5"]
            }
          ]
        },
        {
          "level": "Mid-Level",
          "competencyAreas": [
            {
              "competencyArea": "Modeling",
              "qualitativeQuestionExamples": ["Q6"]
            }
          ]
        }
      ]
    },
    {
      "role": "Software Engineer",
      "levels": [
        {
          "level": "Senior/Lead/Architect",
          "competencyAreas": [
            {
              "competencyArea": "Design",
              "qualitativeQuestionExamples": ["Q7", "Q8"]
            }
          ]
        }
      ]
    }
  ]
}`

func writeTestBank(t *testing.T) *Bank {
	t.Helper()
	path := filepath.Join(t.TempDir(), "questions.json")
	require.NoError(t, os.WriteFile(path, []byte(testFramework), 0o644))
	return New(path)
}

func TestRoles(t *testing.T) {
	b := writeTestBank(t)

	roles, err := b.Roles()
	require.NoError(t, err)
	assert.Equal(t, []string{"Data Scientist", "Software Engineer"}, roles)
}

func TestLevels(t *testing.T) {
	b := writeTestBank(t)

	tests := []struct {
		name     string
		role     string
		expected []string
	}{
		{"known role", "Data Scientist", []string{"Junior", "Mid-Level"}},
		{"case-insensitive role", "data scientist", []string{"Junior", "Mid-Level"}},
		{"unknown role", "Astronaut", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			levels, err := b.Levels(tt.role)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, levels)
		})
	}
}

func TestQuestions_FlattensCompetencyAreas(t *testing.T) {
	b := writeTestBank(t)

	questions, err := b.Questions("Data Scientist", "Junior", DefaultLimit)
	require.NoError(t, err)
	assert.Equal(t, []string{"Q1", "Q2", "Q3", "Q4", "Q5"}, questions)
}

func TestQuestions_CaseInsensitive(t *testing.T) {
	b := writeTestBank(t)

	questions, err := b.Questions("SOFTWARE ENGINEER", "senior/lead/architect", DefaultLimit)
	require.NoError(t, err)
	assert.Equal(t, []string{"Q7", "Q8"}, questions)
}

func TestQuestions_SamplesWithoutReplacement(t *testing.T) {
	b := writeTestBank(t)

	// 5 questions exist for this pair; sampling is non-deterministic in
	// content but deterministic in count.
	for i := 0; i < 20; i++ {
		questions, err := b.Questions("Data Scientist", "Junior", 3)
		require.NoError(t, err)
		require.Len(t, questions, 3)

		seen := map[string]bool{}
		for _, q := range questions {
			assert.Contains(t, []string{"Q1", "Q2", "Q3", "Q4", "Q5"}, q)
			assert.False(t, seen[q], "question sampled twice: %s", q)
			seen[q] = true
		}
	}
}

func TestQuestions_UnknownRoleOrLevel(t *testing.T) {
	b := writeTestBank(t)

	tests := []struct {
		name  string
		role  string
		level string
	}{
		{"unknown role", "Astronaut", "Junior"},
		{"unknown level", "Data Scientist", "Staff"},
		{"level from other role", "Data Scientist", "Senior/Lead/Architect"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions, err := b.Questions(tt.role, tt.level, DefaultLimit)
			require.NoError(t, err)
			assert.Empty(t, questions)
		})
	}
}

func TestQuestions_MissingFile(t *testing.T) {
	b := New(filepath.Join(t.TempDir(), "missing.json"))

	_, err := b.Questions("Data Scientist", "Junior", DefaultLimit)
	assert.Error(t, err)
}

func TestQuestions_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := New(path).Roles()
	assert.Error(t, err)
}

func TestQuestions_ReloadsOnEveryQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questions.json")
	require.NoError(t, os.WriteFile(path, []byte(testFramework), 0o644))
	b := New(path)

	roles, err := b.Roles()
	require.NoError(t, err)
	require.Len(t, roles, 2)

	updated := `{"qualitativeInterviewFramework": [{"role": "QA Automation Engineer", "levels": []}]}`
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))

	roles, err = b.Roles()
	require.NoError(t, err)
	assert.Equal(t, []string{"QA Automation Engineer"}, roles)
}

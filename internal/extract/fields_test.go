package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleResume = `John Smith
john.smith@email.com

Software Engineer with 3 years of experience

Skills: Python, JavaScript, React, Node.js, SQL, AWS

Experience:
- Software Developer at Tech Company (2021-2024)
- Worked on web applications using modern technologies

Education:
- Bachelor's in Computer Science
`

func TestFromText_SampleResume(t *testing.T) {
	info := FromText(sampleResume)

	assert.Equal(t, "john.smith@email.com", info.Email)
	assert.Equal(t, "John Smith", info.Name)
	assert.Equal(t, "Software Engineer", info.Role)
	assert.Equal(t, LevelMid, info.Level)
	assert.Contains(t, info.Skills, "Python")
	assert.Contains(t, info.Skills, "React")
	assert.Contains(t, info.Skills, "Sql")
	assert.Contains(t, info.Skills, "Aws")
	assert.NotContains(t, info.Skills, NotFound)
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"plain address", "Contact: jane.doe@example.org, phone 555", "jane.doe@example.org"},
		{"first of several", "a@b.com then c@d.net", "a@b.com"},
		{"plus tag", "mail me at dev+jobs@corp.io", "dev+jobs@corp.io"},
		{"no address", "no contact details here", NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Email(tt.text))
		})
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"two words", "Jane Doe\nSoftware Engineer", "Jane Doe"},
		{"four words", "Juan Pablo De Silva\nEngineer", "Juan Pablo De Silva"},
		{"skips blank lines", "\n\n  \nJane Doe\n", "Jane Doe"},
		{"single word rejected", "Resume\n12345\n", NotFound},
		{"all caps rejected by strict pass", "JANE DOE\n98765\n", NotFound},
		{"loose pass accepts initials", "J Doe Smith\n", "J Doe Smith"},
		{"nothing name-like", "objective: find a job\nskills: none\n", NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Name(tt.text))
		})
	}
}

func TestSkills(t *testing.T) {
	t.Run("title-cases single words", func(t *testing.T) {
		skills := Skills("worked with python and docker daily")
		assert.Contains(t, skills, "Python")
		assert.Contains(t, skills, "Docker")
	})

	t.Run("keeps multi-word phrases verbatim", func(t *testing.T) {
		skills := Skills("focus on machine learning and data science")
		assert.Contains(t, skills, "machine learning")
		assert.Contains(t, skills, "data science")
	})

	t.Run("whole-word matching", func(t *testing.T) {
		// "going" must not match the vocabulary term "go".
		skills := Skills("going forward we will scale")
		assert.Equal(t, []string{NotFound}, skills)
	})

	t.Run("case-insensitive", func(t *testing.T) {
		skills := Skills("PYTHON, React, kubernetes")
		assert.Contains(t, skills, "Python")
		assert.Contains(t, skills, "React")
		assert.Contains(t, skills, "Kubernetes")
	})

	t.Run("sentinel when nothing matches", func(t *testing.T) {
		assert.Equal(t, []string{NotFound}, Skills("gardening and cooking"))
	})
}

func TestRole(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"direct match", "experienced data scientist", "Data Scientist"},
		{"alias sre", "worked as an sre at scale", "DevOps Engineer / Site Reliability Engineer (SRE)"},
		{"alias backend", "backend developer on payments", "Software Engineer (Backend)"},
		{"alias ux", "ux designer with portfolio", "UX/UI Designer"},
		{"first match wins over later roles", "data scientist turned devops engineer", "Data Scientist"},
		{"no role", "I enjoy solving problems", NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Role(tt.text))
		})
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"senior keyword", "Senior Software Engineer", LevelSenior},
		{"senior overrides junior", "senior engineer, previously junior", LevelSenior},
		{"junior keyword", "recent graduate seeking entry position", LevelJunior},
		{"junior overrides mid", "junior dev with intermediate sql", LevelJunior},
		{"mid keyword", "intermediate developer", LevelMid},
		{"years bucket junior", "1 year of experience shipping software", LevelJunior},
		{"years bucket mid", "4 years experience in backend work", LevelMid},
		{"years bucket senior", "7 years of experience", LevelSenior},
		{"no signal", "I write code", NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Level(tt.text))
		})
	}
}

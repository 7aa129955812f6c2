package extract

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NotFound is the sentinel returned for any field that could not be
// extracted. Clients depend on the literal string, so it is never replaced
// with an empty value.
const NotFound = "Not found"

// Seniority level names as they appear in the question bank.
const (
	LevelJunior = "Junior"
	LevelMid    = "Mid-Level"
	LevelSenior = "Senior/Lead/Architect"
)

// Info is the transient record produced from one resume upload.
type Info struct {
	Email  string   `json:"email"`
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
	Role   string   `json:"role"`
	Level  string   `json:"level"`
}

// FromFile extracts text from the resume at path and runs every field
// heuristic over it. The five extractions are independent; one missing field
// never blocks the others.
func FromFile(path string) (*Info, error) {
	text, err := Text(path)
	if err != nil {
		return nil, err
	}
	return FromText(text), nil
}

// FromText runs the field heuristics over already-extracted resume text.
func FromText(text string) *Info {
	return &Info{
		Email:  Email(text),
		Name:   Name(text),
		Skills: Skills(text),
		Role:   Role(text),
		Level:  Level(text),
	}
}

var emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// Email returns the first email address in the text, or NotFound.
func Email(text string) string {
	if match := emailRe.FindString(text); match != "" {
		return match
	}
	return NotFound
}

// strictNameRe matches 2-4 capitalized words forming a whole line.
var strictNameRe = regexp.MustCompile(`^[A-Z][a-z]+(?: [A-Z][a-z]+){1,3}$`)

// Name scans the first 5 non-empty lines for 2-4 capitalized words, then
// falls back to a looser title-case check over the first 10 lines. A section
// header can false-positive here; that is a known limitation.
func Name(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	seen := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || len(line) < 3 {
			continue
		}
		seen++
		if seen > 5 {
			break
		}
		if strictNameRe.MatchString(line) {
			return line
		}
	}

	for i, line := range lines {
		if i >= 10 {
			break
		}
		line = strings.TrimSpace(line)
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		if allTitleCase(words) {
			return line
		}
	}

	return NotFound
}

// allTitleCase reports whether every word longer than one rune starts with an
// upper-case letter followed by lower-case letters.
func allTitleCase(words []string) bool {
	for _, word := range words {
		runes := []rune(word)
		if len(runes) <= 1 {
			continue
		}
		if runes[0] < 'A' || runes[0] > 'Z' {
			return false
		}
		if strings.ToLower(string(runes[1:])) != string(runes[1:]) {
			return false
		}
	}
	return true
}

// skillsVocabulary is the fixed matching vocabulary. Single-word matches are
// title-cased in the result; multi-word phrases are kept verbatim.
var skillsVocabulary = []string{
	// Programming languages
	"python", "java", "javascript", "typescript", "c++", "c#", "php", "ruby", "go", "rust",
	"swift", "kotlin", "scala", "r", "matlab", "perl", "shell", "bash", "powershell",

	// Web technologies
	"html", "css", "react", "angular", "vue", "nodejs", "express", "django", "flask",
	"spring", "laravel", "bootstrap", "jquery", "sass", "less", "webpack", "gulp",

	// Databases
	"sql", "mysql", "postgresql", "mongodb", "redis", "sqlite", "oracle", "cassandra",
	"elasticsearch", "dynamodb", "firebase", "neo4j",

	// Cloud & DevOps
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "gitlab", "github",
	"terraform", "ansible", "chef", "puppet", "vagrant", "linux", "unix", "ubuntu",
	"centos", "nginx", "apache", "git", "svn", "ci/cd", "devops",

	// Data science & ML
	"machine learning", "deep learning", "artificial intelligence", "data science",
	"data analysis", "statistics", "pandas", "numpy", "scikit-learn", "tensorflow",
	"pytorch", "keras", "opencv", "nltk", "spacy", "matplotlib", "seaborn", "plotly",
	"tableau", "power bi", "excel", "jupyter", "anaconda", "spark", "hadoop",

	// Mobile
	"ios", "android", "react native", "flutter", "xamarin", "cordova", "ionic",

	// Testing
	"selenium", "junit", "pytest", "jest", "mocha", "cypress", "postman", "jmeter",
	"cucumber", "testng",

	// Process, design and other tools
	"agile", "scrum", "kanban", "jira", "confluence", "slack", "teams", "photoshop",
	"illustrator", "figma", "sketch", "invision", "zeplin", "wireframing", "prototyping",
	"ui/ux", "user experience", "user interface", "graphic design", "web design",
	"api", "rest", "graphql", "microservices", "serverless", "blockchain", "ethereum",
	"solidity", "cybersecurity", "penetration testing", "vulnerability assessment",
}

var (
	titleCaser = cases.Title(language.English)
	skillRes   = buildSkillPatterns()
)

func buildSkillPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(skillsVocabulary))
	for _, skill := range skillsVocabulary {
		patterns[skill] = regexp.MustCompile(`\b` + regexp.QuoteMeta(skill) + `\b`)
	}
	return patterns
}

// Skills matches the fixed vocabulary case-insensitively with word
// boundaries. Returns a singleton NotFound list when nothing matches.
func Skills(text string) []string {
	textLower := strings.ToLower(text)

	var found []string
	for _, skill := range skillsVocabulary {
		if !skillRes[skill].MatchString(textLower) {
			continue
		}
		if strings.Contains(skill, " ") {
			found = append(found, skill)
		} else {
			found = append(found, titleCaser.String(skill))
		}
	}

	if len(found) == 0 {
		return []string{NotFound}
	}
	return found
}

// canonicalRoles is checked in order; the first substring match wins, so the
// ordering matters and no specificity ranking is applied.
var canonicalRoles = []string{
	"data scientist", "software engineer", "backend developer", "frontend developer",
	"full stack developer", "devops engineer", "site reliability engineer", "sre",
	"qa engineer", "quality assurance", "test engineer", "automation engineer",
	"data analyst", "business analyst", "product manager", "project manager",
	"ux designer", "ui designer", "graphic designer", "web designer",
	"machine learning engineer", "ml engineer", "data engineer", "ai engineer",
	"cybersecurity analyst", "security engineer", "network administrator",
	"database administrator", "dba", "system administrator", "cloud engineer",
	"solutions architect", "software architect", "technical architect",
	"mobile developer", "ios developer", "android developer", "game developer",
	"blockchain developer", "cryptocurrency developer", "web3 developer",
}

// roleAliases normalizes role phrase variants onto the question bank's
// canonical role names.
var roleAliases = map[string]string{
	"backend developer":         "Software Engineer (Backend)",
	"frontend developer":        "Software Engineer (Frontend)",
	"full stack developer":      "Software Engineer",
	"devops engineer":           "DevOps Engineer / Site Reliability Engineer (SRE)",
	"site reliability engineer": "DevOps Engineer / Site Reliability Engineer (SRE)",
	"sre":                       "DevOps Engineer / Site Reliability Engineer (SRE)",
	"qa engineer":               "QA Automation Engineer",
	"quality assurance":         "QA Automation Engineer",
	"test engineer":             "QA Automation Engineer",
	"automation engineer":       "QA Automation Engineer",
	"ux designer":               "UX/UI Designer",
	"ui designer":               "UX/UI Designer",
	"graphic designer":          "UX/UI Designer",
	"web designer":              "UX/UI Designer",
	"ml engineer":               "Machine Learning Engineer",
	"ai engineer":               "Machine Learning Engineer",
	"security engineer":         "Cybersecurity Analyst",
	"mobile developer":          "Software Engineer (Frontend)",
	"ios developer":             "Software Engineer (Frontend)",
	"android developer":         "Software Engineer (Frontend)",
	"blockchain developer":      "Software Engineer (Backend)",
}

// Role searches the ordered canonical role phrases and normalizes the first
// hit through the alias table.
func Role(text string) string {
	textLower := strings.ToLower(text)

	for _, role := range canonicalRoles {
		if !strings.Contains(textLower, role) {
			continue
		}
		if alias, ok := roleAliases[role]; ok {
			return alias
		}
		return titleCaser.String(role)
	}
	return NotFound
}

var seniorKeywords = []string{
	"senior", "lead", "principal", "architect", "manager", "director",
	"head of", "chief", "vp", "vice president", "5+ years", "6+ years",
	"7+ years", "8+ years", "9+ years", "10+ years",
}

var juniorKeywords = []string{
	"junior", "entry", "graduate", "intern", "trainee", "associate",
	"fresh", "new grad", "0-2 years", "1 year", "2 years",
}

var midKeywords = []string{
	"mid", "intermediate", "3 years", "4 years", "5 years",
	"3-5 years", "2-4 years",
}

var yearsRe = regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?(?:experience|exp)`)

// Level buckets the candidate's seniority. Senior keywords override junior
// keywords, which override mid keywords; with no keyword hit a
// "N years experience" pattern is bucketed numerically.
func Level(text string) string {
	textLower := strings.ToLower(text)

	for _, kw := range seniorKeywords {
		if strings.Contains(textLower, kw) {
			return LevelSenior
		}
	}
	for _, kw := range juniorKeywords {
		if strings.Contains(textLower, kw) {
			return LevelJunior
		}
	}
	for _, kw := range midKeywords {
		if strings.Contains(textLower, kw) {
			return LevelMid
		}
	}

	if m := yearsRe.FindStringSubmatch(textLower); m != nil {
		years, err := strconv.Atoi(m[1])
		if err == nil {
			switch {
			case years <= 2:
				return LevelJunior
			case years <= 5:
				return LevelMid
			default:
				return LevelSenior
			}
		}
	}

	return NotFound
}

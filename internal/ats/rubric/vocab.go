package rubric

// Vocabulary is the versioned word-list configuration the rubric scores
// against. The lists are closed: scoring is only reproducible across
// deployments when a release pins an exact vocabulary version.
type Vocabulary struct {
	Version      string
	ActionWords  []string
	SkillTerms   []string
	JobStopwords []string
}

// DefaultVocabulary returns the built-in vocabulary revision.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Version:      "2024-10",
		ActionWords:  actionWords,
		SkillTerms:   skillTerms,
		JobStopwords: jobStopwords,
	}
}

// actionWords are the verbs treated as evidence of achievement-oriented
// writing. Membership tests are case-insensitive substring containment.
var actionWords = []string{
	"Achieved", "Administered", "Analyzed", "Collaborated", "Coordinated",
	"Created", "Delivered", "Designed", "Developed", "Directed",
	"Enhanced", "Established", "Executed", "Generated", "Implemented",
	"Improved", "Increased", "Initiated", "Innovated", "Led",
	"Managed", "Mentored", "Negotiated", "Optimized", "Orchestrated",
	"Pioneered", "Produced", "Reduced", "Resolved", "Spearheaded",
	"Streamlined", "Supervised", "Transformed", "Upgraded",
}

// skillTerms are the industry/technical keywords counted for the skills and
// keyword-optimization categories.
var skillTerms = []string{
	"JavaScript", "TypeScript", "React", "Node.js", "Python",
	"Java", "C++", "SQL", "MongoDB", "AWS",
	"Git", "Docker", "Kubernetes", "REST API", "GraphQL",
	"Machine Learning", "Data Analysis", "Agile", "Scrum", "Leadership",
	"Communication", "Problem Solving", "Team Management", "Project Management",
}

// jobStopwords are dropped from job-description token streams before keyword
// matching.
var jobStopwords = []string{
	"the", "and", "for", "with", "that", "this", "have", "from", "will", "been",
	"would", "could", "should", "their", "there", "what", "when", "where", "which",
	"about", "into", "more", "other", "some", "such", "only", "also", "than", "then",
	"these", "those", "your", "work", "team", "able", "must", "years", "including",
}

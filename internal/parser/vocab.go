// Package parser implements the resume text-structuring pipeline: section
// segmentation, contact/skill/date extraction, and experience/education
// entry parsing. All heuristics operate on plain UTF-8 text with preserved
// line breaks.
package parser

import "regexp"

// Section keys produced by the segmenter.
const (
	sectionExperience     = "experience"
	sectionEducation      = "education"
	sectionSkills         = "skills"
	sectionSummary        = "summary"
	sectionCertifications = "certifications"
	sectionLanguages      = "languages"
)

// Vocabulary is the read-only configuration shared by all extractors: the
// curated skill list, section header synonyms, degree patterns and known
// spoken languages. It is loaded once at process start and is safe for
// unsynchronized concurrent reads.
type Vocabulary struct {
	// Skills holds canonical display casing; matching is case-insensitive.
	Skills []string

	// SectionHeaders maps section key to header synonyms (lowercase).
	SectionHeaders map[string][]string

	// SectionPriority is the deterministic tie-break order when a heading
	// line matches synonyms for more than one section key.
	SectionPriority []string

	// DegreePatterns match degree keywords anywhere in an education entry.
	DegreePatterns []*regexp.Regexp

	// Languages holds spoken languages recognized in resume text.
	Languages []string
}

var defaultVocabulary = &Vocabulary{
	Skills: []string{
		// Programming languages
		"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "C", "Go", "Rust",
		"Ruby", "PHP", "Swift", "Kotlin", "Scala", "R", "MATLAB", "Perl", "SQL",
		"Objective-C", "Dart", "Lua", "Haskell", "Clojure", "Elixir", "F#",
		// Web
		"HTML", "CSS", "SASS", "LESS", "React", "Angular", "Vue", "Svelte",
		"Node.js", "Express", "Next.js", "Nuxt.js", "Gatsby", "Django", "Flask",
		"FastAPI", "Spring", "Spring Boot", "Rails", "Laravel", "ASP.NET",
		"jQuery", "Bootstrap", "Tailwind CSS", "Material UI", "Redux", "MobX",
		// Mobile
		"React Native", "Flutter", "iOS", "Android", "SwiftUI", "Xamarin",
		// Databases
		"MySQL", "PostgreSQL", "MongoDB", "Redis", "Elasticsearch", "SQLite",
		"Oracle", "SQL Server", "DynamoDB", "Cassandra", "Neo4j", "MariaDB",
		"Firebase", "Supabase", "CouchDB", "InfluxDB", "TimescaleDB",
		// Cloud and DevOps
		"AWS", "Azure", "GCP", "Google Cloud", "Docker", "Kubernetes", "K8s",
		"Jenkins", "GitLab CI", "GitHub Actions", "CircleCI", "Travis CI",
		"Terraform", "Ansible", "Puppet", "Chef", "Linux", "Unix", "Bash",
		"Nginx", "Apache", "Cloudflare", "Heroku", "Vercel", "Netlify",
		"AWS Lambda", "S3", "EC2", "RDS", "CloudFormation", "EKS", "ECS",
		// Data and ML
		"TensorFlow", "PyTorch", "Scikit-learn", "Pandas", "NumPy", "Keras",
		"NLP", "Machine Learning", "Deep Learning", "Computer Vision", "AI",
		"Data Science", "Big Data", "Spark", "Hadoop", "Tableau", "Power BI",
		"OpenCV", "NLTK", "spaCy", "Hugging Face", "LangChain", "OpenAI",
		"Data Analysis", "Data Engineering", "ETL", "Airflow", "Kafka", "Flink",
		// Testing
		"Jest", "Mocha", "Pytest", "JUnit", "Selenium", "Cypress", "Playwright",
		"Unit Testing", "Integration Testing", "E2E Testing", "TDD", "BDD",
		// Tools and concepts
		"Git", "GitHub", "GitLab", "Bitbucket", "SVN",
		"REST API", "GraphQL", "gRPC", "WebSocket", "OAuth", "JWT",
		"Microservices", "Serverless", "Event-Driven", "Domain-Driven Design",
		"Agile", "Scrum", "Kanban", "JIRA", "Confluence", "Trello", "Asana",
		"CI/CD", "DevOps", "SRE", "Monitoring", "Logging", "Prometheus", "Grafana",
		"RabbitMQ", "SQS", "SNS", "Celery", "Redis Queue",
		"Figma", "Sketch", "Adobe XD", "Photoshop", "Illustrator",
		"VS Code", "IntelliJ", "PyCharm", "Vim", "Emacs",
	},

	SectionHeaders: map[string][]string{
		sectionExperience: {
			"experience", "work experience", "employment", "work history",
			"professional experience", "career history", "employment history",
		},
		sectionEducation: {
			"education", "academic", "qualifications", "academic background",
			"educational background", "academic qualifications",
		},
		sectionSkills: {
			"skills", "technical skills", "core competencies", "competencies",
			"expertise", "technologies", "proficiencies", "abilities",
		},
		sectionSummary: {
			"summary", "profile", "objective", "professional summary",
			"career objective", "about me", "overview",
		},
		sectionCertifications: {
			"certifications", "certificates", "licenses", "credentials",
			"professional certifications",
		},
		sectionLanguages: {
			"languages", "language skills", "spoken languages",
		},
	},

	// Experience wins over skills, skills over education, then the rest.
	SectionPriority: []string{
		sectionExperience,
		sectionSkills,
		sectionEducation,
		sectionSummary,
		sectionCertifications,
		sectionLanguages,
	},

	// Abbreviated forms require their dots so that "ba"/"ms" cannot fire
	// inside ordinary words.
	DegreePatterns: []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(bachelor(?:'s|s)?(?: of [a-z]+)?|b\.s\.?c?\b|b\.a\.?\b|b\.e\.?\b|b\.?tech\b)`),
		regexp.MustCompile(`(?i)\b(master(?:'s|s)?(?: of [a-z]+)?|m\.s\.?c?\b|m\.a\.?\b|m\.e\.?\b|m\.?tech\b|mba\b)`),
		regexp.MustCompile(`(?i)\b(ph\.?d\.?\b|doctorate|doctoral)`),
		regexp.MustCompile(`(?i)\b(associate(?:'s|s)?(?: degree)?\b|a\.s\.?\b|a\.a\.?\b)`),
		regexp.MustCompile(`(?i)\b(diploma|certificate)\b`),
	},

	Languages: []string{
		"English", "Spanish", "French", "German", "Chinese", "Mandarin",
		"Japanese", "Korean", "Portuguese", "Italian", "Russian", "Arabic",
		"Hindi", "Dutch", "Swedish", "Norwegian", "Danish", "Finnish",
		"Polish", "Turkish", "Vietnamese", "Thai", "Indonesian",
	},
}

// DefaultVocabulary returns the built-in vocabulary. The returned value is
// shared and must not be mutated.
func DefaultVocabulary() *Vocabulary {
	return defaultVocabulary
}

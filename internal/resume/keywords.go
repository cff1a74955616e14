package resume

// Keyword tables are ordered data, not logic. Match order decides which
// duplicate survives dedup and which entries survive the result caps, so
// every table is a slice rather than a map.

// keywordCategory pairs a category name with its ordered keyword list.
type keywordCategory struct {
	name     string
	keywords []string
}

// skillKeywords holds known skill terms grouped by category.
// All keywords are lowercase; matching is substring containment
// against lowercased resume text.
var skillKeywords = []keywordCategory{
	{
		name: CategoryTechnical,
		keywords: []string{
			// Programming languages
			"javascript", "python", "java", "c++", "c#", "php", "ruby", "go", "rust", "swift",
			"kotlin", "typescript", "scala", "r", "matlab", "sql", "html", "css",

			// Frameworks and libraries
			"react", "angular", "vue", "node.js", "express", "django", "flask", "spring",
			"laravel", "rails", "bootstrap", "jquery", "redux", "next.js", "nuxt.js",

			// Databases
			"mysql", "postgresql", "mongodb", "redis", "sqlite", "oracle", "mariadb",
			"elasticsearch", "cassandra", "dynamodb",

			// Cloud and DevOps
			"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "git", "github",
			"gitlab", "bitbucket", "terraform", "ansible", "vagrant", "linux", "unix",

			// Other technical
			"api", "rest", "graphql", "microservices", "agile", "scrum", "ci/cd",
			"machine learning", "artificial intelligence", "data science", "blockchain",
		},
	},
	{
		name: CategoryToolsSoftware,
		keywords: []string{
			"microsoft office", "excel", "word", "powerpoint", "outlook", "teams",
			"slack", "jira", "confluence", "trello", "asana", "notion",
			"photoshop", "illustrator", "figma", "sketch", "canva",
			"tableau", "power bi", "google analytics", "salesforce",
		},
	},
	{
		name: CategorySoft,
		keywords: []string{
			"leadership", "communication", "teamwork", "problem solving", "critical thinking",
			"project management", "time management", "organization", "creativity",
			"adaptability", "collaboration", "presentation", "negotiation",
			"customer service", "analytical thinking", "attention to detail",
		},
	},
	{
		name: CategoryLanguage,
		keywords: []string{
			"english", "spanish", "french", "german", "chinese", "japanese", "korean",
			"italian", "portuguese", "russian", "arabic", "hindi", "mandarin",
		},
	},
}

// educationLevel pairs a year level with its synonym list. The slice order is
// the match order: the first level with any synonym present wins.
type educationLevel struct {
	level    string
	synonyms []string
}

var educationKeywords = []educationLevel{
	{"freshman", []string{"freshman", "first year", "1st year"}},
	{"sophomore", []string{"sophomore", "second year", "2nd year"}},
	{"junior", []string{"junior", "third year", "3rd year"}},
	{"senior", []string{"senior", "fourth year", "4th year", "final year"}},
	{"graduate", []string{"graduate", "masters", "master's", "phd", "doctorate", "postgraduate"}},
}

// majorKeywords is a flat ordered list of known majors/programs.
var majorKeywords = []string{
	"computer science", "software engineering", "information technology",
	"business administration", "marketing", "finance", "accounting",
	"mechanical engineering", "electrical engineering", "civil engineering",
	"psychology", "biology", "chemistry", "physics", "mathematics",
	"graphic design", "art", "english", "communications", "journalism",
	"economics", "political science", "sociology", "anthropology",
	"nursing", "medicine", "pharmacy", "dentistry", "veterinary",
}

// interestKeywords holds known interest terms grouped by category.
var interestKeywords = []keywordCategory{
	{
		name:     InterestAcademic,
		keywords: []string{"research", "learning", "studying", "education", "academic"},
	},
	{
		name:     InterestHobby,
		keywords: []string{"reading", "writing", "photography", "music", "art", "cooking", "gaming", "sports"},
	},
	{
		name:     InterestExtracurricular,
		keywords: []string{"volunteer", "community service", "club", "organization", "leadership"},
	},
	{
		name:     InterestIndustry,
		keywords: []string{"technology", "business", "healthcare", "finance", "marketing", "design"},
	},
}

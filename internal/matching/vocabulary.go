package matching

// SkillVocabulary is the built-in list of technology skills scanned for
// in job descriptions. Order is significant: skill gap results follow it.
var SkillVocabulary = []string{
	"python", "java", "javascript", "html", "css", "sql", "react", "angular",
	"vue", "node", "express", "django", "flask", "spring", "mongodb", "mysql",
	"postgresql", "aws", "azure", "docker", "kubernetes", "git", "linux",
	"agile", "scrum", "machine learning", "ai", "data science", "tensorflow",
	"pytorch", "pandas", "numpy", "excel", "tableau", "powerbi", "salesforce",
}

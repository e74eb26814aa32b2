package skills

// SynonymTableVersion identifies the revision of the built-in alias table.
// Bump it whenever defaultSynonyms changes so evaluations can be traced back
// to the table that produced them.
const SynonymTableVersion = "2025-08"

// defaultSynonyms maps skill aliases to their canonical token. The table is
// data, not logic: matching code never special-cases individual skills, and
// deployments extend the table via Matcher.WithSynonyms. Keys and values are
// in normalized form (see Normalize).
var defaultSynonyms = map[string]string{
	// JavaScript ecosystem
	"js":         "javascript",
	"ecmascript": "javascript",
	"node.js":    "javascript",
	"nodejs":     "javascript",
	"ts":         "typescript",
	"react.js":   "react",
	"reactjs":    "react",
	"vue.js":     "vue",
	"vuejs":      "vue",
	"angularjs":  "angular",

	// Languages
	"py":      "python",
	"python3": "python",
	"python2": "python",
	"golang":  "go",

	// Data and ML
	"ml":                      "machine learning",
	"ai":                      "machine learning",
	"artificial intelligence": "machine learning",
	"postgres":                "postgresql",
	"mongo":                   "mongodb",

	// Infrastructure
	"k8s":                 "kubernetes",
	"aws":                 "cloud",
	"azure":               "cloud",
	"gcp":                 "cloud",
	"google cloud":        "cloud",
	"amazon web services": "cloud",

	// Role areas
	"front end":      "frontend",
	"ui":             "frontend",
	"user interface": "frontend",
	"back end":       "backend",
	"server side":    "backend",
}

// Package fields derives structured candidate attributes from resume plain text.
package fields

// Taxonomy is the curated skill vocabulary used for substring matching,
// grouped by category. It is process-wide, read-only configuration: build it
// once and pass it into the extraction functions.
type Taxonomy map[string][]string

// DefaultTaxonomy returns the curated skill groups. Terms are stored in their
// canonical display form; matching is case-insensitive.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		"Programming": {
			"Python", "Java", "C++", "C#", "Go", "JavaScript", "TypeScript", "R", "SQL",
		},
		"Data/ML": {
			"Pandas", "NumPy", "scikit-learn", "TensorFlow", "PyTorch", "Keras", "XGBoost",
			"LightGBM", "Spark", "Hadoop", "Airflow", "ETL", "Tableau", "Power BI",
		},
		"Cloud/DevOps": {
			"AWS", "GCP", "Azure", "Docker", "Kubernetes", "Terraform", "Jenkins", "Git",
		},
		"Web/Backend": {
			"Django", "Flask", "FastAPI", "Spring", "Node.js", "React", "Next.js",
		},
	}
}

// domainPhrases are multi-word (or acronym) terms matched verbatim against the
// lowercased text and title-cased on output.
var domainPhrases = []string{
	"machine learning", "deep learning", "data science", "nlp", "mlops",
}

package nlp

// aliases maps a tag (normalized) to other spellings that count as the same tag.
var aliases = map[string][]string{
	"javascript": {"js", "ecmascript"},
	"react":      {"reactjs", "react js"},
	"node":       {"nodejs", "node js"},
	"python":     {"py"},
	"data":       {"data analysis", "analytics", "data science"},
	"sql":        {"postgresql", "postgres", "mysql", "sqlite"},
	"aws":        {"amazon web services"},
	"docker":     {"containers", "kubernetes", "k8s"},
	"testing":    {"tests", "unit tests", "qa", "test automation"},
	"ci":         {"ci cd", "cicd", "continuous integration"},
	"ux":         {"user experience", "ui ux"},
	"ml":         {"machine learning", "deep learning"},
	"nlp":        {"natural language processing"},
}

// TagVariants returns the normalized spellings that identify tag.
func TagVariants(tag string) []string {
	base := NormalizeText(tag)
	if base == "" {
		return []string{}
	}
	out := []string{base}
	seen := map[string]struct{}{base: {}}
	for _, a := range aliases[base] {
		a = NormalizeText(a)
		if _, ok := seen[a]; ok || a == "" {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}

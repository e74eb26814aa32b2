package skills

// Strategy identifies how a required skill was resolved against the
// candidate's skill set.
type Strategy string

// Matching strategies, in priority order.
const (
	StrategyExact   Strategy = "exact"
	StrategySynonym Strategy = "synonym"
	StrategyFuzzy   Strategy = "fuzzy"
)

// Match is the result of resolving one required skill.
type Match struct {
	Skill       string   `json:"skill"`                  // required skill as the job declared it
	Matched     bool     `json:"matched"`
	MatchedWith string   `json:"matched_with,omitempty"` // candidate skill that satisfied it
	Strategy    Strategy `json:"strategy,omitempty"`
	Confidence  float64  `json:"confidence"` // 1.0 for exact/synonym, similarity for fuzzy
}

// Matcher resolves required skills against candidate skill sets. It is
// immutable after construction and safe for concurrent use.
type Matcher struct {
	threshold float64
	synonyms  map[string]string
}

// NewMatcher returns a Matcher using the built-in synonym table and the given
// fuzzy-match similarity threshold.
func NewMatcher(threshold float64) *Matcher {
	return &Matcher{threshold: threshold, synonyms: defaultSynonyms}
}

// WithSynonyms returns a copy of the Matcher whose synonym table is extended
// with the given alias → canonical entries. Extra entries override built-in
// ones on alias collision. Keys and values are normalized on the way in.
func (m *Matcher) WithSynonyms(extra map[string]string) *Matcher {
	merged := make(map[string]string, len(m.synonyms)+len(extra))
	for alias, canonical := range m.synonyms {
		merged[alias] = canonical
	}
	for alias, canonical := range extra {
		merged[Normalize(alias)] = Normalize(canonical)
	}
	return &Matcher{threshold: m.threshold, synonyms: merged}
}

// canonical maps a normalized skill through the synonym table. Skills without
// an alias entry are their own canonical form.
func (m *Matcher) canonical(normalized string) string {
	if canonical, ok := m.synonyms[normalized]; ok {
		return canonical
	}
	return normalized
}

// Match resolves a single required skill against the candidate's skills.
// Strategies are tried in priority order and the first hit wins: exact match
// on normalized strings, equality of canonical forms via the synonym table,
// then normalized edit-distance similarity at or above the threshold. When
// several candidate skills clear the fuzzy threshold, the highest-similarity
// one is reported; matching is existence-only for scoring purposes.
func (m *Matcher) Match(required string, candidateSkills []string) Match {
	result := Match{Skill: required}
	reqNorm := Normalize(required)
	if reqNorm == "" {
		return result
	}

	for _, cand := range candidateSkills {
		if Normalize(cand) == reqNorm {
			result.Matched = true
			result.MatchedWith = cand
			result.Strategy = StrategyExact
			result.Confidence = 1.0
			return result
		}
	}

	reqCanon := m.canonical(reqNorm)
	for _, cand := range candidateSkills {
		candNorm := Normalize(cand)
		if candNorm == "" {
			continue
		}
		if m.canonical(candNorm) == reqCanon {
			result.Matched = true
			result.MatchedWith = cand
			result.Strategy = StrategySynonym
			result.Confidence = 1.0
			return result
		}
	}

	best := 0.0
	bestSkill := ""
	for _, cand := range candidateSkills {
		candNorm := Normalize(cand)
		if candNorm == "" {
			continue
		}
		if sim := Similarity(reqNorm, candNorm); sim > best {
			best = sim
			bestSkill = cand
		}
	}
	if best >= m.threshold {
		result.Matched = true
		result.MatchedWith = bestSkill
		result.Strategy = StrategyFuzzy
		result.Confidence = best
	}
	return result
}

// MatchAll resolves each required skill in declared order.
func (m *Matcher) MatchAll(required, candidateSkills []string) []Match {
	matches := make([]Match, 0, len(required))
	for _, skill := range required {
		matches = append(matches, m.Match(skill, candidateSkills))
	}
	return matches
}

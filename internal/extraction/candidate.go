package extraction

// CandidateType classifies what kind of real-world entity a candidate names.
type CandidateType string

const (
	CandidateLocation CandidateType = "location"
	CandidateItem     CandidateType = "item"
	CandidatePerson   CandidateType = "person"
)

// Source rules recorded on candidates so downstream scoring and reporting
// can tell how a candidate was produced.
const (
	SourceKnownPattern = "known_pattern"
	SourceStoreSuffix  = "store_suffix"
	SourcePersonName   = "person_name"
	SourceHonorific    = "honorific"
)

// Candidate is a tentative, unpersisted extraction of a real-world entity.
// Score is zero until a scorer evaluates the candidate.
type Candidate struct {
	Name       string
	Address    string
	Type       CandidateType
	SourceRule string
	Score      int
}

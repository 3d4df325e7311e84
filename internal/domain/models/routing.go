package models

// RoutingTarget identifies which model class a factor or decision favors.
type RoutingTarget string

const (
	// TargetSLM favors the local small language model.
	TargetSLM RoutingTarget = "SLM"
	// TargetLLM favors the external large language model.
	TargetLLM RoutingTarget = "LLM"
	// TargetNeutral favors neither side.
	TargetNeutral RoutingTarget = "neutral"
)

// RoutingFactor is one independently-scored signal in the routing vote.
type RoutingFactor struct {
	Name      string        `json:"name"`
	Score     int           `json:"score"`
	Weight    float64       `json:"weight"`
	Reasoning string        `json:"reasoning"`
	Favors    RoutingTarget `json:"favors"`
}

// ComplexityLevel buckets a query by how much reasoning it demands.
type ComplexityLevel string

const (
	// ComplexitySimple is a short, direct lookup-style query.
	ComplexitySimple ComplexityLevel = "simple"
	// ComplexityMedium requires some explanation or multi-part answers.
	ComplexityMedium ComplexityLevel = "medium"
	// ComplexityComplex requires comparison, analysis or hypotheticals.
	ComplexityComplex ComplexityLevel = "complex"
)

// RoutingDecision is the outcome of the SLM-vs-LLM analysis for one query.
// Decisions are independent of prior decisions; there is no feedback loop.
type RoutingDecision struct {
	Factors     []RoutingFactor `json:"factors"`
	SLMScore    int             `json:"slmScore"`
	LLMScore    int             `json:"llmScore"`
	Decision    RoutingTarget   `json:"decision"`
	Confidence  int             `json:"confidence"`
	Complexity  ComplexityLevel `json:"complexity"`
	PIIDetected []PIIMatch      `json:"piiDetected"`
}

// PIIType identifies the category of detected sensitive data.
type PIIType string

const (
	// PIITypeSSN is a social security number.
	PIITypeSSN PIIType = "ssn"
	// PIITypeEmail is an email address.
	PIITypeEmail PIIType = "email"
	// PIITypePhone is a phone number.
	PIITypePhone PIIType = "phone"
	// PIITypeCreditCard is a credit card number.
	PIITypeCreditCard PIIType = "credit_card"
	// PIITypeAccountNumber is an internal account number.
	PIITypeAccountNumber PIIType = "account_number"
	// PIITypeDOB is a date of birth.
	PIITypeDOB PIIType = "dob"
	// PIITypeAddress is a street address.
	PIITypeAddress PIIType = "address"
)

// PIIMatch is a single detected span of sensitive data.
// Invariant: Start < End, the range lies within the source text, and
// matches are non-overlapping after sorting.
type PIIMatch struct {
	Type   PIIType `json:"type"`
	Value  string  `json:"value"`
	Masked string  `json:"masked"`
	Start  int     `json:"start"`
	End    int     `json:"end"`
}

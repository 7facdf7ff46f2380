package pipeline

// Pipeline stage capacities
const (
	defaultStageCapacity = 3 // filter, envelope, normalize
)

var orderNames = map[Order]string{
	FilterThenEnvelope: "filter_then_envelope",
	EnvelopeThenFilter: "envelope_then_filter",
}

var stageNames = map[StageType]string{
	StageFilter:    "filter",
	StageEnvelope:  "envelope",
	StageNormalize: "normalize",
}

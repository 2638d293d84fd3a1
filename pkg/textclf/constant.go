package textclf

// Training defaults, matching the historical model.
const (
	DefaultNgramMin     = 1
	DefaultNgramMax     = 2
	DefaultMinDF        = 2
	DefaultMaxIter      = 2000
	DefaultC            = 1.0
	DefaultTol          = 1e-4
	DefaultLearningRate = 1.0
	DefaultTestSize     = 0.2
	DefaultSeed         = 42
)

// Artifact file identity.
const (
	ArtifactFormat  = "nextact-model"
	ArtifactVersion = 1
)

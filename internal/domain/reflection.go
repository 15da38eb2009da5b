package domain

// ReflectionOrigin tells which branch produced a reflection.
type ReflectionOrigin string

const (
	OriginRemote   ReflectionOrigin = "remote"
	OriginFallback ReflectionOrigin = "fallback"
)

func (o ReflectionOrigin) String() string { return string(o) }

func (o ReflectionOrigin) IsValid() bool {
	switch o {
	case OriginRemote, OriginFallback:
		return true
	}
	return false
}

// ReflectionResult is the generated affirmation returned for a check-in.
type ReflectionResult struct {
	Reflection string
	Title      string
	Source     string
	Origin     ReflectionOrigin
}

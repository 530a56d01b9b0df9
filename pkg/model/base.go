// Package model holds the data model catalog of the Discord API and the
// registry through which every model instance is constructed. Consumers
// replace a built-in model by embedding it in their own struct and
// registering a factory for its kind; every construction path, including
// nested fields of other models, then produces the replacement type.
package model

// Base carries the raw payload a model was built from. All built-in models
// embed it, so custom models that embed a built-in one inherit Raw.
type Base struct {
	raw map[string]any
}

// Raw returns the payload the model was constructed from.
func (b *Base) Raw() map[string]any {
	return b.raw
}

func (b *Base) setRaw(m map[string]any) {
	b.raw = m
}

package sift

// Validatable marks a record type as carrying its own invariants. When a
// struct extraction completes, the engine calls Validate on a pointer to the
// populated value; a non-nil error fails the extraction with ErrValidation.
type Validatable interface {
	Validate() error
}

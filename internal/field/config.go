package field

// Config holds the caller-supplied construction parameters of the control.
// Label and ErrorText are required; Placeholder and Optional are not.
type Config struct {
	// Label is the caption rendered above the phone input.
	Label string `validate:"required"`
	// Placeholder is shown in the empty phone input.
	Placeholder string
	// Optional marks the field as skippable: committing an empty input
	// produces neither a value nor an error.
	Optional bool
	// ErrorText is the field-level message shown when formatting fails.
	ErrorText string `validate:"required"`
}

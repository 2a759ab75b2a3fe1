package base32768

import "github.com/pkg/errors"

var (
	// ErrPartialGroupMidStream is returned when a group other than the last one carries fewer than 15 bits.
	ErrPartialGroupMidStream = errors.New("partial group in the middle of the stream")
	// ErrUnrecognizedTier is returned when the padding of the last group selects a tier with no repertoire.
	ErrUnrecognizedTier = errors.New("unrecognized repertoire tier")
	// ErrUnencodableValue is returned when a value has no code point in its tier.
	ErrUnencodableValue = errors.New("value cannot be encoded")

	// ErrInvalidCharacterWidth is returned when a character needs more than one UTF-16 code unit.
	ErrInvalidCharacterWidth = errors.New("character is not a single UTF-16 code unit")
	// ErrMisplacedPadding is returned when a padding character appears before the end of the input.
	ErrMisplacedPadding = errors.New("padding character in the middle of the stream")
	// ErrInvalidCharacter is returned when a character belongs to no repertoire.
	ErrInvalidCharacter = errors.New("character is not part of the base32768 alphabet")
)

package ir

import "fmt"

// Tag identifies the combinator that produced a tagged node.
type Tag int

const (
	NoTag Tag = iota
	SequenceTag
	OptionalTag
	RepetitionTag
)

var tagNames = map[Tag]string{
	SequenceTag:   "sequence",
	OptionalTag:   "optional",
	RepetitionTag: "repetition",
}

func (t Tag) String() string {
	if s, ok := tagNames[t]; ok {
		return s
	}
	if t == NoTag {
		return ""
	}
	return fmt.Sprintf("<tag %d>", int(t))
}

// Valid reports whether t is one of the combinator tags.
func (t Tag) Valid() bool {
	_, ok := tagNames[t]
	return ok
}

func (t Tag) MarshalText() ([]byte, error) {
	if t != NoTag && !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTag, int(t))
	}
	return []byte(t.String()), nil
}

func (t *Tag) UnmarshalText(d []byte) error {
	tt, err := ParseTag(string(d))
	if err != nil {
		return err
	}
	*t = tt
	return nil
}

// ParseTag parses a combinator tag name. "maybe" is accepted as an alias
// for "optional".
func ParseTag(s string) (Tag, error) {
	switch s {
	case "":
		return NoTag, nil
	case "sequence":
		return SequenceTag, nil
	case "optional", "maybe":
		return OptionalTag, nil
	case "repetition":
		return RepetitionTag, nil
	}
	return NoTag, fmt.Errorf("%w %q", ErrUnknownTag, s)
}

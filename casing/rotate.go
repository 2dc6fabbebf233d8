package casing

// Rotate converts identifier to the next style in [Cycle].
//
// The first style in cycle order whose [Style.Matches] accepts identifier
// parses it, and the successor style formats the words. ok is false when
// identifier is empty or matches no style; that outcome is not an error.
// A parse failure is returned as err and never downgraded to a miss.
func Rotate(identifier string) (next string, ok bool, err error) {
	style, found := Detect(identifier)
	if !found {
		return "", false, nil
	}
	words, err := style.Parse(identifier)
	if err != nil {
		return "", false, err
	}
	return style.Next().Format(words), true, nil
}

// Inspection describes how an identifier is classified and rotated.
type Inspection struct {
	// Identifier is the inspected input
	Identifier string `json:"identifier" yaml:"identifier"`
	// Matched is false when no style accepts Identifier
	Matched bool `json:"matched" yaml:"matched"`
	// Style is the style chosen for rotation
	Style string `json:"style,omitempty" yaml:"style,omitempty"`
	// Candidates lists every style accepting Identifier, in cycle order
	Candidates []string `json:"candidates,omitempty" yaml:"candidates,omitempty"`
	// Words is the parsed word sequence
	Words Words `json:"words,omitempty" yaml:"words,omitempty"`
	// NextStyle is the successor of Style
	NextStyle string `json:"next_style,omitempty" yaml:"next_style,omitempty"`
	// Next is Identifier rotated to NextStyle
	Next string `json:"next,omitempty" yaml:"next,omitempty"`
}

// Inspect classifies identifier and reports its words and rotation.
// An unmatched identifier returns an Inspection with Matched false.
func Inspect(identifier string) (*Inspection, error) {
	in := &Inspection{Identifier: identifier}
	for _, s := range Candidates(identifier) {
		in.Candidates = append(in.Candidates, s.String())
	}

	style, ok := Detect(identifier)
	if !ok {
		return in, nil
	}
	words, err := style.Parse(identifier)
	if err != nil {
		return nil, err
	}

	next := style.Next()
	in.Matched = true
	in.Style = style.String()
	in.Words = words
	in.NextStyle = next.String()
	in.Next = next.Format(words)
	return in, nil
}

package card

// Face represents one printed face of a card. Split and transform cards
// have more than one face; most cards have exactly one.
type Face struct {
	Name       string   `json:"name,omitempty"`
	Colors     []string `json:"colors"`
	Types      []string `json:"types"`
	Supertypes []string `json:"supertypes,omitempty"`
	Subtypes   []string `json:"subtypes,omitempty"`
	ManaCost   string   `json:"manaCost,omitempty"`

	// Power and toughness are strings in the source data because values
	// like "*" and "1+*" are printed on real cards. Nil means absent.
	Power     *string `json:"power,omitempty"`
	Toughness *string `json:"toughness,omitempty"`

	// Nil means the card has no converted mana cost field at all.
	ConvertedManaCost *float64 `json:"convertedManaCost,omitempty"`

	Text string `json:"text,omitempty"`
}

package filter

import (
	"strconv"

	"github.com/arcanaland/cardsieve/internal/card"
)

// Stat values above this never occur in the dataset, so it serves as the
// default upper bound when only a minimum is given.
const maxStat = 9999

// Predicate tests a single attribute of a card face.
type Predicate interface {
	Matches(face card.Face) bool
}

// Criteria holds the optional constraints for one query. An absent field
// contributes no predicate, so it never excludes a face.
type Criteria struct {
	ColorsAll  []string // face colors must include all of these
	ColorsOnly []string // every face color must be among these
	PowerMin   *int
	PowerMax   *int
	ToughMin   *int
	ToughMax   *int
	TypesAll   []string // face types must include all of these
	TypesOnly  []string // every face type must be among these
	CMCMin     *int
	CMCMax     *int
}

// Build converts the criteria into a Filter with exactly one predicate per
// active constraint category.
func (c Criteria) Build() *Filter {
	var predicates []Predicate

	if len(c.ColorsAll) > 0 {
		predicates = append(predicates, supersetPredicate{required: newStringSet(c.ColorsAll), field: faceColors})
	}
	if len(c.ColorsOnly) > 0 {
		predicates = append(predicates, subsetPredicate{accepted: newStringSet(c.ColorsOnly), field: faceColors})
	}
	if c.PowerMin != nil || c.PowerMax != nil {
		lo, hi := bounds(c.PowerMin, c.PowerMax)
		predicates = append(predicates, statRange{min: lo, max: hi, field: facePower})
	}
	if c.ToughMin != nil || c.ToughMax != nil {
		lo, hi := bounds(c.ToughMin, c.ToughMax)
		predicates = append(predicates, statRange{min: lo, max: hi, field: faceToughness})
	}
	if len(c.TypesAll) > 0 {
		predicates = append(predicates, supersetPredicate{required: newStringSet(c.TypesAll), field: faceTypes})
	}
	if len(c.TypesOnly) > 0 {
		predicates = append(predicates, subsetPredicate{accepted: newStringSet(c.TypesOnly), field: faceTypes})
	}
	if c.CMCMin != nil || c.CMCMax != nil {
		lo, hi := bounds(c.CMCMin, c.CMCMax)
		predicates = append(predicates, cmcRange{min: float64(lo), max: float64(hi)})
	}

	return &Filter{predicates: predicates}
}

// Filter is the criterion set for one invocation. Every predicate has to
// accept a face for the face to match.
type Filter struct {
	predicates []Predicate
}

// Len returns the number of active predicates.
func (f *Filter) Len() int {
	return len(f.predicates)
}

// Match reports whether the face satisfies every predicate. With no
// predicates every face matches.
func (f *Filter) Match(face card.Face) bool {
	for _, p := range f.predicates {
		if !p.Matches(face) {
			return false
		}
	}
	return true
}

// MatchesAny reports whether at least one of the faces matches. A card with
// no faces never matches.
func (f *Filter) MatchesAny(faces []card.Face) bool {
	for _, face := range faces {
		if f.Match(face) {
			return true
		}
	}
	return false
}

// Apply returns the cards with at least one matching face, in dataset order.
func (f *Filter) Apply(ds *card.Dataset) *card.Dataset {
	out := card.New()
	for _, name := range ds.Names() {
		faces := ds.Faces(name)
		if f.MatchesAny(faces) {
			out.Add(name, faces)
		}
	}
	return out
}

// Field selectors shared by the set and range predicates.

func faceColors(face card.Face) []string { return face.Colors }
func faceTypes(face card.Face) []string  { return face.Types }

func facePower(face card.Face) *string     { return face.Power }
func faceToughness(face card.Face) *string { return face.Toughness }

// supersetPredicate accepts faces whose field contains every required value.
type supersetPredicate struct {
	required stringSet
	field    func(card.Face) []string
}

func (p supersetPredicate) Matches(face card.Face) bool {
	return p.required.subsetOf(p.field(face))
}

// subsetPredicate accepts faces whose field contains only accepted values.
type subsetPredicate struct {
	accepted stringSet
	field    func(card.Face) []string
}

func (p subsetPredicate) Matches(face card.Face) bool {
	return p.accepted.containsAll(p.field(face))
}

// statRange accepts faces whose stat is a plain digit string inside the
// inclusive bounds. An absent stat or a value like "*" or "1+*" never
// matches.
type statRange struct {
	min, max int
	field    func(card.Face) *string
}

func (p statRange) Matches(face card.Face) bool {
	s := p.field(face)
	if s == nil {
		return false
	}
	v, ok := numericValue(*s)
	if !ok {
		return false
	}
	return p.min <= v && v <= p.max
}

// cmcRange accepts faces whose converted mana cost is present, nonzero and
// inside the inclusive bounds. A cost of exactly 0 is rejected even when 0
// lies inside the bounds: zero-cost and cost-less cards are treated the
// same way here.
type cmcRange struct {
	min, max float64
}

func (p cmcRange) Matches(face card.Face) bool {
	cmc := face.ConvertedManaCost
	if cmc == nil || *cmc == 0 {
		return false
	}
	return p.min <= *cmc && *cmc <= p.max
}

// bounds fills in the defaults for a half-open range request.
func bounds(min, max *int) (int, int) {
	lo, hi := 0, maxStat
	if min != nil {
		lo = *min
	}
	if max != nil {
		hi = *max
	}
	return lo, hi
}

// numericValue parses an unsigned digit string. Signs, decimals and glyphs
// don't count as numeric.
func numericValue(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

type stringSet map[string]struct{}

func newStringSet(values []string) stringSet {
	set := make(stringSet, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// subsetOf reports whether every member of the set appears in values.
func (s stringSet) subsetOf(values []string) bool {
	have := newStringSet(values)
	for v := range s {
		if _, ok := have[v]; !ok {
			return false
		}
	}
	return true
}

// containsAll reports whether every given value is a member of the set.
func (s stringSet) containsAll(values []string) bool {
	for _, v := range values {
		if _, ok := s[v]; !ok {
			return false
		}
	}
	return true
}

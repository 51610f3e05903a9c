package model

// RenderItemKind discriminates the entries of a render list.
type RenderItemKind int

const (
	KindStatusHeader RenderItemKind = iota
	KindRoundHeader
	KindMatch
)

// RenderItem is one entry of the ordered list handed to the presentation
// layer. Kind indicates which fields are populated:
//
//   - KindStatusHeader: ID, Title, Category
//   - KindRoundHeader:  ID, Title, Category, Round
//   - KindMatch:        ID, Category, Match
type RenderItem struct {
	Kind     RenderItemKind
	ID       string // Synthetic for headers, match id for matches
	Title    string // Header display text, empty for matches
	Category Category
	Round    int    // Round headers only
	Match    *Match // Match items only
}

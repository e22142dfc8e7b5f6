package ast

import "solattr/token"

// Keyword is one occurrence of a reserved word. Which word it is follows
// from the attribute that holds it, so only the location is stored.
type Keyword struct {
	Span token.Span
}

// KeywordKind is the tag type of a closed keyword set. String returns the
// keyword text; the zero value is not a member of any set.
type KeywordKind interface {
	~uint8
	String() string
	Category() string
	NodeType() NodeType
}

// KeywordAttr is an attribute drawn from a closed keyword set: exactly one
// keyword of the set is selected by Kind.
type KeywordAttr[K KeywordKind] struct {
	Kind    K
	Keyword Keyword
}

type (
	// Storage is a data location: memory, storage or calldata.
	Storage = KeywordAttr[StorageKind]
	// Visibility is one of external, public, internal or private.
	Visibility = KeywordAttr[VisibilityKind]
	// Mutability is one of pure, view, constant or payable.
	Mutability = KeywordAttr[MutabilityKind]
)

// NewKeywordAttr builds an attribute for kind located at span.
func NewKeywordAttr[K KeywordKind](kind K, span token.Span) *KeywordAttr[K] {
	return &KeywordAttr[K]{Kind: kind, Keyword: Keyword{Span: span}}
}

// Equal compares the selected keyword only; location is ignored.
func (a *KeywordAttr[K]) Equal(other *KeywordAttr[K]) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.Kind == other.Kind
}

func (a *KeywordAttr[K]) Hash() uint64 {
	return newIdentity(a.NodeType()).byte(uint8(a.Kind)).sum()
}

type StorageKind uint8

const (
	StorageMemory StorageKind = iota + 1
	StorageStorage
	StorageCalldata
)

// StorageKinds lists the set in match priority order.
var StorageKinds = []StorageKind{StorageMemory, StorageStorage, StorageCalldata}

var storageKeywords = [...]string{
	StorageMemory:   "memory",
	StorageStorage:  "storage",
	StorageCalldata: "calldata",
}

func (k StorageKind) String() string   { return keywordText(storageKeywords[:], uint8(k)) }
func (StorageKind) Category() string   { return "storage location" }
func (StorageKind) NodeType() NodeType { return STORAGE }

type VisibilityKind uint8

const (
	VisibilityExternal VisibilityKind = iota + 1
	VisibilityPublic
	VisibilityInternal
	VisibilityPrivate
)

var VisibilityKinds = []VisibilityKind{VisibilityExternal, VisibilityPublic, VisibilityInternal, VisibilityPrivate}

var visibilityKeywords = [...]string{
	VisibilityExternal: "external",
	VisibilityPublic:   "public",
	VisibilityInternal: "internal",
	VisibilityPrivate:  "private",
}

func (k VisibilityKind) String() string   { return keywordText(visibilityKeywords[:], uint8(k)) }
func (VisibilityKind) Category() string   { return "visibility" }
func (VisibilityKind) NodeType() NodeType { return VISIBILITY }

type MutabilityKind uint8

const (
	MutabilityPure MutabilityKind = iota + 1
	MutabilityView
	MutabilityConstant
	MutabilityPayable
)

var MutabilityKinds = []MutabilityKind{MutabilityPure, MutabilityView, MutabilityConstant, MutabilityPayable}

var mutabilityKeywords = [...]string{
	MutabilityPure:     "pure",
	MutabilityView:     "view",
	MutabilityConstant: "constant",
	MutabilityPayable:  "payable",
}

func (k MutabilityKind) String() string   { return keywordText(mutabilityKeywords[:], uint8(k)) }
func (MutabilityKind) Category() string   { return "mutability" }
func (MutabilityKind) NodeType() NodeType { return MUTABILITY }

func keywordText(table []string, k uint8) string {
	if int(k) < len(table) {
		return table[k]
	}
	return ""
}

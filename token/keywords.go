package token

// KEYWORDS lists the reserved words of the attribute grammar. The scanner
// classifies these as KEYWORD so they can never be read as path segments.
var KEYWORDS = []string{
	// storage locations
	"memory",
	"storage",
	"calldata",

	// visibility
	"external",
	"public",
	"internal",
	"private",

	// mutability
	"pure",
	"view",
	"constant",
	"payable",

	"override",
}

var keywordSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(KEYWORDS))
	for _, kw := range KEYWORDS {
		set[kw] = struct{}{}
	}
	return set
}()

// LookupKeyword reports whether text is a reserved attribute keyword.
func LookupKeyword(text string) bool {
	_, ok := keywordSet[text]
	return ok
}

package grammar

import "github.com/alecthomas/participle/v2/lexer"

// AttributeList is a whitespace-separated run of declaration attributes,
// e.g. "external view override(A, B) onlyOwner".
type AttributeList struct {
	Attributes []*Attribute `@@*`
}

type Attribute struct {
	Pos        lexer.Position
	Storage    string    `  @("memory" | "storage" | "calldata")`
	Visibility string    `| @("external" | "public" | "internal" | "private")`
	Mutability string    `| @("pure" | "view" | "constant" | "payable")`
	Override   *Override `| @@`
	Modifier   *Modifier `| @@`
}

type Override struct {
	Keyword string  `@"override"`
	Paren   bool    `[ @"("`
	Paths   []*Path `  [ @@ { "," @@ } [ "," ] ] ")" ]`
}

// Path segments are identifiers that are not reserved attribute words.
type Path struct {
	Segments []string `(?! "memory" | "storage" | "calldata" | "external" | "public" | "internal" | "private" | "pure" | "view" | "constant" | "payable" | "override" ) @Ident { "." (?! "memory" | "storage" | "calldata" | "external" | "public" | "internal" | "private" | "pure" | "view" | "constant" | "payable" | "override" ) @Ident }`
}

type Modifier struct {
	Name  *Path  `@@`
	Paren bool   `[ @"("`
	Args  []*Arg `  [ @@ { "," @@ } [ "," ] ] ")" ]`
}

// Arg is an opaque modifier argument: any balanced run of tokens up to the
// next top-level comma.
type Arg struct {
	Tokens []lexer.Token
	Parts  []*ArgPart `@@+`
}

type ArgPart struct {
	Group *ArgGroup `  @@`
	Token string    `| @( Ident | Number | String | Operator | "." )`
}

type ArgGroup struct {
	Open  string     `@( "(" | "[" | "{" )`
	Items []*ArgItem `@@*`
	Close string     `@( ")" | "]" | "}" )`
}

type ArgItem struct {
	Part  *ArgPart `  @@`
	Comma bool     `| @","`
}

package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var SolidityLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Trivia
		{"Whitespace", `[ \t\r\n]+`, nil},
		{"Comment", `//[^\n]*|/\*(?s:.*?)\*/`, nil},

		// Keywords and identifiers; reserved words are told apart by value
		{"Ident", `[a-zA-Z_$][a-zA-Z0-9_$]*`, nil},

		// Literals
		{"Number", `0[xX][0-9a-fA-F_]+|[0-9][0-9_]*(\.[0-9]+)?([eE][-+]?[0-9]+)?`, nil},
		{"String", `"(\\.|[^"\\\n])*"|'(\\.|[^'\\\n])*'`, nil},

		// Operators
		{"Operator", `(\*\*|&&|\|\||==|!=|<=|>=|<<|>>|\+\+|--|=>|\+=|-=|\*=|/=|%=|[-+*/%&|^!~<>=?:;])`, nil},

		// Punctuation (must come after operators)
		{"Punct", `[()[\]{},.]`, nil},
	},
})

// Elided lists the token kinds that never reach a parser.
var Elided = []string{"Whitespace", "Comment"}

package grammar

// toy is the grammar of the toy language. Ids are referenced by the reduce
// entries of table.Default and must not be renumbered.
var toy = []Production{
	{LHS: "S'", RHS: []string{"CODE"}}, // 0
	{LHS: "CODE", RHS: []string{"VDECL", "CODE"}},
	{LHS: "CODE", RHS: []string{"FDECL", "CODE"}},
	{LHS: "CODE"},
	{LHS: "VDECL", RHS: []string{"vtype", "id", "semi"}},
	{LHS: "VDECL", RHS: []string{"vtype", "ASSIGN", "semi"}}, // 5
	{LHS: "ASSIGN", RHS: []string{"id", "assign", "RHS"}},
	{LHS: "RHS", RHS: []string{"EXPR"}},
	{LHS: "RHS", RHS: []string{"literal"}},
	{LHS: "RHS", RHS: []string{"character"}},
	{LHS: "RHS", RHS: []string{"boolstr"}}, // 10
	{LHS: "EXPR", RHS: []string{"TERM", "EXPR_TAIL"}},
	{LHS: "EXPR_TAIL", RHS: []string{"addsub", "TERM", "EXPR_TAIL"}},
	{LHS: "EXPR_TAIL"},
	{LHS: "TERM", RHS: []string{"FACTOR", "TERM_TAIL"}},
	{LHS: "TERM_TAIL", RHS: []string{"multdiv", "FACTOR", "TERM_TAIL"}}, // 15
	{LHS: "TERM_TAIL"},
	{LHS: "FACTOR", RHS: []string{"lparen", "EXPR", "rparen"}},
	{LHS: "FACTOR", RHS: []string{"id"}},
	{LHS: "FACTOR", RHS: []string{"num"}},
	{LHS: "FDECL", RHS: []string{"vtype", "id", "lparen", "ARG", "rparen", "lbrace", "BLOCK", "RETURN", "rbrace"}}, // 20
	{LHS: "ARG", RHS: []string{"vtype", "id", "MOREARGS"}},
	{LHS: "ARG"},
	{LHS: "MOREARGS", RHS: []string{"comma", "vtype", "id", "MOREARGS"}},
	{LHS: "MOREARGS"},
	{LHS: "BLOCK", RHS: []string{"STMT", "BLOCK"}}, // 25
	{LHS: "BLOCK"},
	{LHS: "STMT", RHS: []string{"VDECL"}},
	{LHS: "STMT", RHS: []string{"ASSIGN", "semi"}},
	{LHS: "STMT", RHS: []string{"IF"}},
	{LHS: "STMT", RHS: []string{"IFELSE"}}, // 30
	{LHS: "STMT", RHS: []string{"while", "lparen", "COND", "rparen", "lbrace", "BLOCK", "rbrace"}},
	{LHS: "IF", RHS: []string{"if", "lparen", "COND", "rparen", "lbrace", "BLOCK", "rbrace"}},
	{LHS: "IFELSE", RHS: []string{"if", "lparen", "COND", "rparen", "lbrace", "BLOCK", "rbrace", "else", "lbrace", "BLOCK", "rbrace"}},
	{LHS: "COND", RHS: []string{"SIMPLECOND", "COND_TAIL"}},
	{LHS: "SIMPLECOND", RHS: []string{"boolstr"}}, // 35
	{LHS: "SIMPLECOND", RHS: []string{"lparen", "COND", "rparen"}},
	{LHS: "COND_TAIL", RHS: []string{"comp", "SIMPLECOND", "COND_TAIL"}},
	{LHS: "COND_TAIL"},
	{LHS: "RETURN", RHS: []string{"return", "RHS", "semi"}},
}

// Default returns the grammar of the toy language.
func Default() *Grammar {
	return New(toy)
}

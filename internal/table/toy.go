package table

// toyActions is the hand-authored ACTION table for grammar.Default. Cells are
// kept exactly as authored, gaps included. In particular the RETURN goto is
// keyed on state 46 rather than 38, so a function declaration always ends in
// a missing GOTO.
var toyActions = map[int]map[string]Action{
	0:  {"vtype": shift(4), "$": reduce(3)},
	1:  {"$": accept()},
	2:  {"vtype": shift(4), "$": reduce(3)},
	3:  {"vtype": shift(4), "$": reduce(3)},
	4:  {"id": shift(7)},
	5:  {"$": reduce(1)},
	6:  {"$": reduce(2)},
	7:  {"semi": shift(9), "assign": shift(11), "lparen": shift(10)},
	8:  {"semi": shift(12)},
	9:  {"vtype": reduce(4), "id": reduce(4), "rbrace": reduce(4), "while": reduce(4), "if": reduce(4), "return": reduce(4), "$": reduce(4)},
	10: {"vtype": shift(14), "rparen": reduce(22)},
	11: {"id": shift(23), "literal": shift(17), "character": shift(18), "boolstr": shift(19), "lparen": shift(22), "num": shift(24)},
	12: {"vtype": reduce(5), "id": reduce(5), "rbrace": reduce(5), "while": reduce(5), "if": reduce(5), "return": reduce(5), "$": reduce(5)},
	13: {"rparen": shift(25)},
	14: {"id": shift(26)},
	15: {"semi": reduce(6)},
	16: {"semi": reduce(7)},
	17: {"semi": reduce(8)},
	18: {"semi": reduce(9)},
	19: {"semi": reduce(10)},
	20: {"semi": reduce(13), "rparen": reduce(13), "addsub": shift(28)},
	21: {"semi": reduce(16), "addsub": reduce(16), "rparen": reduce(16), "multdiv": shift(30)},
	22: {"id": shift(23), "lparen": shift(22), "num": shift(24)},
	23: {"semi": reduce(18), "addsub": reduce(18), "multdiv": reduce(18), "rparen": reduce(18)},
	24: {"semi": reduce(19), "addsub": reduce(19), "multdiv": reduce(19), "rparen": reduce(19)},
	25: {"lbrace": shift(32)},
	26: {"$": reduce(24), "comma": shift(34)},
	27: {"semi": reduce(11), "rparen": reduce(11)},
	28: {"id": shift(23), "lparen": shift(22), "num": shift(24)},
	29: {"semi": reduce(14), "addsub": reduce(14), "rparen": reduce(14)},
	30: {"id": shift(23), "lparen": shift(22), "num": shift(24)},
	31: {"rparen": shift(37)},
	32: {"vtype": shift(45), "id": shift(46), "while": shift(44), "if": shift(47), "rbrace": reduce(26), "return": reduce(26)},
	33: {"rparen": reduce(21)},
	34: {"vtype": shift(48)},
	35: {"semi": reduce(13), "addsub": shift(28), "rparen": reduce(13)},
	36: {"semi": reduce(16), "addsub": reduce(16), "multdiv": shift(30), "rparen": reduce(16)},
	37: {"semi": reduce(17), "addsub": reduce(17), "multdiv": reduce(17), "rparen": reduce(17)},
	38: {"return": shift(52)},
	39: {"vtype": shift(45), "id": shift(46), "while": shift(44), "if": shift(47), "rbrace": reduce(26), "return": reduce(26)},
	40: {"vtype": reduce(27), "id": reduce(27), "rbrace": reduce(27), "while": reduce(27), "if": reduce(27), "return": reduce(27)},
	41: {"semi": shift(54)},
	42: {"vtype": reduce(29), "id": reduce(29), "rbrace": reduce(29), "while": reduce(29), "if": reduce(29), "return": reduce(29)},
	43: {"vtype": reduce(30), "id": reduce(30), "rbrace": reduce(30), "while": reduce(30), "if": reduce(30), "return": reduce(30)},
	44: {"lparen": shift(55)},
	45: {"id": shift(56)},
	46: {"assign": shift(11)},
	47: {"lparen": shift(57)},
	48: {"id": shift(58)},
	49: {"semi": reduce(12), "rparen": reduce(15)},
	50: {"semi": reduce(15), "addsub": reduce(15), "rparen": reduce(15)},
	51: {"rbrace": shift(59)},
	52: {"id": shift(23), "literal": shift(17), "character": shift(18), "boolstr": shift(19), "lparen": shift(22), "num": shift(24)},
	53: {"rbrace": reduce(25), "return": reduce(25)},
	54: {"vtype": reduce(28), "id": reduce(28), "rbrace": reduce(28), "while": reduce(28), "if": reduce(28), "return": reduce(28)},
	55: {"boolstr": shift(63), "lparen": shift(64)},
	56: {"semi": shift(9), "assign": shift(11)},
	57: {"boolstr": shift(63), "lparen": shift(64)},
	58: {"rparen": reduce(24), "comma": shift(34)},
	59: {"vtype": reduce(20), "$": reduce(20)},
	60: {"semi": shift(67)},
	61: {"rparen": shift(68)},
	62: {"rparen": reduce(38), "comp": shift(70)},
	63: {"rparen": reduce(35), "comp": reduce(35)},
	64: {"boolstr": shift(63), "lparen": shift(64)},
	65: {"rparen": shift(72)},
	66: {"rparen": reduce(23)},
	67: {"rbrace": reduce(39)},
	68: {"lbrace": shift(73)},
	69: {"rparen": reduce(34)},
	70: {"boolstr": shift(63), "lparen": shift(64)},
	71: {"rparen": shift(75)},
	72: {"rbrace": shift(76)},
	73: {"vtype": shift(45), "id": shift(46), "while": shift(44), "if": shift(47), "rbrace": reduce(26), "return": reduce(26)},
	74: {"rparen": reduce(38), "comp": shift(70)},
	75: {"rparen": reduce(36), "comp": reduce(36)},
	76: {"vtype": shift(45), "id": shift(46), "while": shift(44), "if": shift(47), "rbrace": reduce(26), "return": reduce(26)},
	77: {"rbrace": shift(80)},
	78: {"rparen": reduce(37)},
	79: {"rbrace": shift(81)},
	80: {"vtype": reduce(31), "id": reduce(31), "rbrace": reduce(31), "while": reduce(31), "if": reduce(31), "return": reduce(31)},
	81: {"vtype": reduce(32), "id": reduce(32), "rbrace": reduce(32), "while": reduce(32), "if": reduce(32), "return": reduce(32), "else": shift(82)},
	82: {"lbrace": shift(83)},
	83: {"vtype": shift(45), "id": shift(46), "while": shift(44), "if": shift(47), "rbrace": reduce(26), "return": reduce(26)},
	84: {"rbrace": shift(85)},
	85: {"vtype": reduce(33), "id": reduce(33), "rbrace": reduce(33), "while": reduce(33), "if": reduce(33), "return": reduce(33)},
}

// toyGotos is the hand-authored GOTO table for grammar.Default.
var toyGotos = map[int]map[string]int{
	0:  {"CODE": 1, "VDECL": 2, "FDECL": 3},
	2:  {"CODE": 5, "VDECL": 2, "FDECL": 3},
	3:  {"CODE": 6, "VDECL": 2, "FDECL": 3},
	4:  {"ASSIGN": 8},
	10: {"ARG": 13},
	11: {"RHS": 15, "EXPR": 16, "TERM": 20, "FACTOR": 21},
	20: {"EXPR_TAIL": 27},
	21: {"TERM_TAIL": 29},
	22: {"EXPR": 31, "TERM": 20, "FACTOR": 21},
	26: {"MOREARGS": 33},
	28: {"TERM": 35, "FACTOR": 21},
	30: {"FACTOR": 36},
	32: {"VDECL": 40, "ASSIGN": 41, "BLOCK": 38, "STMT": 39, "IF": 42, "IFELSE": 43},
	35: {"EXPR_TAIL": 49},
	36: {"TERM_TAIL": 50},
	46: {"RETURN": 51},
	39: {"VDECL": 40, "ASSIGN": 41, "BLOCK": 38, "STMT": 39, "IF": 42, "IFELSE": 43},
	45: {"ASSIGN": 8},
	52: {"RHS": 60, "EXPR": 16, "TERM": 20, "FACTOR": 21},
	55: {"COND": 61, "SIMPLECOND": 62},
	57: {"COND": 65, "SIMPLECOND": 62},
	58: {"MOREARGS": 66},
	62: {"COND_TAIL": 69},
	64: {"COND": 71, "SIMPLECOND": 62},
	70: {"SIMPLECOND": 74},
	73: {"VDECL": 40, "ASSIGN": 41, "BLOCK": 77, "STMT": 39, "IF": 42, "IFELSE": 43},
	74: {"COND_TAIL": 78},
	76: {"VDECL": 40, "ASSIGN": 41, "BLOCK": 79, "STMT": 39, "IF": 42, "IFELSE": 43},
	83: {"VDECL": 40, "ASSIGN": 41, "BLOCK": 84, "STMT": 39, "IF": 42, "IFELSE": 43},
}

var defaultTables = New(toyActions, toyGotos)

// Default returns the tables for the toy grammar. The returned value is
// shared and must not be modified.
func Default() *Tables {
	return defaultTables
}

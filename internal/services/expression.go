package services

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// The calculator display holds Python arithmetic: integers are unbounded,
// "/" is true division, "//" floors and unary minus binds looser than "**".
// translate parses that grammar and emits an equivalent script whose
// operators are calls into pythonArithmetic.

const pythonArithmetic = `
function isInt(x) { return typeof x === "bigint"; }
function num(x) { return isInt(x) ? Number(x) : x; }
function mixed(a, b) { return !isInt(a) || !isInt(b); }
function zeroDivision() { throw new RangeError("division by zero"); }

function add(a, b) { return mixed(a, b) ? num(a) + num(b) : a + b; }
function sub(a, b) { return mixed(a, b) ? num(a) - num(b) : a - b; }
function mul(a, b) { return mixed(a, b) ? num(a) * num(b) : a * b; }
function neg(a) { return -a; }
function pos(a) { return a; }

function div(a, b) {
	if (num(b) === 0) zeroDivision();
	return num(a) / num(b);
}

function floordiv(a, b) {
	if (mixed(a, b)) {
		if (num(b) === 0) zeroDivision();
		return Math.floor(num(a) / num(b));
	}
	if (b === 0n) zeroDivision();
	let q = a / b;
	if (a % b !== 0n && (a < 0n) !== (b < 0n)) q -= 1n;
	return q;
}

function pow(a, b) {
	if (mixed(a, b) || b < 0n) {
		if (num(a) === 0 && num(b) < 0) zeroDivision();
		return Math.pow(num(a), num(b));
	}
	if (b > maxExponent && (a > 1n || a < -1n)) {
		throw new RangeError("exponent too large");
	}
	return a ** b;
}
`

// maxIntDigits is the longest integer Python will render as text.
const maxIntDigits = 4300

// maxExponent keeps a bigint power from stalling the interpreter. Any base
// outside [-1, 1] raised this high already exceeds maxIntDigits.
const maxExponent = 15000

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenOperator
	tokenOpen
	tokenClose
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

func tokenize(expr string) ([]token, error) {
	var tokens []token
	for i := 0; i < len(expr); {
		ch := expr[i]
		switch {
		case ch == ' ':
			i++
		case ch >= '0' && ch <= '9' || ch == '.':
			start := i
			for i < len(expr) && expr[i] >= '0' && expr[i] <= '9' {
				i++
			}
			if i < len(expr) && expr[i] == '.' {
				i++
				for i < len(expr) && expr[i] >= '0' && expr[i] <= '9' {
					i++
				}
			}
			if expr[start:i] == "." {
				return nil, fmt.Errorf("stray '.' at %d", start)
			}
			tokens = append(tokens, token{kind: tokenNumber, text: expr[start:i], pos: start})
		case ch == '*' || ch == '/':
			op := string(ch)
			if i+1 < len(expr) && expr[i+1] == ch {
				op += op
			}
			tokens = append(tokens, token{kind: tokenOperator, text: op, pos: i})
			i += len(op)
		case ch == '+' || ch == '-':
			tokens = append(tokens, token{kind: tokenOperator, text: string(ch), pos: i})
			i++
		case ch == '(':
			tokens = append(tokens, token{kind: tokenOpen, text: "(", pos: i})
			i++
		case ch == ')':
			tokens = append(tokens, token{kind: tokenClose, text: ")", pos: i})
			i++
		default:
			return nil, fmt.Errorf("unexpected %q at %d", ch, i)
		}
	}
	return tokens, nil
}

type translator struct {
	tokens []token
	next   int
}

// translate turns a display expression into a script over pythonArithmetic.
func translate(expr string) (string, error) {
	tokens, err := tokenize(expr)
	if err != nil {
		return "", err
	}
	if len(tokens) == 0 {
		return "", fmt.Errorf("empty expression")
	}

	t := &translator{tokens: tokens}
	script, err := t.sum()
	if err != nil {
		return "", err
	}
	if tok, ok := t.peek(); ok {
		return "", fmt.Errorf("unexpected %q at %d", tok.text, tok.pos)
	}
	return script, nil
}

func (t *translator) peek() (token, bool) {
	if t.next >= len(t.tokens) {
		return token{}, false
	}
	return t.tokens[t.next], true
}

func (t *translator) operator(ops ...string) (string, bool) {
	tok, ok := t.peek()
	if !ok || tok.kind != tokenOperator {
		return "", false
	}
	for _, op := range ops {
		if tok.text == op {
			t.next++
			return op, true
		}
	}
	return "", false
}

var operatorHelpers = map[string]string{
	"+":  "add",
	"-":  "sub",
	"*":  "mul",
	"/":  "div",
	"//": "floordiv",
	"**": "pow",
}

// sum := product (("+" | "-") product)*
func (t *translator) sum() (string, error) {
	left, err := t.product()
	if err != nil {
		return "", err
	}
	for {
		op, ok := t.operator("+", "-")
		if !ok {
			return left, nil
		}
		right, err := t.product()
		if err != nil {
			return "", err
		}
		left = operatorHelpers[op] + "(" + left + ", " + right + ")"
	}
}

// product := unary (("*" | "/" | "//") unary)*
func (t *translator) product() (string, error) {
	left, err := t.unary()
	if err != nil {
		return "", err
	}
	for {
		op, ok := t.operator("*", "/", "//")
		if !ok {
			return left, nil
		}
		right, err := t.unary()
		if err != nil {
			return "", err
		}
		left = operatorHelpers[op] + "(" + left + ", " + right + ")"
	}
}

// unary := ("+" | "-") unary | power
func (t *translator) unary() (string, error) {
	if op, ok := t.operator("+", "-"); ok {
		operand, err := t.unary()
		if err != nil {
			return "", err
		}
		if op == "-" {
			return "neg(" + operand + ")", nil
		}
		return "pos(" + operand + ")", nil
	}
	return t.power()
}

// power := atom ["**" unary]
func (t *translator) power() (string, error) {
	base, err := t.atom()
	if err != nil {
		return "", err
	}
	if _, ok := t.operator("**"); !ok {
		return base, nil
	}
	exponent, err := t.unary()
	if err != nil {
		return "", err
	}
	return "pow(" + base + ", " + exponent + ")", nil
}

// atom := number | "(" sum ")"
func (t *translator) atom() (string, error) {
	tok, ok := t.peek()
	if !ok {
		return "", fmt.Errorf("expression ends early")
	}
	t.next++

	switch tok.kind {
	case tokenNumber:
		return numberLiteral(tok)
	case tokenOpen:
		inner, err := t.sum()
		if err != nil {
			return "", err
		}
		closing, ok := t.peek()
		if !ok || closing.kind != tokenClose {
			return "", fmt.Errorf("unbalanced '(' at %d", tok.pos)
		}
		t.next++
		return "(" + inner + ")", nil
	default:
		return "", fmt.Errorf("unexpected %q at %d", tok.text, tok.pos)
	}
}

// numberLiteral emits integers as bigints and decimals as numbers. An integer
// such as 07 is rejected; 00 and 007.5 are accepted.
func numberLiteral(tok token) (string, error) {
	if strings.Contains(tok.text, ".") {
		v, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return "", fmt.Errorf("bad number %q at %d", tok.text, tok.pos)
		}
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	}

	if len(tok.text) > 1 && tok.text[0] == '0' && strings.Trim(tok.text, "0") != "" {
		return "", fmt.Errorf("leading zeros in %q at %d", tok.text, tok.pos)
	}
	n, ok := new(big.Int).SetString(tok.text, 10)
	if !ok {
		return "", fmt.Errorf("bad number %q at %d", tok.text, tok.pos)
	}
	return n.String() + "n", nil
}

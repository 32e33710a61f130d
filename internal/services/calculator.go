package services

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/dop251/goja"
)

var ErrInvalidExpression = errors.New("invalid expression")

var arithmeticProgram = goja.MustCompile("arithmetic.js",
	fmt.Sprintf("const maxExponent = %dn;\n%s", maxExponent, pythonArithmetic), false)

// Calculator evaluates the arithmetic accumulated on the calculator display.
type Calculator struct {
	timeout time.Duration
}

func NewCalculator() *Calculator {
	return &Calculator{timeout: 250 * time.Millisecond}
}

// Evaluate returns the display text for expr. Integer results are exact and
// print without a decimal point; anything that went through true division or
// a decimal literal prints as a float ("8/4" is "2.0").
func (c *Calculator) Evaluate(expr string) (string, error) {
	script, err := translate(expr)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidExpression, err)
	}

	value, err := c.run(script)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidExpression, expr, err)
	}

	switch v := value.(type) {
	case *big.Int:
		text := v.String()
		if len(strings.TrimPrefix(text, "-")) > maxIntDigits {
			return "", fmt.Errorf("%w: %q has more than %d digits", ErrInvalidExpression, expr, maxIntDigits)
		}
		return text, nil
	case int64:
		return formatFloat(float64(v)), nil
	case float64:
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return "", fmt.Errorf("%w: %q does not evaluate to a finite number", ErrInvalidExpression, expr)
		}
		return formatFloat(v), nil
	default:
		return "", fmt.Errorf("%w: %q is not numeric", ErrInvalidExpression, expr)
	}
}

func (c *Calculator) run(script string) (interface{}, error) {
	vm := goja.New()

	timer := time.AfterFunc(c.timeout, func() {
		vm.Interrupt("evaluation timeout exceeded")
	})
	defer timer.Stop()

	if _, err := vm.RunProgram(arithmeticProgram); err != nil {
		return nil, err
	}
	val, err := vm.RunString(script)
	if err != nil {
		return nil, err
	}
	return val.Export(), nil
}

// formatFloat mirrors the shortest round-trip text Python prints for floats.
func formatFloat(v float64) string {
	if v == 0 {
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}
	abs := math.Abs(v)
	if abs >= 1e16 || abs < 1e-4 {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

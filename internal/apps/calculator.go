package apps

import (
	"win31-sim/internal/logger"
	"win31-sim/internal/services"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

const calculatorError = "Error"

var calculatorKeys = []string{
	"7", "8", "9", "+",
	"4", "5", "6", "-",
	"1", "2", "3", "*",
	"0", "C", "=", "/",
}

// calculatorModel holds the display text shared by the keypad and the entry.
type calculatorModel struct {
	display binding.String
	engine  *services.Calculator
	logger  logger.Logger
}

func newCalculatorModel(engine *services.Calculator, log logger.Logger) *calculatorModel {
	return &calculatorModel{display: binding.NewString(), engine: engine, logger: log}
}

func (m *calculatorModel) Text() string {
	text, _ := m.display.Get()
	return text
}

// Press handles one keypad token.
func (m *calculatorModel) Press(key string) {
	switch key {
	case "C":
		m.Clear()
	case "=":
		m.Evaluate()
	default:
		_ = m.display.Set(m.Text() + key)
	}
}

func (m *calculatorModel) Clear() {
	_ = m.display.Set("")
}

// Evaluate replaces the display with the result, or with "Error" on any failure.
func (m *calculatorModel) Evaluate() {
	expr := m.Text()
	result, err := m.engine.Evaluate(expr)
	if err != nil {
		m.logger.Debug("Calculator", "evaluation failed", map[string]interface{}{
			"expression": expr,
			"error":      err.Error(),
		})
		result = calculatorError
	}
	_ = m.display.Set(result)
}

func buildCalculator(env *Env) fyne.CanvasObject {
	model := newCalculatorModel(env.Calculator, env.Logger)
	display := widget.NewEntryWithData(model.display)

	keys := make([]fyne.CanvasObject, 0, len(calculatorKeys))
	for _, key := range calculatorKeys {
		k := key
		keys = append(keys, widget.NewButton(k, func() { model.Press(k) }))
	}
	return container.NewBorder(display, nil, nil, nil, container.NewGridWithColumns(4, keys...))
}

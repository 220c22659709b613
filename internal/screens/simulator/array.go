package simulator

import (
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hayakil/internal/ui/components"
	"github.com/abhisek/hayakil/internal/ui/layout"
	"github.com/abhisek/hayakil/internal/ui/theme"
	"github.com/abhisek/hayakil/internal/visualizer"
)

var memoryValues = []int{45, 23, 67, 12, 89, 34, 56, 78}

// arrayWidget simulates indexed access into int numbers[8].
type arrayWidget struct {
	cells  []int
	cursor int
	access *visualizer.Access
	input  components.TextInput
	notice notice
}

func newArrayWidget() *arrayWidget {
	return &arrayWidget{
		cells: memoryValues,
		input: components.NewTextInput(fmt.Sprintf("أدخل المؤشر (0-%d)", visualizer.Capacity-1), true, 3),
	}
}

func (w *arrayWidget) Init() tea.Cmd {
	return w.input.Init()
}

func (w *arrayWidget) Heading() string {
	return "🧮 محاكي الذاكرة التفاعلي"
}

func (w *arrayWidget) Update(msg tea.Msg) tea.Cmd {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter":
			i, err := w.input.NumericValue()
			if err != nil {
				w.access = nil
				w.notice = failure(visualizer.KindArray, err)
				return nil
			}
			w.accessIndex(i)
			w.input.Reset()
			return nil
		case "left":
			if w.cursor > 0 {
				w.cursor--
			}
			return nil
		case "right":
			if w.cursor < len(w.cells)-1 {
				w.cursor++
			}
			return nil
		case "space":
			w.accessIndex(w.cursor)
			return nil
		case "r":
			w.access = nil
			w.cursor = 0
			w.notice = notice{}
			w.input.Reset()
			return nil
		}
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return cmd
}

func (w *arrayWidget) accessIndex(i int) {
	a, err := visualizer.AccessByIndex(w.cells, i)
	if err != nil {
		w.access = nil
		w.notice = failure(visualizer.KindArray, err)
		return
	}
	w.access = &a
	w.cursor = i
	w.notice = notice{}
}

func (w *arrayWidget) View(width int) string {
	var cells, indexes []string
	for i, v := range w.cells {
		active := w.access != nil && w.access.Index == i
		box := cell(v, active)
		addr := dim(fmt.Sprintf("addr: %d", visualizer.AddressOf(i)))
		cells = append(cells, lipgloss.JoinVertical(lipgloss.Center, box, addr))

		idx := strconv.Itoa(i)
		if i == w.cursor {
			idx = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("▲ " + idx)
		}
		indexes = append(indexes, lipgloss.NewStyle().Width(lipgloss.Width(box)).Align(lipgloss.Center).Render(idx))
	}

	declaration := lipgloss.NewStyle().Bold(true).Render("int numbers[8] = {45, 23, 67, 12, 89, 34, 56, 78}")

	var result string
	if w.access != nil {
		result = theme.Correct.Render(fmt.Sprintf(
			"النتيجة: المؤشر: %d | القيمة: %d | العنوان: %d | التعقيد: %s",
			w.access.Index, w.access.Value, w.access.Address, w.access.Complexity,
		))
	}

	return joinLines(
		declaration,
		lipgloss.JoinHorizontal(lipgloss.Top, cells...)+"\n"+lipgloss.JoinHorizontal(lipgloss.Top, indexes...),
		w.input.View(),
		result,
		w.notice.View(),
	)
}

func (w *arrayWidget) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "0-7 Enter", Description: "الوصول للعنصر"},
		{Key: "←→ Space", Description: "تحريك واختيار"},
		{Key: "R", Description: "إعادة تعيين"},
	}
}

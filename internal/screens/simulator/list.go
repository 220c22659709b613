package simulator

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hayakil/internal/ui/components"
	"github.com/abhisek/hayakil/internal/ui/layout"
	"github.com/abhisek/hayakil/internal/visualizer"
)

// listWidget simulates a singly or doubly linked list.
type listWidget struct {
	doubly bool
	nodes  []int
	input  components.TextInput
	notice notice
}

func newListWidget(doubly bool) *listWidget {
	return &listWidget{doubly: doubly, nodes: initialItems, input: newValueInput()}
}

func (w *listWidget) Init() tea.Cmd {
	return w.input.Init()
}

func (w *listWidget) Heading() string {
	if w.doubly {
		return "⛓️ محاكي القائمة المزدوجة"
	}
	return "🔗 محاكي القائمة المرتبطة"
}

func (w *listWidget) Update(msg tea.Msg) tea.Cmd {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter":
			w.apply(visualizer.AppendEnd)
			return nil
		case "d":
			w.apply(func(seq []int, v int) ([]int, error) {
				return visualizer.RemoveByValue(seq, v)
			})
			return nil
		}
	}
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return cmd
}

// apply runs op with the typed value and commits the result on success.
func (w *listWidget) apply(op func([]int, int) ([]int, error)) {
	v, err := w.input.NumericValue()
	if err != nil {
		w.notice = failure(visualizer.KindList, err)
		return
	}
	next, err := op(w.nodes, v)
	if err != nil {
		w.notice = failure(visualizer.KindList, err)
		return
	}
	w.nodes = next
	w.notice = notice{}
	w.input.Reset()
}

func (w *listWidget) View(width int) string {
	sep, tail := " → ", " → NULL"
	if w.doubly {
		sep, tail = " ⇄ ", " → NULL"
	}

	var row string
	switch {
	case len(w.nodes) == 0:
		row = dim("Head → NULL")
	case w.doubly:
		row = lipgloss.JoinHorizontal(lipgloss.Center, dim("NULL ← "), chain(w.nodes, sep), dim(tail))
	default:
		row = lipgloss.JoinHorizontal(lipgloss.Center, dim("Head → "), chain(w.nodes, sep), dim(tail))
	}

	return joinLines(
		row,
		dim(fmt.Sprintf("عدد العقد: %d / %d", len(w.nodes), visualizer.Capacity)),
		w.input.View(),
		w.notice.View(),
	)
}

func (w *listWidget) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "إضافة في النهاية"},
		{Key: "D", Description: "حذف بالقيمة"},
	}
}

// circularWidget simulates a circular list where the tail links to the head.
type circularWidget struct {
	nodes  []int
	input  components.TextInput
	notice notice
}

func newCircularWidget() *circularWidget {
	return &circularWidget{nodes: initialItems, input: newValueInput()}
}

func (w *circularWidget) Init() tea.Cmd {
	return w.input.Init()
}

func (w *circularWidget) Heading() string {
	return "🔄 محاكي القائمة الدائرية"
}

func (w *circularWidget) Update(msg tea.Msg) tea.Cmd {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter":
			v, err := w.input.NumericValue()
			if err != nil {
				w.notice = failure(visualizer.KindList, err)
				return nil
			}
			next, err := visualizer.AppendEnd(w.nodes, v)
			if err != nil {
				w.notice = failure(visualizer.KindList, err)
				return nil
			}
			w.nodes, w.notice = next, notice{}
			w.input.Reset()
			return nil
		case "d":
			_, next, err := visualizer.PopEnd(w.nodes)
			if err != nil {
				w.notice = failure(visualizer.KindList, err)
				return nil
			}
			w.nodes, w.notice = next, notice{}
			return nil
		}
	}
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return cmd
}

func (w *circularWidget) View(width int) string {
	row := dim("القائمة فارغة!")
	if len(w.nodes) > 0 {
		loop := dim(fmt.Sprintf(" ↩ (Head: %d)", w.nodes[0]))
		row = lipgloss.JoinHorizontal(lipgloss.Center, chain(w.nodes, " → "), loop)
	}
	return joinLines(
		row,
		w.input.View(),
		w.notice.View(),
	)
}

func (w *circularWidget) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "إضافة عقدة"},
		{Key: "D", Description: "حذف الأخيرة"},
	}
}

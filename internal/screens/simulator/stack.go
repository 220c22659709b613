package simulator

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/hayakil/internal/ui/components"
	"github.com/abhisek/hayakil/internal/ui/layout"
	"github.com/abhisek/hayakil/internal/visualizer"
)

var initialItems = []int{10, 20, 30}

// stackWidget simulates push, pop and peek on a bounded stack.
type stackWidget struct {
	items  []int
	input  components.TextInput
	notice notice
}

func newStackWidget() *stackWidget {
	return &stackWidget{items: initialItems, input: newValueInput()}
}

func (w *stackWidget) Init() tea.Cmd {
	return w.input.Init()
}

func (w *stackWidget) Heading() string {
	return "📚 محاكي المكدس التفاعلي"
}

func (w *stackWidget) Update(msg tea.Msg) tea.Cmd {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter":
			w.push()
			return nil
		case "o":
			w.pop()
			return nil
		case "t":
			w.peek()
			return nil
		}
	}
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return cmd
}

func (w *stackWidget) push() {
	v, err := w.input.NumericValue()
	if err != nil {
		w.notice = failure(visualizer.KindStack, err)
		return
	}
	next, err := visualizer.PushEnd(w.items, v)
	if err != nil {
		w.notice = failure(visualizer.KindStack, err)
		return
	}
	w.items = next
	w.notice = notice{}
	w.input.Reset()
}

func (w *stackWidget) pop() {
	v, next, err := visualizer.PopEnd(w.items)
	if err != nil {
		w.notice = failure(visualizer.KindStack, err)
		return
	}
	w.items = next
	w.notice = notice{text: fmt.Sprintf("تم سحب القيمة: %d", v)}
}

func (w *stackWidget) peek() {
	v, err := visualizer.Peek(w.items)
	if err != nil {
		w.notice = failure(visualizer.KindStack, err)
		return
	}
	w.notice = notice{text: fmt.Sprintf("القيمة في القمة: %d", v)}
}

func (w *stackWidget) View(width int) string {
	var column []string
	if len(w.items) == 0 {
		column = append(column, dim("المكدس فارغ"))
	}
	for i := len(w.items) - 1; i >= 0; i-- {
		column = append(column, cell(w.items[i], i == len(w.items)-1))
	}
	top := fmt.Sprintf("Top = %d", len(w.items)-1)

	return joinLines(
		dim("جرب عمليات push و pop لتفهم مبدأ \"آخر من يدخل، أول من يخرج\" (LIFO)."),
		lipgloss.JoinVertical(lipgloss.Center, column...),
		dim(top),
		w.input.View(),
		w.notice.View(),
	)
}

func (w *stackWidget) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Push"},
		{Key: "O", Description: "Pop"},
		{Key: "T", Description: "Peek"},
	}
}

// queueWidget simulates enqueue and dequeue on a bounded queue.
type queueWidget struct {
	items  []int
	input  components.TextInput
	notice notice
}

func newQueueWidget() *queueWidget {
	return &queueWidget{items: initialItems, input: newValueInput()}
}

func (w *queueWidget) Init() tea.Cmd {
	return w.input.Init()
}

func (w *queueWidget) Heading() string {
	return "🚶‍♂️ محاكي الطابور التفاعلي"
}

func (w *queueWidget) Update(msg tea.Msg) tea.Cmd {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter":
			w.enqueue()
			return nil
		case "d":
			w.dequeue()
			return nil
		}
	}
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return cmd
}

func (w *queueWidget) enqueue() {
	v, err := w.input.NumericValue()
	if err != nil {
		w.notice = failure(visualizer.KindQueue, err)
		return
	}
	next, err := visualizer.EnqueueEnd(w.items, v)
	if err != nil {
		w.notice = failure(visualizer.KindQueue, err)
		return
	}
	w.items = next
	w.notice = notice{}
	w.input.Reset()
}

func (w *queueWidget) dequeue() {
	v, next, err := visualizer.DequeueFront(w.items)
	if err != nil {
		w.notice = failure(visualizer.KindQueue, err)
		return
	}
	w.items = next
	w.notice = notice{text: fmt.Sprintf("تم إخراج القيمة: %d", v)}
}

func (w *queueWidget) View(width int) string {
	row := dim("الطابور فارغ")
	if len(w.items) > 0 {
		row = lipgloss.JoinHorizontal(lipgloss.Center, dim("Front → "), chain(w.items, " "), dim(" ← Rear"))
	}
	return joinLines(
		dim("جرب عمليات enqueue و dequeue لتفهم مبدأ \"أول من يدخل، أول من يخرج\" (FIFO)."),
		row,
		w.input.View(),
		w.notice.View(),
	)
}

func (w *queueWidget) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Enqueue"},
		{Key: "D", Description: "Dequeue"},
	}
}

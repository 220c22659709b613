package visualizer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var memory = []int{45, 23, 67, 12, 89, 34, 56, 78}

func TestAccessByIndex(t *testing.T) {
	tests := []struct {
		index   int
		value   int
		address int
		wantErr bool
	}{
		{0, 45, 1000, false},
		{3, 12, 1012, false},
		{7, 78, 1028, false},
		{8, 0, 0, true},
		{-1, 0, 0, true},
	}
	for _, tt := range tests {
		got, err := AccessByIndex(memory, tt.index)
		if tt.wantErr {
			if !errors.Is(err, ErrOutOfRange) {
				t.Errorf("AccessByIndex(%d): expected ErrOutOfRange, got %v", tt.index, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("AccessByIndex(%d): unexpected error %v", tt.index, err)
		}
		if got.Value != tt.value || got.Address != tt.address || got.Complexity != "O(1)" {
			t.Errorf("AccessByIndex(%d) = %+v", tt.index, got)
		}
	}
}

func TestPushEnd(t *testing.T) {
	seq := []int{10, 20, 30}
	out, err := PushEnd(seq, 40)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30, 40}, out)
	assert.Equal(t, []int{10, 20, 30}, seq, "input must not change")
}

func TestPushEnd_Full(t *testing.T) {
	full := []int{1, 2, 3, 4, 5, 6, 7, 8}
	_, err := PushEnd(full, 9)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	_, err = EnqueueEnd(full, 9)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Len(t, full, 8)
}

func TestPopEnd(t *testing.T) {
	seq := []int{10, 20, 30}
	v, out, err := PopEnd(seq)
	require.NoError(t, err)
	assert.Equal(t, 30, v)
	assert.Equal(t, []int{10, 20}, out)
	assert.Equal(t, []int{10, 20, 30}, seq)

	_, _, err = PopEnd(nil)
	assert.ErrorIs(t, err, ErrUnderflow)
}

func TestDequeueFront(t *testing.T) {
	seq := []int{10, 20, 30}
	v, out, err := DequeueFront(seq)
	require.NoError(t, err)
	assert.Equal(t, 10, v)
	assert.Equal(t, []int{20, 30}, out)

	_, _, err = DequeueFront([]int{})
	assert.ErrorIs(t, err, ErrUnderflow)
}

func TestPushPopRoundTrip(t *testing.T) {
	seq := []int{10, 20}
	pushed, err := PushEnd(seq, 99)
	require.NoError(t, err)
	v, popped, err := PopEnd(pushed)
	require.NoError(t, err)
	assert.Equal(t, 99, v)
	assert.Equal(t, seq, popped)
}

func TestFIFOOrder(t *testing.T) {
	var seq []int
	for _, v := range []int{1, 2, 3} {
		var err error
		seq, err = EnqueueEnd(seq, v)
		require.NoError(t, err)
	}
	var got []int
	for len(seq) > 0 {
		v, rest, err := DequeueFront(seq)
		require.NoError(t, err)
		got = append(got, v)
		seq = rest
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestPeek(t *testing.T) {
	v, err := Peek([]int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = Peek(nil)
	assert.ErrorIs(t, err, ErrUnderflow)
}

func TestRemoveByValue(t *testing.T) {
	seq := []int{10, 20, 10, 30}
	out, err := RemoveByValue(seq, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{20, 10, 30}, out, "only the earliest match is removed")
	assert.Equal(t, []int{10, 20, 10, 30}, seq)

	_, err = RemoveByValue(seq, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"42", 42, false},
		{" -7 ", -7, false},
		{"", 0, true},
		{"abc", 0, true},
		{"4.2", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseValue(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidNumber, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		kind Kind
		err  error
		want string
	}{
		{KindStack, ErrCapacityExceeded, "المكدس ممتلئ! (Stack Overflow)"},
		{KindStack, ErrUnderflow, "المكدس فارغ! (Stack Underflow)"},
		{KindQueue, ErrCapacityExceeded, "الطابور ممتلئ! (Queue Overflow)"},
		{KindQueue, ErrUnderflow, "الطابور فارغ! (Queue Underflow)"},
		{KindList, ErrNotFound, "العقدة غير موجودة!"},
		{KindArray, ErrOutOfRange, "يرجى إدخال مؤشر صالح بين 0 و 7"},
		{KindArray, ErrInvalidNumber, "الرجاء إدخال رقم صالح."},
		{KindArray, nil, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Message(tt.kind, tt.err))
	}
}

func TestMessage_Wrapped(t *testing.T) {
	_, err := PushEnd([]int{1, 2, 3, 4, 5, 6, 7, 8}, 1)
	assert.Equal(t, "المكدس ممتلئ! (Stack Overflow)", Message(KindStack, err))
}

func TestAppendEnd(t *testing.T) {
	out, err := AppendEnd([]int{10, 20, 30}, 40)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30, 40}, out)

	_, err = AppendEnd([]int{1, 2, 3, 4, 5, 6, 7, 8}, 9)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, "لا يمكن إضافة أكثر من 8 عناصر.", Message(KindList, err))
}

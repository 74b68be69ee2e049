package observable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValue_SetNotifiesOnChange(t *testing.T) {
	req := require.New(t)
	v := New("Language")

	var got []string
	v.Subscribe(func(s string) { got = append(got, s) })

	req.True(v.Set("English"))
	req.False(v.Set("English"))
	req.True(v.Set("French"))

	req.Equal([]string{"English", "French"}, got)
	req.Equal("French", v.Get())
}

func TestValue_SubscribersRunInOrder(t *testing.T) {
	v := New(0)

	var order []string
	v.Subscribe(func(int) { order = append(order, "first") })
	v.Subscribe(func(int) { order = append(order, "second") })
	v.Set(1)

	require.Equal(t, []string{"first", "second"}, order)
}

func TestValue_GetInsideSubscriberSeesNewValue(t *testing.T) {
	v := New("a")

	var seen string
	v.Subscribe(func(string) { seen = v.Get() })
	v.Set("b")

	require.Equal(t, "b", seen)
}

func TestValue_Unsubscribe(t *testing.T) {
	req := require.New(t)
	v := New(0)

	calls := 0
	unsubscribe := v.Subscribe(func(int) { calls++ })
	req.Equal(1, v.Subscribers())

	v.Set(1)
	unsubscribe()
	unsubscribe()
	v.Set(2)

	req.Equal(1, calls)
	req.Equal(0, v.Subscribers())
}

func TestValue_UnsubscribeDuringNotify(t *testing.T) {
	v := New(0)

	var second int
	var unsubscribeSecond Unsubscribe
	v.Subscribe(func(int) { unsubscribeSecond() })
	unsubscribeSecond = v.Subscribe(func(n int) { second = n })

	v.Set(1)

	require.Zero(t, second, "subscriber detached earlier in the same notification must not run")
}

func TestValue_SubscribeDuringNotify(t *testing.T) {
	v := New(0)

	late := 0
	v.Subscribe(func(int) {
		v.Subscribe(func(n int) { late = n })
	})

	v.Set(1)
	require.Zero(t, late, "subscriber added during a notification waits for the next change")

	v.Set(2)
	require.Equal(t, 2, late)
}

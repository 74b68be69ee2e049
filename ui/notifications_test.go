package ui

import (
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/require"

	"github.com/yllada/greeter/common"
)

type recordingNotifier struct {
	titles   []string
	messages []string
	err      error
}

func (r *recordingNotifier) Notify(title, message string) error {
	r.titles = append(r.titles, title)
	r.messages = append(r.messages, message)
	return r.err
}

func TestNotifyArgs(t *testing.T) {
	req := require.New(t)
	args := notifyArgs("face-smile", UrgencyNormal, "Title", "Body")

	req.Len(args, 8)
	req.Equal(common.AppName, args[0])
	req.Equal(uint32(0), args[1])
	req.Equal("face-smile", args[2])
	req.Equal("Title", args[3])
	req.Equal("Body", args[4])
	req.Equal([]string{}, args[5])
	req.Equal(dbus.MakeVariant(byte(1)), args[6].(map[string]dbus.Variant)["urgency"])
	req.Equal(int32(5000), args[7])
}

func TestNotifyFinished(t *testing.T) {
	n := &recordingNotifier{}
	NotifyFinished(n, 100)

	require.Equal(t, []string{"Greeting rotation finished"}, n.titles)
	require.Equal(t, []string{"Showed 100 greetings."}, n.messages)
}

func TestNotifyFinished_ToleratesFailuresAndNil(t *testing.T) {
	NotifyFinished(nil, 1)
	NotifyFinished(&recordingNotifier{err: errors.New("no daemon")}, 1)
}

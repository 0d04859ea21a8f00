package logging

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrDefault(t *testing.T) {
	require.Equal(t, Default(), OrDefault(nil))

	buff := new(bytes.Buffer)
	custom := log.New(buff, "", 0)
	OrDefault(custom).Printf("hello, %s", "world")
	require.Equal(t, "hello, world\n", buff.String())

	require.NotPanics(t, func() {
		Nop{}.Printf("%d", 42)
	})
}

package ws

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-epi-api/internal/application/inventory"
)

type fakeConn struct {
	mu     sync.Mutex
	msgs   [][]byte
	fail   bool
	closed bool
}

func (f *fakeConn) WriteMessage(_ int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("broken pipe")
	}
	f.msgs = append(f.msgs, data)
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) received() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.msgs)
}

func TestHub_BroadcastParaClientes(t *testing.T) {
	h := NewHub(zerolog.Nop())
	go h.Run()
	defer h.Stop()

	ok := &fakeConn{}
	broken := &fakeConn{fail: true}
	h.Register(ok)
	h.Register(broken)

	h.StockChanged(inventory.StockEvent{Kind: inventory.EventMovement, ModelID: 3, Delta: -2})

	require.Eventually(t, func() bool { return ok.received() == 1 }, time.Second, 10*time.Millisecond)
	assert.Contains(t, string(ok.msgs[0]), `"evento":"movement"`)
	assert.Contains(t, string(ok.msgs[0]), `"variacao":-2`)
	assert.Eventually(t, func() bool { return h.Clients() == 1 }, time.Second, 10*time.Millisecond)

	h.Unregister(ok)
	assert.Eventually(t, func() bool { return h.Clients() == 0 }, time.Second, 10*time.Millisecond)
}

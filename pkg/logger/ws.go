package logger

import (
	"os"
	"sync/atomic"
)

// ReopenableWriteSyncer is a zapcore.WriteSyncer whose backing file can be
// reopened at runtime, so external log rotation works without restarting
// the process.
type ReopenableWriteSyncer struct {
	path    string
	current atomic.Pointer[os.File]
}

func NewReopenableWriteSyncer(path string) (*ReopenableWriteSyncer, error) {
	ws := &ReopenableWriteSyncer{
		path: path,
	}
	if err := ws.Reload(); err != nil {
		return nil, err
	}
	return ws, nil
}

// Reload opens the configured path again and swaps the handle in, closing
// the file it replaces.
func (ws *ReopenableWriteSyncer) Reload() error {
	file, err := os.OpenFile(ws.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	old := ws.current.Swap(file)
	if old != nil {
		return old.Close()
	}
	return nil
}

func (ws *ReopenableWriteSyncer) Write(p []byte) (int, error) {
	return ws.current.Load().Write(p)
}

func (ws *ReopenableWriteSyncer) Sync() error {
	return ws.current.Load().Sync()
}

func (ws *ReopenableWriteSyncer) Close() error {
	return ws.current.Load().Close()
}

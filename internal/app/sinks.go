package app

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ScriptSink receives the narration script when the user applies it. The real
// implementation would mutate the video project; the editor only needs the
// contract.
type ScriptSink interface {
	ApplyScript(text string) error
}

// TrackStore receives user-uploaded music. The file is an opaque handle; the
// editor never inspects it.
type TrackStore interface {
	UploadTrack(name string, size int64) (receipt string, err error)
}

// LogScriptSink is the stub used when no backend is wired: it logs and drops.
type LogScriptSink struct {
	Logger *zap.Logger
}

func (s *LogScriptSink) ApplyScript(text string) error {
	s.Logger.Info("script applied", zap.Int("chars", len(text)))
	return nil
}

// LogTrackStore logs the upload and hands back a receipt id.
type LogTrackStore struct {
	Logger *zap.Logger
}

func (s *LogTrackStore) UploadTrack(name string, size int64) (string, error) {
	receipt := uuid.NewString()
	s.Logger.Info("track uploaded",
		zap.String("name", name),
		zap.Int64("size", size),
		zap.String("receipt", receipt))
	return receipt, nil
}

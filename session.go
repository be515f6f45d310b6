// SPDX-License-Identifier: EPL-2.0

package pcmedit

import (
	"errors"
	"io"
	"math"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ik5/pcmedit/audio"
	"github.com/ik5/pcmedit/editor"
	"github.com/ik5/pcmedit/formats/wav"
)

// GainConfirmationThreshold is the gain magnitude in dB above which a shell
// should ask before applying a change, as the result is likely to distort.
const GainConfirmationThreshold = 50.0

// ErrNothingLoaded is returned by edits and saves before a successful Load.
var ErrNothingLoaded = errors.New("no file loaded")

// GainNeedsConfirmation reports whether db exceeds GainConfirmationThreshold.
func GainNeedsConfirmation(db float64) bool {
	return math.Abs(db) > GainConfirmationThreshold
}

// Session holds the single buffer a user is editing. Loading a file replaces
// it; a failed load keeps the previous one. A Session is not safe for
// concurrent use.
type Session struct {
	id     uuid.UUID
	logger logrus.FieldLogger

	editor *editor.Editor
	path   string
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger, logrus.StandardLogger() by default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

func NewSession(opts ...Option) *Session {
	s := &Session{
		id:     uuid.New(),
		logger: logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Session) ID() uuid.UUID { return s.id }

// Loaded reports whether a buffer is loaded.
func (s *Session) Loaded() bool { return s.editor != nil }

// Path is the file the current buffer was loaded from.
func (s *Session) Path() string { return s.path }

func (s *Session) log(function string) *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{
		"function": function,
		"session":  s.id.String(),
	})
}

// Load decodes path and makes it the current buffer.
func (s *Session) Load(path string) error {
	clip, err := Decode(path)
	if err != nil {
		s.log("Load").WithFields(logrus.Fields{
			"path":  path,
			"error": err.Error(),
		}).Warn("Failed to load file")
		return err
	}

	ed, err := editor.New(clip)
	if err != nil {
		s.log("Load").WithFields(logrus.Fields{
			"path":  path,
			"error": err.Error(),
		}).Warn("Failed to load file")
		return err
	}

	s.editor = ed
	s.path = path

	s.log("Load").WithFields(logrus.Fields{
		"path":     path,
		"format":   clip.Format.String(),
		"frames":   ed.FrameCount(),
		"duration": ed.Duration(),
	}).Info("File loaded")

	return nil
}

// Save encodes the current buffer as WAV and returns the path written.
func (s *Session) Save(path string) (string, error) {
	if s.editor == nil {
		return "", ErrNothingLoaded
	}

	written, err := Encode(path, s.editor.Clip())
	if err != nil {
		s.log("Save").WithFields(logrus.Fields{
			"path":  written,
			"error": err.Error(),
		}).Warn("Failed to save file")
		return "", err
	}

	s.log("Save").WithFields(logrus.Fields{
		"path":   written,
		"frames": s.editor.FrameCount(),
	}).Info("File saved")

	return written, nil
}

// ExportAIFF writes the current buffer as AIFF and returns the path written.
func (s *Session) ExportAIFF(path string) (string, error) {
	if s.editor == nil {
		return "", ErrNothingLoaded
	}

	written, err := ExportAIFF(path, s.editor.Clip())
	if err != nil {
		s.log("ExportAIFF").WithFields(logrus.Fields{
			"path":  written,
			"error": err.Error(),
		}).Warn("Failed to export file")
		return "", err
	}

	s.log("ExportAIFF").WithField("path", written).Info("File exported")

	return written, nil
}

// Stream writes the current buffer as WAV to w, which need not seek.
func (s *Session) Stream(w io.Writer) error {
	if s.editor == nil {
		return ErrNothingLoaded
	}

	if err := wav.WritePCM(w, s.editor.Clip()); err != nil {
		s.log("Stream").WithField("error", err.Error()).Warn("Failed to stream file")
		return &audio.Error{Kind: kindOr(err, audio.ErrWriteFailure), Op: "stream", Err: err}
	}

	return nil
}

func (s *Session) Trim(start, end float64) error {
	if s.editor == nil {
		return ErrNothingLoaded
	}

	if err := s.editor.Trim(start, end); err != nil {
		s.log("Trim").WithFields(logrus.Fields{
			"start": start,
			"end":   end,
			"error": err.Error(),
		}).Warn("Trim rejected")
		return err
	}

	s.log("Trim").WithFields(logrus.Fields{
		"start":  start,
		"end":    end,
		"frames": s.editor.FrameCount(),
	}).Debug("Buffer trimmed")

	return nil
}

func (s *Session) ChangeGain(db float64) error {
	if s.editor == nil {
		return ErrNothingLoaded
	}

	if err := s.editor.ChangeGain(db); err != nil {
		s.log("ChangeGain").WithFields(logrus.Fields{
			"db":    db,
			"error": err.Error(),
		}).Warn("Gain change rejected")
		return err
	}

	s.log("ChangeGain").WithField("db", db).Debug("Gain changed")

	return nil
}

func (s *Session) Info() (editor.Info, error) {
	if s.editor == nil {
		return editor.Info{}, ErrNothingLoaded
	}

	return s.editor.Info(), nil
}

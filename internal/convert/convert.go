// Package convert runs the spreadsheet-to-JSON pipeline: header, sessions,
// summary and warnings, then a write gated by a caller-supplied decision.
package convert

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/visual-poker/pokerxl/internal/export"
	"github.com/visual-poker/pokerxl/internal/extract"
	"github.com/visual-poker/pokerxl/internal/model"
	"github.com/visual-poker/pokerxl/internal/sheet"
	"github.com/visual-poker/pokerxl/internal/summary"
)

// previewSessions is how many leading sessions get logged at debug level.
const previewSessions = 5

// Result is everything one run produced.
type Result struct {
	Extraction *model.Extraction
	Stats      extract.Stats
	Summary    summary.Summary
	Warnings   []summary.Warning
	Saved      bool
}

// ConfirmFunc decides whether res should be written. It sees the summary and
// warnings before anything touches disk.
type ConfirmFunc func(res *Result) (bool, error)

// Always returns a ConfirmFunc that answers ok without asking.
func Always(ok bool) ConfirmFunc {
	return func(*Result) (bool, error) { return ok, nil }
}

// Writer persists an output document.
type Writer interface {
	Write(doc export.Document) error
}

// Service wires the pipeline to its output and decision function.
type Service struct {
	out     Writer
	confirm ConfirmFunc
	log     logrus.FieldLogger
}

// NewService creates a convert Service.
func NewService(out Writer, confirm ConfirmFunc, log logrus.FieldLogger) *Service {
	return &Service{out: out, confirm: confirm, log: log}
}

// Run converts s. Missing header cells and an empty session list are fatal;
// warnings are not. The document is written only when confirm says so.
func (svc *Service) Run(s *sheet.Sheet) (*Result, error) {
	log := svc.log.WithField("sheet", s.Name)
	log.WithFields(logrus.Fields{"rows": s.Rows(), "cols": s.Cols()}).Debug("sheet loaded")

	ex, stats, err := extract.Extract(s)
	if err != nil {
		return nil, fmt.Errorf("extracting sessions: %w", err)
	}

	for _, skip := range stats.Skipped {
		log.WithFields(logrus.Fields{"row": skip.Row, "value": skip.Value}).Warn("skipping row with unreadable date")
	}
	for i, sess := range ex.Sessions {
		if i == previewSessions {
			break
		}
		log.WithFields(logrus.Fields{
			"date":    sess.Date,
			"gains":   sess.Gains.StringFixed(2),
			"games":   sess.Games,
			"rake":    sess.Rake.StringFixed(2),
			"balance": sess.Balance.StringFixed(2),
		}).Debugf("session %d", i+1)
	}
	log.WithFields(logrus.Fields{
		"player":   ex.PlayerName,
		"sessions": stats.Valid,
		"skipped":  len(stats.Skipped),
	}).Info("sessions extracted")

	sum := summary.Extraction(ex)
	res := &Result{
		Extraction: ex,
		Stats:      stats,
		Summary:    sum,
		Warnings:   summary.Validate(sum),
	}
	for _, w := range res.Warnings {
		log.WithField("check", w.Check).Warn(w.Message)
	}

	ok, err := svc.confirm(res)
	if err != nil {
		return res, fmt.Errorf("confirming export: %w", err)
	}
	if !ok {
		log.Info("export cancelled")
		return res, nil
	}

	if err := svc.out.Write(export.NewDocument(ex)); err != nil {
		return res, fmt.Errorf("saving document: %w", err)
	}
	res.Saved = true
	log.Info("document saved")
	return res, nil
}

// Package editor owns the live document for one editing session. It is
// the only writer of the current snapshot: every edit reads the
// snapshot, applies a pure transformation, and replaces it before the
// next edit can observe the prior value.
package editor

import (
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/invoicedesk/internal/clock"
	"github.com/smallbiznis/invoicedesk/internal/config"
	"github.com/smallbiznis/invoicedesk/internal/currency"
	"github.com/smallbiznis/invoicedesk/internal/invoice/calc"
	"github.com/smallbiznis/invoicedesk/internal/invoice/domain"
	"github.com/smallbiznis/invoicedesk/internal/invoice/format"
	"github.com/smallbiznis/invoicedesk/internal/invoice/mutate"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Exporter is the external "render the current document to paper"
// collaborator. The editor fires it and never consumes a result.
type Exporter interface {
	RequestRender()
}

// Param collects the editor's dependencies.
type Param struct {
	fx.In

	Log     *zap.Logger
	Node    *snowflake.Node
	Clock   clock.Clock
	Cfg     *config.EditorConfigHolder
	Metrics *Metrics
}

// Editor holds the current snapshot and serializes access to it, so a
// multi-threaded host sees fully-formed snapshots and never a partial
// edit.
type Editor struct {
	mu      sync.RWMutex
	current domain.Document

	node     *snowflake.Node
	cfg      *config.EditorConfigHolder
	log      *zap.Logger
	metrics  *Metrics
	exporter Exporter
}

// New seeds a session with the template document and returns its editor.
func New(p Param) *Editor {
	cfg := p.Cfg.Get()
	now := p.Clock.Now()

	number, err := format.Number(cfg.NumberTemplate, now, 1)
	if err != nil {
		p.Log.Warn("invalid invoice number template, falling back",
			zap.String("template", cfg.NumberTemplate), zap.Error(err))
		number, _ = format.Number(format.DefaultNumberTemplate, now, 1)
	}

	symbol, err := currency.SymbolFor(cfg.DefaultCurrencyCode)
	if err != nil {
		p.Log.Warn("unknown default currency, falling back to USD",
			zap.String("code", cfg.DefaultCurrencyCode))
		symbol = "$"
	}

	e := &Editor{
		node:    p.Node,
		cfg:     p.Cfg,
		log:     p.Log,
		metrics: p.Metrics,
		current: domain.DefaultDocument(p.Node, domain.SeedOptions{
			Now:            now,
			Number:         number,
			CurrencySymbol: symbol,
			DueInDays:      cfg.DueInDays,
			TaxRate:        cfg.DefaultTaxRate,
		}),
	}
	return e
}

// BindExporter attaches the render collaborator. Export requests made
// before binding are dropped with a warning.
func (e *Editor) BindExporter(exp Exporter) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.exporter = exp
}

// Snapshot returns the current document together with totals derived
// from that same snapshot, as one consistent tuple.
func (e *Editor) Snapshot() (domain.Document, calc.Totals) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.current, calc.Compute(e.current)
}

// SetRootField edits one top-level scalar field.
func (e *Editor) SetRootField(field mutate.RootField, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	next, err := mutate.SetRootField(e.current, field, value)
	if err != nil {
		return err
	}
	e.commit(next, "root."+string(field))
	return nil
}

// SetSectionField edits one field inside sender, client, or paymentInfo.
func (e *Editor) SetSectionField(section mutate.Section, field, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	next, err := mutate.SetSectionField(e.current, section, field, value)
	if err != nil {
		return err
	}
	e.commit(next, string(section)+"."+field)
	return nil
}

// SetItemField edits one field of a line item. Unknown ids are a
// silent no-op.
func (e *Editor) SetItemField(id snowflake.ID, field mutate.ItemField, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	next, err := mutate.SetItemField(e.current, id, field, value)
	if err != nil {
		return err
	}
	e.commit(next, "item."+string(field))
	return nil
}

// AddItem appends a fresh line item and returns it.
func (e *Editor) AddItem() domain.LineItem {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.node.Generate()
	next := mutate.AddItem(e.current, id, e.cfg.Get().ItemPlaceholder)
	e.commit(next, "item.add")
	item, _ := next.Item(id)
	return item
}

// DeleteItem removes a line item. Unknown ids are a silent no-op.
func (e *Editor) DeleteItem(id snowflake.ID) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.commit(mutate.DeleteItem(e.current, id), "item.delete")
}

// LoadSnapshot replaces the session's document wholesale, e.g. from a
// deserialized save file.
func (e *Editor) LoadSnapshot(doc domain.Document) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.commit(doc, "load")
}

// TriggerExport asks the render collaborator to turn the latest
// committed snapshot into a paper artifact. Fire and forget: the
// collaborator's outcome is never awaited.
func (e *Editor) TriggerExport() {
	e.mu.RLock()
	exp := e.exporter
	e.mu.RUnlock()

	if exp == nil {
		e.log.Warn("export requested with no renderer bound")
		return
	}
	e.metrics.ExportRequested()
	exp.RequestRender()
}

// commit must be called with the write lock held.
func (e *Editor) commit(next domain.Document, op string) {
	e.current = next
	e.metrics.EditApplied(op)
	e.log.Debug("edit applied", zap.String("op", op))
}
